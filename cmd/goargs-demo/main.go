package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/goargs"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

func newParser() (*goargs.Parser, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return goargs.NewParserWith("goargs-demo", "Builds and ships artifacts to show how goargs parses a command line.",
		goargs.WithLogger(logger),
		goargs.WithEpilogue("Run 'goargs-demo <command> --help' for the options of a command."),
		goargs.WithArgument([]string{"-v", "--verbose"}, goargs.AsFlag(),
			goargs.WithHelp("print every value, including defaults")),
		goargs.WithArgument([]string{"-C", "--directory"}, goargs.WithDefault("."),
			goargs.WithMetavar("DIR"), goargs.WithHelp("directory to work in")),
		goargs.WithSubCommand("build", "compile a target",
			goargs.WithArgument([]string{"-t", "--target"}, goargs.WithRequired(true),
				goargs.WithValidation("oneof=x86 arm64 riscv"), goargs.WithHelp("architecture to build for")),
			goargs.WithArgument([]string{"-j", "--jobs"}, goargs.WithDefault("4"),
				goargs.WithValidation("numeric"), goargs.WithHelp("parallel jobs")),
			goargs.WithArgument([]string{"--timeout"}, goargs.WithDefault("10m"),
				goargs.WithHelp("give up after this long")),
		),
		goargs.WithSubCommand("push", "upload an artifact",
			goargs.WithArgument([]string{"artifact"}, goargs.WithHelp("file to upload")),
			goargs.WithArgument([]string{"--to"}, goargs.AsValue(2), goargs.WithMetavar("HOST"),
				goargs.WithValidation("hostname|ip"), goargs.WithHelp("primary and fallback host")),
			goargs.WithArgument([]string{"--not-before"}, goargs.WithMetavar("DATE"),
				goargs.WithHelp("earliest upload date")),
		),
	)
}

// commandFor walks from the root to the command named by path
func commandFor(root *goargs.Parser, path []string) *goargs.Parser {
	p := root
	for _, name := range path[1:] {
		sub, ok := p.SubCommand(name)
		if !ok {
			break
		}
		p = sub
	}

	return p
}

func printResult(w io.Writer, res *goargs.Result, verbose bool) {
	fmt.Fprintf(w, "  %s %s\n", cyan("→"), bold(strings.Join(res.Path(), " ")))
	for _, key := range res.Keys() {
		if !verbose && !res.Seen(key) {
			continue
		}
		value, _ := res.Get(key)
		marker := green("✔")
		if !res.Seen(key) {
			marker = dim("○")
		}
		fmt.Fprintf(w, "    %s %s = %v\n", marker, key, value)
	}

	if _, sub := res.SubCommand(); sub != nil {
		printResult(w, sub, verbose)
	}
}

func main() {
	parser, err := newParser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("✘"), err)
		os.Exit(1)
	}

	res, err := parser.Parse(os.Args[1:])
	if err != nil {
		var pErr *goargs.ParseError
		if !errors.As(err, &pErr) {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("✘"), err)
			os.Exit(1)
		}
		cmd := commandFor(parser, pErr.Path)
		if goargs.IsHelpRequested(err) {
			_ = cmd.PrintHelp(os.Stdout)
			os.Exit(0)
		}
		_ = cmd.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "%s %v\n", red("✘"), err)
		os.Exit(2)
	}

	verbose, _ := res.Bool("verbose")
	printResult(os.Stdout, res, verbose)

	if name, sub := res.SubCommand(); name == "build" {
		if timeout, err := sub.Duration("timeout"); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", yellow("○"), err)
		} else {
			fmt.Fprintf(os.Stdout, "  %s build times out after %s\n", dim("·"), timeout)
		}
	} else if name == "push" && sub.Has("--not-before") {
		if when, err := sub.Time("--not-before"); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", yellow("○"), err)
		} else {
			fmt.Fprintf(os.Stdout, "  %s upload scheduled for %s\n", dim("·"), when.Format("2006-01-02 15:04"))
		}
	}
}
