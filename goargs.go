// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package goargs provides declarative command-line parsing.
//
// A Parser is built by registering arguments and sub-commands:
//
//	Flag     - an option which records its presence and consumes no value (-v, --verbose)
//	Value    - an option which consumes one or more following tokens (--range 1 10)
//	Positional - an argument bound by position, identified by a name without dashes
//
// Sub-commands are nested Parsers. Once a sub-command is selected every remaining token belongs
// to it. Parsing produces a Result, or a *ParseError describing the first failure; construction
// stops at the first Parse call, after which the tree is immutable and can be shared freely.
package goargs

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/internal/parse"
	"github.com/napalu/goargs/internal/util"
	"github.com/napalu/goargs/types/orderedmap"
)

// tree owns every node of a command hierarchy together with the settings they share
type tree struct {
	nodes         []*node
	frozen        atomic.Bool
	logger        *slog.Logger
	validate      *validator.Validate
	destConverter NameConversionFunc
	helpConfig    HelpConfig
	renderer      Renderer
	warnings      []string
}

// node is one command of the tree: the root program or a sub-command
type node struct {
	name        string
	description string
	epilogue    string
	parent      nodeID
	path        []string
	arguments   *orderedmap.OrderedMap[string, *Argument]
	lookup      map[string]string
	dests       map[string]string
	children    map[string]nodeID
	help        *Argument
	autoHelp    bool
}

// Parser is a handle on one node of a command tree. The root Parser is returned by NewParser,
// sub-command Parsers by AddSubCommand. Handles are cheap values sharing the same tree.
type Parser struct {
	tree *tree
	id   nodeID
}

// NewParser creates the root of a command tree for program
func NewParser(program, description string) *Parser {
	t := &tree{
		destConverter: DefaultDestConverter,
		helpConfig:    DefaultHelpConfig(),
		renderer:      NewRenderer(),
	}
	id := t.addNode(program, description, noParent, true)

	return &Parser{tree: t, id: id}
}

// NewParserWith creates the root of a command tree and applies configs to it. The first
// configuration error is returned.
//
// Configuration example:
//
//	parser, err := NewParserWith("deploy", "deploys services",
//		WithLogger(slog.Default()),
//		WithArgument([]string{"-v", "--verbose"}, AsFlag(), WithHelp("chatty output")),
//		WithSubCommand("push", "push an image",
//			WithArgument([]string{"--target"}, WithRequired(true)),
//			WithArgument([]string{"image"})))
func NewParserWith(program, description string, configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser(program, description)
	if err := p.configure(configs); err != nil {
		return nil, err
	}

	return p, nil
}

func (t *tree) addNode(name, description string, parent nodeID, autoHelp bool) nodeID {
	var path []string
	if parent != noParent {
		path = append(path, t.nodes[parent].path...)
	}
	path = append(path, name)

	n := &node{
		name:        name,
		description: description,
		parent:      parent,
		path:        path,
		arguments:   orderedmap.NewOrderedMap[string, *Argument](),
		lookup:      map[string]string{},
		dests:       map[string]string{},
		children:    map[string]nodeID{},
		help:        newArgument(helpNames),
	}
	n.help.action = Flag()
	n.help.help = helpText
	n.help.dest = "help"
	if autoHelp {
		for _, alias := range helpNames {
			n.lookup[alias] = n.help.id
		}
		n.autoHelp = true
	}

	t.nodes = append(t.nodes, n)

	return nodeID(len(t.nodes) - 1)
}

// treeSettings is the part of a tree a sub-command configuration can change
type treeSettings struct {
	logger        *slog.Logger
	validate      *validator.Validate
	destConverter NameConversionFunc
	helpConfig    HelpConfig
	renderer      Renderer
	warnings      int
}

func (t *tree) settings() treeSettings {
	return treeSettings{
		logger:        t.logger,
		validate:      t.validate,
		destConverter: t.destConverter,
		helpConfig:    t.helpConfig,
		renderer:      t.renderer,
		warnings:      len(t.warnings),
	}
}

func (t *tree) restore(s treeSettings) {
	t.logger = s.logger
	t.validate = s.validate
	t.destConverter = s.destConverter
	t.helpConfig = s.helpConfig
	t.renderer = s.renderer
	t.warnings = t.warnings[:s.warnings]
}

func (t *tree) warn(n *node, arg *Argument, msg string) {
	t.warnings = append(t.warnings, fmt.Sprintf("%s: %s", strings.Join(n.path, " "), msg))
	if t.logger != nil {
		t.logger.Warn(msg,
			slog.String("command", strings.Join(n.path, " ")),
			slog.String("argument", arg.names.String()))
	}
}

func (t *tree) validator() *validator.Validate {
	if t.validate == nil {
		t.validate = validator.New()
	}

	return t.validate
}

// setAutoHelp registers or removes the -h/--help aliases of the node
func (n *node) setAutoHelp(enabled bool) error {
	if enabled == n.autoHelp {
		return nil
	}
	if !enabled {
		for _, alias := range helpNames {
			delete(n.lookup, alias)
		}
		n.autoHelp = false
		return nil
	}

	for _, alias := range helpNames {
		if _, taken := n.lookup[alias]; taken {
			return errs.ErrDuplicateName.WithArgs(alias)
		}
	}
	for _, alias := range helpNames {
		n.lookup[alias] = n.help.id
	}
	n.autoHelp = true

	return nil
}

// argument resolves an alias or a destination key to the argument registered under it
func (n *node) argument(name string) (*Argument, bool) {
	if arg, ok := n.alias(name); ok {
		return arg, true
	}
	if id, ok := n.dests[name]; ok {
		return n.arguments.Get(id)
	}

	return nil, false
}

// alias resolves an alias, including -h and --help when auto help is enabled
func (n *node) alias(name string) (*Argument, bool) {
	id, ok := n.lookup[name]
	if !ok {
		return nil, false
	}
	if id == n.help.id {
		return n.help, true
	}

	return n.arguments.Get(id)
}

// freeDest returns name, or name suffixed with the first free ordinal, whichever is not yet
// used as a destination key
func (n *node) freeDest(name string) string {
	dest := name
	for i := 2; ; i++ {
		if _, taken := n.dests[dest]; !taken {
			return dest
		}
		dest = fmt.Sprintf("%s_%d", name, i)
	}
}

func (n *node) aliases() []string {
	names := make([]string, 0, len(n.lookup))
	for alias := range n.lookup {
		if parse.IsDashed(alias) {
			names = append(names, alias)
		}
	}
	sort.Strings(names)

	return names
}

func (n *node) childNames() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (p *Parser) node() *node {
	return p.tree.nodes[p.id]
}

func (p *Parser) handle(id nodeID) *Parser {
	return &Parser{tree: p.tree, id: id}
}

func (p *Parser) configure(configs []ConfigureParserFunc) error {
	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser) checkMutable() error {
	if p.tree.frozen.Load() {
		return errs.ErrParserFrozen.WithArgs(strings.Join(p.node().path, " "))
	}

	return nil
}

// AddArgument registers an argument under names and returns its definition. A name without a
// leading dash declares a positional argument; dashed names declare an option reachable through
// any of its aliases. The definition is not registered when an error is returned.
func (p *Parser) AddArgument(names []string, configs ...ConfigureArgumentFunc) (*Argument, error) {
	if err := p.checkMutable(); err != nil {
		return nil, err
	}

	arg := newArgument(names)
	var err error
	for _, config := range configs {
		config(arg, &err)
		if err != nil {
			return nil, err
		}
	}

	explicitDest := arg.dest != ""
	if err = arg.validate(p.tree.destConverter); err != nil {
		return nil, err
	}

	n := p.node()
	for _, alias := range arg.names.aliases {
		if _, taken := n.lookup[alias]; taken {
			return nil, errs.ErrDuplicateName.WithArgs(alias)
		}
	}
	if _, taken := n.dests[arg.dest]; taken {
		if explicitDest {
			return nil, errs.ErrDuplicateName.WithArgs(arg.dest)
		}
		arg.dest = n.freeDest(arg.names.Canonical())
	}

	if arg.validation != "" {
		if err = p.checkValidation(arg); err != nil {
			return nil, err
		}
	}

	n.arguments.Set(arg.id, arg)
	for _, alias := range arg.names.aliases {
		n.lookup[alias] = arg.id
	}
	n.dests[arg.dest] = arg.id

	for _, odd := range arg.names.Degraded() {
		p.tree.warn(n, arg, fmt.Sprintf("alias %s is neither a short (-x) nor a long (--xyz) name", odd))
	}

	return arg, nil
}

// checkValidation rejects rules the validator cannot compile and warns about defaults the
// rule would refuse
func (p *Parser) checkValidation(arg *Argument) (err error) {
	v := p.tree.validator()
	defer func() {
		if r := recover(); r != nil {
			err = errs.ErrInvalidValidation.WithArgs(arg.DisplayName(), arg.validation)
		}
	}()

	_ = v.Var("", arg.validation)
	for _, value := range arg.defaults {
		if vErr := v.Var(value, arg.validation); vErr != nil {
			p.tree.warn(p.node(), arg, fmt.Sprintf("default %q of %s fails validation %q",
				value, arg.DisplayName(), arg.validation))
		}
	}

	return nil
}

// AddSubCommand registers a sub-command and returns its Parser. Sub-commands inherit the auto
// help setting of their parent.
func (p *Parser) AddSubCommand(name, description string, configs ...ConfigureParserFunc) (*Parser, error) {
	if err := p.checkMutable(); err != nil {
		return nil, err
	}
	if name == "" || parse.IsDashed(name) || strings.ContainsAny(name, " \t") {
		return nil, errs.ErrInvalidCommandName.WithArgs(name)
	}

	n := p.node()
	if _, exists := n.children[name]; exists {
		return nil, errs.ErrDuplicateSubCommand.WithArgs(name)
	}

	saved := p.tree.settings()
	id := p.tree.addNode(name, description, p.id, n.autoHelp)
	child := p.handle(id)
	if err := child.configure(configs); err != nil {
		// drop the child and anything its configuration registered or changed below it
		p.tree.nodes = p.tree.nodes[:id]
		p.tree.restore(saved)
		return nil, err
	}
	n.children[name] = id

	return child, nil
}

// Freeze ends construction of the whole tree. Parse freezes the tree implicitly.
func (p *Parser) Freeze() {
	p.tree.frozen.Store(true)
}

// Frozen reports whether the tree can no longer be modified
func (p *Parser) Frozen() bool {
	return p.tree.frozen.Load()
}

// Warnings returns the non-fatal problems found while the tree was built, such as aliases
// that can only be displayed through the first-alias fallback
func (p *Parser) Warnings() []string {
	return append([]string(nil), p.tree.warnings...)
}

// Name returns the program or sub-command name
func (p *Parser) Name() string {
	return p.node().name
}

// Path returns the names from the root program down to this command
func (p *Parser) Path() []string {
	return append([]string(nil), p.node().path...)
}

// Description returns the description text
func (p *Parser) Description() string {
	return p.node().description
}

// Epilogue returns the text printed after the help output
func (p *Parser) Epilogue() string {
	return p.node().epilogue
}

// Arguments returns the arguments of the command in declaration order, preceded by the
// help argument when auto help is enabled
func (p *Parser) Arguments() []*Argument {
	n := p.node()
	args := make([]*Argument, 0, n.arguments.Count()+1)
	if n.autoHelp {
		args = append(args, n.help)
	}

	return append(args, n.arguments.Values()...)
}

// SubCommands returns the direct sub-commands in name order
func (p *Parser) SubCommands() []*Parser {
	n := p.node()
	subs := make([]*Parser, 0, len(n.children))
	for _, name := range n.childNames() {
		subs = append(subs, p.handle(n.children[name]))
	}

	return subs
}

// SubCommand returns the direct sub-command called name
func (p *Parser) SubCommand(name string) (*Parser, bool) {
	id, ok := p.node().children[name]
	if !ok {
		return nil, false
	}

	return p.handle(id), true
}

// Lookup returns the argument registered under an alias or a destination key
func (p *Parser) Lookup(name string) (*Argument, bool) {
	return p.node().argument(name)
}

// Parent returns the parent command, or false for the root
func (p *Parser) Parent() (*Parser, bool) {
	parent := p.node().parent
	if parent == noParent {
		return nil, false
	}

	return p.handle(parent), true
}

// Root returns the root program of the tree
func (p *Parser) Root() *Parser {
	return p.handle(0)
}

// Parse freezes the tree and parses tokens (without the program name) against this command.
// Failures are returned as *ParseError.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	p.Freeze()

	return newEngine(p.tree, p.id, parse.NewState(tokens)).run()
}

// ParseString splits a shell-style command line into tokens and parses them
func (p *Parser) ParseString(cmdline string) (*Result, error) {
	tokens, err := parse.Split(cmdline)
	if err != nil {
		return nil, &ParseError{
			Path: p.Path(),
			Err:  errs.ErrInvalidCommandLine.Wrap(err),
		}
	}

	return p.Parse(tokens)
}

// FormatUsage renders the usage synopsis of the command
func (p *Parser) FormatUsage() string {
	return p.tree.renderer.FormatUsage(p)
}

// FormatHelp renders the description, the arguments, the sub-commands and the epilogue
func (p *Parser) FormatHelp() string {
	return p.tree.renderer.FormatHelp(p, p.tree.helpConfig)
}

// PrintUsage writes the usage synopsis to w
func (p *Parser) PrintUsage(w io.Writer) error {
	_, err := fmt.Fprintln(w, p.FormatUsage())

	return err
}

// PrintHelp writes the usage synopsis followed by the help text to w. When w is a terminal the
// help text is wrapped to its width.
func (p *Parser) PrintHelp(w io.Writer) error {
	config := p.tree.helpConfig
	if width, ok := util.TerminalWidth(w); ok {
		config.Width = width
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s", p.FormatUsage(), p.tree.renderer.FormatHelp(p, config))

	return err
}
