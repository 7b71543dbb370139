package goargs

import (
	"sort"
	"time"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/internal/util"
)

// Result holds the values of one Parse call for one command. Values are stored under the
// destination key of each argument; every query also accepts any alias of the argument.
// Flags hold true, arity 1 values a string and larger arities a []string.
type Result struct {
	command string
	path    []string
	values  map[string]any
	seen    map[string]bool
	node    *node
	sub     *Result
}

func newResult(n *node) *Result {
	return &Result{
		command: n.name,
		path:    n.path,
		values:  map[string]any{},
		seen:    map[string]bool{},
		node:    n,
	}
}

// record stores value for arg; a repeated option overwrites its earlier value
func (r *Result) record(arg *Argument, value any) {
	r.values[arg.dest] = value
	r.seen[arg.dest] = true
}

// key resolves name to a destination key: aliases first, since a destination key may spell
// the alias of another argument
func (r *Result) key(name string) string {
	if arg, ok := r.node.alias(name); ok {
		return arg.dest
	}

	return name
}

// Command returns the name of the command this Result belongs to
func (r *Result) Command() string {
	return r.command
}

// Path returns the command path from the root program to this command
func (r *Result) Path() []string {
	return append([]string(nil), r.path...)
}

// SubCommand returns the name and the Result of the selected sub-command, if any
func (r *Result) SubCommand() (string, *Result) {
	if r.sub == nil {
		return "", nil
	}

	return r.sub.command, r.sub
}

// Get returns the raw value recorded for name. Slices are copied.
func (r *Result) Get(name string) (any, bool) {
	v, ok := r.values[r.key(name)]
	if s, isSlice := v.([]string); isSlice {
		return append([]string(nil), s...), ok
	}

	return v, ok
}

// Has reports whether name has a value, supplied or defaulted
func (r *Result) Has(name string) bool {
	_, ok := r.values[r.key(name)]
	return ok
}

// Seen reports whether name was supplied on the command line rather than filled by its default
func (r *Result) Seen(name string) bool {
	return r.seen[r.key(name)]
}

// Keys returns the destination keys holding a value, sorted
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Values returns a copy of the recorded values
func (r *Result) Values() map[string]any {
	values := make(map[string]any, len(r.values))
	for k, v := range r.values {
		if s, isSlice := v.([]string); isSlice {
			v = append([]string(nil), s...)
		}
		values[k] = v
	}

	return values
}

func (r *Result) lookup(name string) (any, error) {
	v, ok := r.Get(name)
	if !ok {
		return nil, errs.ErrValueNotFound.WithArgs(name)
	}

	return v, nil
}

func (r *Result) scalar(name, kind string) (string, error) {
	v, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	s, ok := util.AsString(v)
	if !ok {
		return "", errs.ErrConversion.WithArgs(name, kind)
	}

	return s, nil
}

// String returns the value of an arity 1 argument
func (r *Result) String(name string) (string, error) {
	return r.scalar(name, "string")
}

// Strings returns the values of an argument as a slice
func (r *Result) Strings(name string) ([]string, error) {
	v, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	s, ok := util.AsStrings(v)
	if !ok {
		return nil, errs.ErrConversion.WithArgs(name, "[]string")
	}

	return s, nil
}

// Bool returns the value of a flag, or of a value argument holding a boolean literal
func (r *Result) Bool(name string) (bool, error) {
	v, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}

	s, ok := util.AsString(v)
	if !ok {
		return false, errs.ErrConversion.WithArgs(name, "bool")
	}
	b, err := util.ParseBool(s)
	if err != nil {
		return false, errs.ErrConversion.WithArgs(name, "bool").Wrap(err)
	}

	return b, nil
}

// Int returns the value as an integer. Prefixed literals such as 0x1f are accepted.
func (r *Result) Int(name string) (int64, error) {
	s, err := r.scalar(name, "int")
	if err != nil {
		return 0, err
	}
	i, err := util.ParseInt(s)
	if err != nil {
		return 0, errs.ErrConversion.WithArgs(name, "int").Wrap(err)
	}

	return i, nil
}

// Float returns the value as a float
func (r *Result) Float(name string) (float64, error) {
	s, err := r.scalar(name, "float")
	if err != nil {
		return 0, err
	}
	f, err := util.ParseFloat(s)
	if err != nil {
		return 0, errs.ErrConversion.WithArgs(name, "float").Wrap(err)
	}

	return f, nil
}

// Duration returns the value as a time.Duration ("1h30m")
func (r *Result) Duration(name string) (time.Duration, error) {
	s, err := r.scalar(name, "duration")
	if err != nil {
		return 0, err
	}
	d, err := util.ParseDuration(s)
	if err != nil {
		return 0, errs.ErrConversion.WithArgs(name, "duration").Wrap(err)
	}

	return d, nil
}

// Time returns the value as a time in the local time zone. Most common date layouts are
// recognised.
func (r *Result) Time(name string) (time.Time, error) {
	return r.TimeIn(name, time.Local)
}

// TimeIn returns the value as a time, reading dates without a zone in loc
func (r *Result) TimeIn(name string, loc *time.Location) (time.Time, error) {
	s, err := r.scalar(name, "time")
	if err != nil {
		return time.Time{}, err
	}
	t, err := util.ParseTime(s, loc)
	if err != nil {
		return time.Time{}, errs.ErrConversion.WithArgs(name, "time").Wrap(err)
	}

	return t, nil
}
