package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// AsString returns the single string held by a recorded value. A one-element slice is
// accepted so that multi-token values of arity 1 read naturally.
func AsString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []string:
		if len(t) == 1 {
			return t[0], true
		}
	}

	return "", false
}

// AsStrings returns a recorded value as a fresh string slice
func AsStrings(v any) ([]string, bool) {
	switch t := v.(type) {
	case string:
		return []string{t}, true
	case []string:
		return append([]string(nil), t...), true
	case bool:
		return []string{strconv.FormatBool(t)}, true
	}

	return nil, false
}

// ParseBool accepts the values understood by strconv.ParseBool plus yes/no and on/off
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}

	return strconv.ParseBool(strings.TrimSpace(value))
}

// ParseInt parses a base-prefixed (0x, 0o, 0b) or decimal integer
func ParseInt(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 0, 64)
}

// ParseFloat parses a 64-bit float
func ParseFloat(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

// ParseDuration parses a Go duration string such as 1h30m
func ParseDuration(value string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(value))
}

// ParseTime parses a date in any of the layouts understood by dateparse. Dates without
// an explicit zone are interpreted in loc (time.Local when loc is nil).
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	return dateparse.ParseIn(strings.TrimSpace(value), loc)
}
