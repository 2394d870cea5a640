// Package flagx lets several independent flag sets share one command line.
//
// The config file flag is read before anything else, and the remaining
// settings later, each by its own flag.FlagSet. A FlagSet fails on flags it
// does not define, so every reader first keeps only the arguments it owns.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the arguments in args that set one of the named flags,
// together with their values, in their original order. Names are given
// without dashes and match both the -name and --name spellings, either as
// "-name value" or "-name=value".
//
// A separate value is taken unless it looks like a flag itself. Scanning
// stops at "--", as flag.Parse does.
//
//	FilterArgs([]string{"-c", "neatdog.yaml", "-t", "15s", "-x"}, "t")
//	// []string{"-t", "15s"}
func FilterArgs(args []string, names ...string) []string {
	owned := make(map[string]bool, len(names))
	for _, n := range names {
		owned[n] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		name, hasValue, ok := flagName(arg)
		if !ok || !owned[name] {
			continue
		}

		filtered = append(filtered, arg)
		if !hasValue && i+1 < len(args) && !looksLikeFlag(args[i+1]) {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// flagName splits "-name", "--name" and "-name=value" forms.
func flagName(arg string) (name string, hasValue, ok bool) {
	if !strings.HasPrefix(arg, "-") || arg == "-" {
		return "", false, false
	}
	name = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, _, hasValue = strings.Cut(name, "=")
	return name, hasValue, name != ""
}

func looksLikeFlag(s string) bool {
	_, _, ok := flagName(s)
	return ok
}

// ConfigFileFlag returns the config file path given in args with -c or
// -config, or "" when neither is present. The last occurrence wins.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file (.json, .yaml or .yml)")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, "c", "config"))

	return path
}
