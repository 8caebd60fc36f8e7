// Package flagx lets several components parse their own flags out of one
// shared command line without tripping over each other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Flag names a flag a component owns. Name is given without dashes; both
// -name and --name match it. A Bool flag never takes the following argument
// as its value.
type Flag struct {
	Name string
	Bool bool
}

// Value is a flag that takes a value: "-a x" or "-a=x".
func Value(name string) Flag { return Flag{Name: name} }

// Switch is a boolean flag: "-v" or "-v=false".
func Switch(name string) Flag { return Flag{Name: name, Bool: true} }

// FilterArgs returns the arguments that belong to the allowed flags, with
// their values, in their original order. Everything after "--" is ignored.
//
// Supported formats:
//
//	-c conf.json      value as the next argument
//	--config=conf.yml value joined with '='
//	-v                boolean switch
func FilterArgs(args []string, allowed ...Flag) []string {
	byName := make(map[string]Flag, len(allowed))
	for _, f := range allowed {
		byName[f.Name] = f
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, joined := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		f, ok := byName[name]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if joined || f.Bool {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// ConfigFile extracts the config file path given with -c or -config. It
// returns "" when neither is present; the last occurrence wins.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, Value("c"), Value("config")))

	return path
}
