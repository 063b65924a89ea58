// Package flagx lets several loaders share os.Args: each one parses only the
// flags it owns and ignores the rest.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the allowed flags and their values from args.
//
// Both "-f value" and "-f=value" are recognized. A token following an allowed
// flag is taken as its value unless it starts with "-".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// Names returns "-name" for every flag defined on fs, for use with
// FilterArgs.
func Names(fs *flag.FlagSet) []string {
	var names []string
	fs.VisitAll(func(f *flag.Flag) {
		names = append(names, "-"+f.Name)
	})
	return names
}

// Parse runs fs over the subset of args it defines.
func Parse(fs *flag.FlagSet, args []string) error {
	return fs.Parse(FilterArgs(args, Names(fs)))
}

// ConfigPath returns the JSON config file named by -c or -config in args, or
// "" when neither is given. The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = Parse(fs, args)

	return path
}
