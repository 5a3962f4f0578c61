// Package flagx contains helpers for parsing a known subset of
// command-line flags without tripping over flags owned by other
// components (including the go test runner).
package flagx

import "strings"

// FilterArgs returns the subset of args consisting of the allowed flags
// and their values.
//
// Supported forms:
//
//	-a :3003          flag and value as separate arguments
//	--a=:3003         flag and value combined with '='
//
// Anything not in allowedFlags is dropped, so a flag set parsing the
// result never sees unknown flags.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// a following non-flag argument is this flag's value
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
