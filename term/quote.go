package term

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// QuoteWindows joins args into a single cmd.exe command string. Every
// argument is wrapped in double quotes unconditionally; cmd.exe strips them
// again when splitting, so argument boundaries survive embedded spaces.
func QuoteWindows(args []string) string {
	quoted := lo.Map(args, func(arg string, _ int) string {
		return `"` + arg + `"`
	})
	return strings.Join(quoted, " ")
}

// QuoteBash joins args into a single bash command string. Arguments without
// whitespace or quotes pass through untouched; the rest are single quoted,
// with embedded single quotes escaped, so the shell reproduces the original
// argument boundaries exactly.
func QuoteBash(args []string) string {
	quoted := lo.Map(args, func(arg string, _ int) string {
		if arg == "" || strings.ContainsAny(arg, " \t'") {
			return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
		}
		return arg
	})
	return strings.Join(quoted, " ")
}

// MergeEnv copies the ambient environment (os.Environ layout, KEY=VALUE)
// and applies overrides on top. Overridden keys keep their ambient
// position; keys absent from the ambient set are appended in sorted order
// so the result is deterministic.
func MergeEnv(ambient []string, overrides map[string]string) []string {
	merged := make([]string, 0, len(ambient)+len(overrides))
	replaced := make(map[string]bool, len(overrides))
	for _, entry := range ambient {
		key, _, ok := strings.Cut(entry, "=")
		if ok {
			if value, override := overrides[key]; override {
				merged = append(merged, key+"="+value)
				replaced[key] = true
				continue
			}
		}
		merged = append(merged, entry)
	}
	keys := lo.Keys(overrides)
	sort.Strings(keys)
	for _, key := range keys {
		if !replaced[key] {
			merged = append(merged, key+"="+overrides[key])
		}
	}
	return merged
}
