package versioning

import (
	"regexp"
	"strings"
)

// includes Unicode separators so keys match the console's for names pasted with non-breaking spaces
var whitespaceRun = regexp.MustCompile(`[\s\x{0B}\p{Zs}\x{FEFF}\x{2028}\x{2029}]+`)

// Slugify lower-cases name and replaces each run of whitespace with "_".
// Leading and trailing whitespace also become "_"; no Unicode folding is applied.
func Slugify(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "_")
}

// ResolveKey returns explicit when set, otherwise the slug of name
func ResolveKey(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	return Slugify(name)
}
