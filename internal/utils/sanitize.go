package utils

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`\s+`)

// NormalizeUtterance lowercases a phrase and collapses runs of
// whitespace so fuzzy scoring sees a canonical form.
func NormalizeUtterance(phrase string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(strings.ToLower(phrase), " "))
}

// StripWords removes whole-word occurrences of the given words.
// Articles like "the" match the generic custom station far too well,
// and "play" is carrier noise rather than signal.
func StripWords(phrase string, words ...string) string {
	fields := strings.Fields(phrase)
	out := fields[:0]
	for _, f := range fields {
		drop := false
		for _, w := range words {
			if f == w {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}
