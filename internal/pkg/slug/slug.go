// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// Slugs are the external lookup key for articles (e.g. "how-to-train-your-dragon").
// Generation is deterministic: the same title always yields the same slug, so
// uniqueness has to be checked against storage before create.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Make converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// Pipeline: NFD normalization, combining-mark removal (é → e), lowercase,
// non-alphanumeric runs replaced with single hyphens, leading/trailing
// hyphens trimmed.
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}
