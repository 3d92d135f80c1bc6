// Package inflector inflects single words and qualified names:
// plural and singular forms, ordinals and module paths.
package inflector

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gobuffalo/flect"

	"github.com/octohelm/inflector/pkg/camelcase"
	"github.com/octohelm/inflector/pkg/inflector/internal"
)

func Pluralize(s string) string {
	return internal.Defaults.Inflected(internal.Plural, s)
}

func Singularize(s string) string {
	return internal.Defaults.Inflected(internal.Singular, s)
}

// Ordinalize appends the ordinal suffix to an integer: "1" -> "1st", "12" -> "12th".
// Anything else is returned unchanged.
func Ordinalize(s string) string {
	return flect.Ordinalize(s)
}

var ordinalSuffixes = []string{"st", "nd", "rd", "th"}

// Deordinalize strips the ordinal suffix of "1st", "22nd", "3rd" or "4th".
// Decimals are returned unchanged.
func Deordinalize(s string) string {
	if strings.Contains(s, ".") {
		return s
	}

	for _, suffix := range ordinalSuffixes {
		if len(s) > len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
			rest := s[:len(s)-len(suffix)]
			if r, _ := utf8.DecodeLastRuneInString(rest); unicode.IsDigit(r) {
				return rest
			}
		}
	}

	return s
}

// NamespaceSeparator separates the segments of a qualified constant name.
const NamespaceSeparator = "::"

// Demodulize returns the last segment of a qualified name, class cased:
// "ActiveRecord::CoreExtensions::String" -> "String".
func Demodulize(s string) string {
	if i := strings.LastIndex(s, NamespaceSeparator); i >= 0 {
		s = s[i+len(NamespaceSeparator):]
	}
	return camelcase.Pascal.Convert(s)
}

// Deconstantize returns the segment before the last one, class cased:
// "Net::HTTP" -> "Net". A name without namespace gives "".
func Deconstantize(s string) string {
	parts := strings.Split(s, NamespaceSeparator)
	if len(parts) < 2 {
		return ""
	}
	return camelcase.Pascal.Convert(parts[len(parts)-2])
}
