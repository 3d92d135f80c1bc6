package camelcase

import (
	"unicode"
	"unicode/utf8"
)

// Split splits the camelcase word and returns a list of words. It also
// supports digits. Both lower camel case and upper camel case are supported.
// For more info please check: http://en.wikipedia.org/wiki/CamelCase
// Splitting rules
//
//  1. If string is not valid UTF-8, return it without splitting as
//     single item array.
//  2. Assign all unicode characters into one of 5 sets: lower case
//     letters, upper case letters, numbers, separators and all other
//     characters (uncased letters). Marks stay with the rune before them.
//  3. Iterate through characters of string, introducing splits
//     between adjacent characters that belong to different sets.
//     Digits stick to the word before them.
//  4. Iterate through array of split strings, and if a given string
//     is upper case:
//     if subsequent string is lower case:
//     move last character of upper case string to beginning of
//     lower case string
func Split(src string) (entries []string) {
	// don't split invalid utf8
	if !utf8.ValidString(src) {
		return []string{src}
	}

	entries = make([]string, 0)

	runes := make([][]rune, 0, len(src))
	lastClass := RuneType(-1)

	for _, r := range src {
		class := classOf(r)

		if len(runes) > 0 && (class == lastClass || class == RuneMark || joinsPrevious(class, lastClass)) {
			runes[len(runes)-1] = append(runes[len(runes)-1], r)
			if class != RuneMark {
				lastClass = class
			}
			continue
		}

		runes = append(runes, []rune{r})
		lastClass = class
	}

	// handle upper case -> lower case sequences, e.g.
	// "PDFL", "oader" -> "PDF", "Loader"
	for i := 0; i < len(runes)-1; i++ {
		if unicode.IsUpper(runes[i][len(runes[i])-1]) && unicode.IsLower(runes[i+1][0]) {
			runes[i+1] = append([]rune{runes[i][len(runes[i])-1]}, runes[i+1]...)
			runes[i] = runes[i][:len(runes[i])-1]
		}
	}

	for _, s := range runes {
		if len(s) > 0 {
			entries = append(entries, string(s))
		}
	}

	return
}

// Words splits src like Split and drops separator-only chunks.
func Words(src string) []string {
	entries := Split(src)
	words := entries[:0]

	for _, e := range entries {
		if isWord(e) {
			words = append(words, e)
		}
	}

	return words
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func joinsPrevious(class RuneType, lastClass RuneType) bool {
	switch class {
	case RuneDigit:
		return lastClass == RuneUpper || lastClass == RuneLower || lastClass == RuneOther
	case RuneLower:
		return lastClass == RuneDigit
	}
	return false
}

func classOf(r rune) RuneType {
	switch {
	case unicode.IsLower(r):
		return RuneLower
	case unicode.IsUpper(r), unicode.IsTitle(r):
		return RuneUpper
	case unicode.IsDigit(r):
		return RuneDigit
	case unicode.IsMark(r):
		return RuneMark
	case unicode.IsLetter(r):
		return RuneOther
	default:
		return RuneSeparator
	}
}

type RuneType int

const (
	RuneOther RuneType = iota
	RuneLower
	RuneUpper
	RuneDigit
	RuneMark
	RuneSeparator
)
