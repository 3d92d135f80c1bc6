package camelcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case is a naming convention: a word separator plus a per-word casing rule.
type Case int

const (
	Pascal Case = iota
	Camel
	Snake
	UpperSnake
	Kebab
	UpperKebab
	Train
	Sentence
	Title
	Lower
	Upper
	Flat
	UpperFlat
)

var caseNames = map[Case]string{
	Pascal:     "PascalCase",
	Camel:      "camelCase",
	Snake:      "snake_case",
	UpperSnake: "UPPER_SNAKE_CASE",
	Kebab:      "kebab-case",
	UpperKebab: "UPPER-KEBAB-CASE",
	Train:      "Train-Case",
	Sentence:   "Sentence case",
	Title:      "Title Case",
	Lower:      "lower case",
	Upper:      "UPPER CASE",
	Flat:       "flatcase",
	UpperFlat:  "UPPERFLATCASE",
}

func (c Case) String() string {
	if n, ok := caseNames[c]; ok {
		return n
	}
	return "Case(?)"
}

// AcronymAware reports whether the case keeps enough word boundaries and
// capitalization for an acronym to be visible in the output.
func (c Case) AcronymAware() bool {
	switch c {
	case Pascal, Camel, Title, Train, Sentence:
		return true
	}
	return false
}

// Linker returns the separator placed between words.
func (c Case) Linker() string {
	switch c {
	case Snake, UpperSnake:
		return "_"
	case Kebab, UpperKebab, Train:
		return "-"
	case Sentence, Title, Lower, Upper:
		return " "
	}
	return ""
}

// Word renders the i-th word of the output.
func (c Case) Word(w string, i int) string {
	switch c {
	case Pascal, Title, Train:
		return Capitalize(ToLower(w))
	case Camel:
		if i == 0 {
			return ToLower(w)
		}
		return Capitalize(ToLower(w))
	case Sentence:
		if i == 0 {
			return Capitalize(ToLower(w))
		}
		return ToLower(w)
	case UpperSnake, UpperKebab, Upper, UpperFlat:
		return ToUpper(w)
	}
	return ToLower(w)
}

// Convert renders s in the case.
func (c Case) Convert(s string) string {
	return Join(Words(s), c.Linker(), c.Word)
}

// Join renders words with linker between them, each passed through transWord.
func Join(words []string, linker string, transWord func(w string, i int) string) string {
	var b strings.Builder

	for i, word := range words {
		if i > 0 {
			b.WriteString(linker)
		}
		b.WriteString(transWord(word, i))
	}

	return b.String()
}

var (
	LowerSnakeCase = Snake.Convert
	UpperSnakeCase = UpperSnake.Convert
	LowerKebabCase = Kebab.Convert
	UpperKebabCase = UpperKebab.Convert
	LowerCamelCase = Camel.Convert
	UpperCamelCase = Pascal.Convert
)

// ToLower maps s to lower case with Unicode special casing.
// cases.Caser is stateful, so one is created per call.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ToUpper maps s to upper case with Unicode special casing.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Capitalize upper-cases the first rune of s and keeps the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}
