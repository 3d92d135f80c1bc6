// Package inflect converts words between naming conventions, rendering
// registered acronyms as fixed upper case units.
//
// Every IsXxx predicate is the fixed point of the matching ToXxx transform,
// so a string is valid for a case exactly when converting it changes nothing.
package inflect

import (
	"strings"

	"github.com/octohelm/inflector/pkg/acronym"
	"github.com/octohelm/inflector/pkg/camelcase"
	"github.com/octohelm/inflector/pkg/inflector"
)

type Option func(c *Converter)

// WithRegistry binds the converter to a shared registry.
func WithRegistry(r *acronym.Registry) Option {
	return func(c *Converter) {
		c.registry = r
	}
}

// WithAcronyms binds the converter to a new registry holding acronyms.
func WithAcronyms(acronyms ...string) Option {
	return func(c *Converter) {
		c.registry = acronym.NewRegistry(acronyms...)
	}
}

func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = acronym.NewRegistry()
	}
	return c
}

type Converter struct {
	registry *acronym.Registry
}

func (c *Converter) Acronyms() *acronym.Registry {
	return c.registry
}

// Convert renders s in style. Each call works on one snapshot of the acronyms.
func (c *Converter) Convert(s string, style camelcase.Case) string {
	if !style.AcronymAware() {
		return style.Convert(s)
	}

	set := c.registry.Snapshot()
	if set.Len() == 0 {
		return style.Convert(s)
	}

	return camelcase.Join(tokens(s), style.Linker(), func(w string, i int) string {
		// camelCase always starts lower case, even with an acronym
		if style == camelcase.Camel && i == 0 {
			return style.Word(w, i)
		}
		if upper := camelcase.ToUpper(w); set.Has(upper) {
			return upper
		}
		return style.Word(w, i)
	})
}

// tokens splits s the way snake_case does and returns the lower cased words.
func tokens(s string) []string {
	snake := camelcase.Snake.Convert(s)
	if snake == "" {
		return nil
	}
	return strings.Split(snake, camelcase.Snake.Linker())
}

// Is reports whether s is a fixed point of Convert(s, style).
func (c *Converter) Is(s string, style camelcase.Case) bool {
	return c.Convert(s, style) == s
}

func (c *Converter) ToClassCase(s string) string          { return c.Convert(s, camelcase.Pascal) }
func (c *Converter) ToPascalCase(s string) string         { return c.Convert(s, camelcase.Pascal) }
func (c *Converter) ToCamelCase(s string) string          { return c.Convert(s, camelcase.Camel) }
func (c *Converter) ToSnakeCase(s string) string          { return c.Convert(s, camelcase.Snake) }
func (c *Converter) ToScreamingSnakeCase(s string) string { return c.Convert(s, camelcase.UpperSnake) }
func (c *Converter) ToKebabCase(s string) string          { return c.Convert(s, camelcase.Kebab) }
func (c *Converter) ToTrainCase(s string) string          { return c.Convert(s, camelcase.Train) }
func (c *Converter) ToSentenceCase(s string) string       { return c.Convert(s, camelcase.Sentence) }
func (c *Converter) ToTitleCase(s string) string          { return c.Convert(s, camelcase.Title) }

// ToLowerCase lower cases the whole string without touching word boundaries.
func (c *Converter) ToLowerCase(s string) string {
	return camelcase.ToLower(s)
}

// ToUpperCase upper cases the whole string without touching word boundaries.
func (c *Converter) ToUpperCase(s string) string {
	return camelcase.ToUpper(s)
}

// ToTableCase snake cases s and pluralizes it: "Person" -> "people".
func (c *Converter) ToTableCase(s string) string {
	return inflector.Pluralize(c.ToSnakeCase(s))
}

const ForeignKeySuffix = "_id"

// ToForeignKey snake cases s and appends "_id" unless it is already there.
func (c *Converter) ToForeignKey(s string) string {
	snake := c.ToSnakeCase(s)
	if strings.HasSuffix(snake, ForeignKeySuffix) {
		return snake
	}
	return snake + ForeignKeySuffix
}

func (c *Converter) IsClassCase(s string) bool          { return c.Is(s, camelcase.Pascal) }
func (c *Converter) IsPascalCase(s string) bool         { return c.Is(s, camelcase.Pascal) }
func (c *Converter) IsCamelCase(s string) bool          { return c.Is(s, camelcase.Camel) }
func (c *Converter) IsSnakeCase(s string) bool          { return c.Is(s, camelcase.Snake) }
func (c *Converter) IsScreamingSnakeCase(s string) bool { return c.Is(s, camelcase.UpperSnake) }
func (c *Converter) IsKebabCase(s string) bool          { return c.Is(s, camelcase.Kebab) }
func (c *Converter) IsTrainCase(s string) bool          { return c.Is(s, camelcase.Train) }
func (c *Converter) IsSentenceCase(s string) bool       { return c.Is(s, camelcase.Sentence) }
func (c *Converter) IsTitleCase(s string) bool          { return c.Is(s, camelcase.Title) }

func (c *Converter) IsTableCase(s string) bool {
	return c.ToTableCase(s) == s
}

func (c *Converter) IsForeignKey(s string) bool {
	return c.ToForeignKey(s) == s
}
