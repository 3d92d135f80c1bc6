package inflect

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownFormat = errors.New("unknown inflection")

// Transform converts one string.
type Transform = func(s string) string

// Predicate tests one string.
type Predicate = func(s string) bool

func (c *Converter) transforms() map[string]Transform {
	return map[string]Transform{
		"camel":           c.ToCamelCase,
		"class":           c.ToClassCase,
		"pascal":          c.ToPascalCase,
		"snake":           c.ToSnakeCase,
		"screaming_snake": c.ToScreamingSnakeCase,
		"kebab":           c.ToKebabCase,
		"train":           c.ToTrainCase,
		"title":           c.ToTitleCase,
		"table":           c.ToTableCase,
		"sentence":        c.ToSentenceCase,
		"upper":           c.ToUpperCase,
		"lower":           c.ToLowerCase,
		"foreign_key":     c.ToForeignKey,
	}
}

func (c *Converter) predicates() map[string]Predicate {
	return map[string]Predicate{
		"camel":           c.IsCamelCase,
		"class":           c.IsClassCase,
		"pascal":          c.IsPascalCase,
		"snake":           c.IsSnakeCase,
		"screaming_snake": c.IsScreamingSnakeCase,
		"kebab":           c.IsKebabCase,
		"train":           c.IsTrainCase,
		"title":           c.IsTitleCase,
		"table":           c.IsTableCase,
		"sentence":        c.IsSentenceCase,
		"foreign_key":     c.IsForeignKey,
	}
}

// Formats lists the format names accepted by Transformer, without the "_case" aliases.
func Formats() []string {
	return sortedKeys((&Converter{}).transforms())
}

// Transformer resolves a format name like "snake" or "snake_case".
func (c *Converter) Transformer(format string) (Transform, error) {
	transforms := c.transforms()
	if fn, ok := transforms[formatName(format)]; ok {
		return fn, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "'%s', supported: %s", format, strings.Join(sortedKeys(transforms), ", "))
}

// Predicate resolves the predicate of a format name.
func (c *Converter) Predicate(format string) (Predicate, error) {
	predicates := c.predicates()
	if fn, ok := predicates[formatName(format)]; ok {
		return fn, nil
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "'%s', supported: %s", format, strings.Join(sortedKeys(predicates), ", "))
}

// Inflect converts s with the named format.
func (c *Converter) Inflect(format string, s string) (string, error) {
	fn, err := c.Transformer(format)
	if err != nil {
		return "", err
	}
	return fn(s), nil
}

func formatName(format string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(format)), "_case")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
