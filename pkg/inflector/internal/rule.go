package internal

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

type RuleType int

const (
	Plural RuleType = iota
	Singular
)

func (t RuleType) String() string {
	if t == Singular {
		return "singular"
	}
	return "plural"
}

type RuleItem struct {
	Pattern     string
	Replacement string
}

type IrregularItem struct {
	Word        string
	Replacement string
}

type CompiledRule struct {
	Replacement string
	Regexp      *regexp.Regexp
}

// MaxCacheSize bounds the results kept per rule.
// Conversions past it are computed and not stored.
const MaxCacheSize = 1 << 14

type Rule struct {
	Type      RuleType
	Rules     []*RuleItem
	Irregular []*IrregularItem
	// Fallback inflects words no overlay or rule matched.
	Fallback func(s string) string

	uninflected         []string
	compiledIrregular   *regexp.Regexp
	compiledUninflected *regexp.Regexp
	compiledRules       []*CompiledRule

	irregularMap map[string]string

	cache *xsync.MapOf[string, string]
}

func (r *Rule) Inflected(s string) string {
	if s == "" {
		return s
	}
	if v, ok := r.cache.Load(s); ok {
		return v
	}
	if r.cache.Size() >= MaxCacheSize {
		return r.inflected(s)
	}
	inflected, _ := r.cache.LoadOrCompute(s, func() string {
		return r.inflected(s)
	})
	return inflected
}

func (r *Rule) inflected(s string) string {
	if r.compiledIrregular != nil {
		if res := r.compiledIrregular.FindStringSubmatch(s); len(res) >= 3 && res[2] != "" {
			var buf strings.Builder

			buf.WriteString(res[1])
			buf.WriteString(res[2][0:1])
			buf.WriteString(r.irregularMap[strings.ToLower(res[2])][1:])

			return buf.String()
		}
	}

	if r.compiledUninflected.MatchString(s) {
		return s
	}

	for _, re := range r.compiledRules {
		if re.Regexp.MatchString(s) {
			return re.Regexp.ReplaceAllString(s, re.Replacement)
		}
	}

	if r.Fallback != nil {
		return r.Fallback(s)
	}

	return s
}

func (r *Rule) Init() error {
	switch r.Type {
	case Plural:
		r.uninflected = slices.Concat(uninflected, uninflectedPlurals)
	case Singular:
		r.uninflected = slices.Concat(uninflected, uninflectedSingulars)
	default:
		return fmt.Errorf("unknown rule type %d", r.Type)
	}

	// the last word decides, so "user_information" stays as is.
	compiledUninflected, err := regexp.Compile(fmt.Sprintf(`(?i)(?:^|[^a-z])(?:%s)$`, strings.Join(r.uninflected, `|`)))
	if err != nil {
		return fmt.Errorf("compile uninflected of %s: %w", r.Type, err)
	}
	r.compiledUninflected = compiledUninflected

	r.irregularMap = make(map[string]string, len(r.Irregular))

	vIrregulars := make([]string, 0, len(r.Irregular))
	for _, item := range r.Irregular {
		word := strings.ToLower(item.Word)
		if word == "" || item.Replacement == "" {
			return fmt.Errorf("invalid irregular %s item %q -> %q", r.Type, item.Word, item.Replacement)
		}
		vIrregulars = append(vIrregulars, regexp.QuoteMeta(word))
		r.irregularMap[word] = item.Replacement
	}

	// already inflected words stay as they are
	for _, item := range r.Irregular {
		word := strings.ToLower(item.Replacement)
		if _, ok := r.irregularMap[word]; !ok {
			vIrregulars = append(vIrregulars, regexp.QuoteMeta(word))
			r.irregularMap[word] = item.Replacement
		}
	}

	if len(vIrregulars) > 0 {
		compiledIrregular, err := regexp.Compile(fmt.Sprintf(`(?i)(^|.*[^a-z])(%s)$`, strings.Join(vIrregulars, `|`)))
		if err != nil {
			return fmt.Errorf("compile irregular of %s: %w", r.Type, err)
		}
		r.compiledIrregular = compiledIrregular
	}

	r.compiledRules = make([]*CompiledRule, len(r.Rules))
	for i, item := range r.Rules {
		re, err := regexp.Compile(item.Pattern)
		if err != nil {
			return fmt.Errorf("compile %s rule %q: %w", r.Type, item.Pattern, err)
		}
		r.compiledRules[i] = &CompiledRule{item.Replacement, re}
	}

	r.cache = xsync.NewMapOf[string, string]()

	return nil
}

var (
	uninflected = []string{
		`Amoyese`, `bison`, `Borghese`, `bream`, `breeches`, `britches`, `buffalo`,
		`cantus`, `carp`, `chassis`, `clippers`, `cod`, `coitus`, `Congoese`,
		`contretemps`, `corps`, `debris`, `diabetes`, `djinn`, `eland`, `elk`,
		`equipment`, `Faroese`, `flounder`, `Foochowese`, `gallows`, `Genevese`,
		`Genoese`, `Gilbertese`, `graffiti`, `headquarters`, `herpes`, `hijinks`,
		`Hottentotese`, `information`, `innings`, `jackanapes`, `Kiplingese`,
		`Kongoese`, `Lucchese`, `mackerel`, `Maltese`, `.*?media`, `mews`, `moose`,
		`mumps`, `Nankingese`, `news`, `nexus`, `Niasese`, `Pekingese`,
		`Piedmontese`, `pincers`, `Pistoiese`, `pliers`, `Portuguese`, `proceedings`,
		`rabies`, `rice`, `rhinoceros`, `salmon`, `Sarawakese`, `scissors`,
		`sea[- ]bass`, `series`, `Shavese`, `shears`, `siemens`, `species`, `swine`,
		`testes`, `trousers`, `trout`, `tuna`, `Vermontese`, `Wenchowese`, `whiting`,
		`wildebeest`, `Yengeese`,
	}
	uninflectedPlurals = []string{
		`.*[nrlm]ese`, `.*deer`, `.*fish`, `.*measles`, `.*ois`, `.*pox`, `.*sheep`,
		`people`,
	}

	uninflectedSingulars = []string{
		`.*[nrlm]ese`, `.*deer`, `.*fish`, `.*measles`, `.*ois`, `.*pox`, `.*sheep`,
		`.*ss`,
	}
)
