package internal

import (
	"strconv"
	"testing"

	testingx "github.com/octohelm/x/testing"
)

func TestRule(t *testing.T) {
	i := &Inflector{}

	i.MustRegister(&Rule{
		Type: Plural,
		Rules: []*RuleItem{
			{Pattern: `(?i)um$`, Replacement: "a"},
		},
		Irregular: []*IrregularItem{
			{Word: "person", Replacement: "people"},
		},
		Fallback: func(s string) string {
			return s + "s"
		},
	})

	testingx.Expect(t, i.Inflected(Plural, "datum"), testingx.Be("data"))
	testingx.Expect(t, i.Inflected(Plural, "Person"), testingx.Be("People"))
	testingx.Expect(t, i.Inflected(Plural, "sales_person"), testingx.Be("sales_people"))
	testingx.Expect(t, i.Inflected(Plural, "people"), testingx.Be("people"))
	testingx.Expect(t, i.Inflected(Plural, "news"), testingx.Be("news"))
	testingx.Expect(t, i.Inflected(Plural, "user_information"), testingx.Be("user_information"))
	testingx.Expect(t, i.Inflected(Plural, "post"), testingx.Be("posts"))

	// no singular rule registered
	testingx.Expect(t, i.Inflected(Singular, "posts"), testingx.Be("posts"))
}

func TestRuleInvalid(t *testing.T) {
	err := (&Inflector{}).Register(&Rule{
		Type:  Plural,
		Rules: []*RuleItem{{Pattern: `(`, Replacement: ""}},
	})
	testingx.Expect(t, err == nil, testingx.Be(false))

	err = (&Inflector{}).Register(&Rule{
		Type:      Singular,
		Irregular: []*IrregularItem{{Word: "", Replacement: "x"}},
	})
	testingx.Expect(t, err == nil, testingx.Be(false))
}

func TestRuleCacheBound(t *testing.T) {
	calls := 0
	r := &Rule{
		Type: Plural,
		Fallback: func(s string) string {
			calls++
			return s
		},
	}
	testingx.Expect(t, r.Init(), testingx.BeNil[error]())

	for n := 0; n < MaxCacheSize+10; n++ {
		r.Inflected("w" + strconv.Itoa(n))
	}
	testingx.Expect(t, r.cache.Size(), testingx.Be(MaxCacheSize))
	testingx.Expect(t, calls, testingx.Be(MaxCacheSize+10))

	// cached
	r.Inflected("w0")
	testingx.Expect(t, calls, testingx.Be(MaxCacheSize+10))
}
