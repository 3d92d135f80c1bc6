package inflector_test

import (
	"fmt"
	"testing"

	testingx "github.com/octohelm/x/testing"

	"github.com/octohelm/inflector/pkg/inflector"
)

func ExamplePluralize() {
	fmt.Println(inflector.Pluralize("person"))
	fmt.Println(inflector.Pluralize("user_person"))
	fmt.Println(inflector.Pluralize("post"))
	fmt.Println(inflector.Pluralize("information"))
	// Output:
	// people
	// user_people
	// posts
	// information
}

func TestPluralize(t *testing.T) {
	for input, expect := range map[string]string{
		"":         "",
		"Person":   "People",
		"people":   "people",
		"child":    "children",
		"box":      "boxes",
		"category": "categories",
		"foo_bar":  "foo_bars",
		"foo_bars": "foo_bars",
		"sheep":    "sheep",
		"men":      "men",
	} {
		t.Run(input, func(t *testing.T) {
			testingx.Expect(t, inflector.Pluralize(input), testingx.Be(expect))
		})
	}
}

func TestSingularize(t *testing.T) {
	for input, expect := range map[string]string{
		"people":     "person",
		"People":     "Person",
		"children":   "child",
		"posts":      "post",
		"categories": "category",
		"person":     "person",
		"business":   "business",
	} {
		t.Run(input, func(t *testing.T) {
			testingx.Expect(t, inflector.Singularize(input), testingx.Be(expect))
		})
	}
}

func TestOrdinalize(t *testing.T) {
	for input, expect := range map[string]string{
		"1":   "1st",
		"2":   "2nd",
		"3":   "3rd",
		"4":   "4th",
		"11":  "11th",
		"12":  "12th",
		"13":  "13th",
		"21":  "21st",
		"102": "102nd",
		"abc": "abc",
	} {
		t.Run(input, func(t *testing.T) {
			testingx.Expect(t, inflector.Ordinalize(input), testingx.Be(expect))
		})
	}
}

func TestDeordinalize(t *testing.T) {
	for input, expect := range map[string]string{
		"1st":   "1",
		"22nd":  "22",
		"3rd":   "3",
		"100th": "100",
		"first": "first",
		"th":    "th",
		"1.5th": "1.5th",
		"42":    "42",
	} {
		t.Run(input, func(t *testing.T) {
			testingx.Expect(t, inflector.Deordinalize(input), testingx.Be(expect))
		})
	}
}

func TestDemodulize(t *testing.T) {
	testingx.Expect(t, inflector.Demodulize("ActiveRecord::CoreExtensions::String"), testingx.Be("String"))
	testingx.Expect(t, inflector.Demodulize("Inflections"), testingx.Be("Inflections"))
	testingx.Expect(t, inflector.Demodulize("a::foo_bar"), testingx.Be("FooBar"))
}

func TestDeconstantize(t *testing.T) {
	testingx.Expect(t, inflector.Deconstantize("Net::HTTP"), testingx.Be("Net"))
	testingx.Expect(t, inflector.Deconstantize("A::B::C"), testingx.Be("B"))
	testingx.Expect(t, inflector.Deconstantize("String"), testingx.Be(""))
}
