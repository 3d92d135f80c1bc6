package internal

import (
	"github.com/jinzhu/inflection"
)

func init() {
	Defaults.MustRegister(&Rule{
		Type:      Plural,
		Irregular: irregulars,
		Fallback:  inflection.Plural,
	})

	singulars := make([]*IrregularItem, len(irregulars))
	for i, item := range irregulars {
		singulars[i] = &IrregularItem{Word: item.Replacement, Replacement: item.Word}
	}

	Defaults.MustRegister(&Rule{
		Type:      Singular,
		Irregular: singulars,
		Fallback:  inflection.Singular,
	})
}

var irregulars = []*IrregularItem{
	{"person", "people"},
	{"man", "men"},
	{"human", "humans"},
	{"child", "children"},
	{"ox", "oxen"},
	{"foot", "feet"},
	{"tooth", "teeth"},
	{"goose", "geese"},
	{"louse", "lice"},
	{"mouse", "mice"},
	{"criterion", "criteria"},
	{"phenomenon", "phenomena"},
	{"genus", "genera"},
	{"octopus", "octopuses"},
	{"canvas", "canvases"},
	{"leaf", "leaves"},
	{"loaf", "loaves"},
	{"thief", "thieves"},
	{"cafe", "cafes"},
}
