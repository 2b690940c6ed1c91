package verbalizers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// VerbalizeRule is the name of the sentence verbalizer within a grammar cache.
const VerbalizeRule = "verbalize"

// VerbalizeFst verbalizes a single tagged token of any category, without
// the surrounding tokens { … } envelope.
type VerbalizeFst struct {
	he.GraphFst
}

// NewVerbalizeFst creates the verbalizer for all categories.
func NewVerbalizeFst() (*VerbalizeFst, error) {
	v := &VerbalizeFst{GraphFst: he.NewGraphFst("verbalize", he.Verbalize, true)}
	cardinal, err := NewCardinalFst()
	if err != nil {
		return nil, err
	}
	decimal, err := NewDecimalFst()
	if err != nil {
		return nil, err
	}
	measure, err := NewMeasureFst(cardinal, decimal)
	if err != nil {
		return nil, err
	}
	date, err := NewDateFst()
	if err != nil {
		return nil, err
	}
	time, err := NewTimeFst()
	if err != nil {
		return nil, err
	}
	grammars := []he.Grammar{cardinal, decimal, measure, date, time}
	for _, category := range []string{"whitelist", "word", "punct"} {
		n, err := NewNameFst(category)
		if err != nil {
			return nil, err
		}
		grammars = append(grammars, n)
	}
	fsts := make([]*itn.Fst, len(grammars))
	for i, g := range grammars {
		fsts[i] = g.Fst()
	}
	if err := v.SetFst(alt(fsts...)); err != nil {
		return nil, err
	}
	return v, nil
}

// VerbalizeFinalFst verbalizes a complete tagged sentence:
//
//    tokens { cardinal { integer: "23" } } tokens { word { name: "ילדים" } }  ⇒  23 ילדים
type VerbalizeFinalFst struct {
	he.GraphFst
}

// NewVerbalizeFinalFst creates the sentence verbalizer. If cache is not
// nil and holds a compiled verbalizer, the grammars are not rebuilt;
// otherwise the newly built verbalizer is stored into cache.
func NewVerbalizeFinalFst(cache he.Cache) (*VerbalizeFinalFst, error) {
	v := &VerbalizeFinalFst{GraphFst: he.NewGraphFst("verbalize_final", he.Verbalize, true)}
	if v.Restore(cache, VerbalizeRule) {
		return v, nil
	}
	tracer().Infof("creating verbalize grammars")
	verbalize, err := NewVerbalizeFst()
	if err != nil {
		return nil, err
	}
	token := cat(
		del("tokens"), he.DeleteSpace, del("{"), he.DeleteSpace,
		verbalize.Fst(),
		he.DeleteSpace, del("}"),
	)
	graph := cat(
		he.DeleteSpace,
		itn.Star(cat(token, he.DeleteExtraSpace)),
		token,
		he.DeleteSpace,
	)
	if err = v.SetFst(graph); err != nil {
		return nil, err
	}
	if cache != nil {
		if err = cache.Store(VerbalizeRule, v.Fst()); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Verbalize renders a tagged sentence.
func (v *VerbalizeFinalFst) Verbalize(tagged string) (string, error) {
	return v.Apply(tagged)
}
