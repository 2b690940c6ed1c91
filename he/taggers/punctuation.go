package taggers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// PunctuationFst classifies a single punctuation character, e.g.
// "," ⇒ punct { name: "," }.
type PunctuationFst struct {
	he.GraphFst
}

// NewPunctuationFst creates the punctuation grammar.
func NewPunctuationFst() (*PunctuationFst, error) {
	p := &PunctuationFst{GraphFst: he.NewGraphFst("punct", he.Classify, true)}
	if err := p.SetFst(p.AddTokens(he.Field("name", itn.Chars(he.Punct)))); err != nil {
		return nil, err
	}
	return p, nil
}
