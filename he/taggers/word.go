package taggers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// WordFst passes through any run of characters other than white space and
// double quotes: שלום ⇒ word { name: "שלום" }.
type WordFst struct {
	he.GraphFst
}

// NewWordFst creates the word grammar.
func NewWordFst() (*WordFst, error) {
	w := &WordFst{GraphFst: he.NewGraphFst("word", he.Classify, true)}
	char, err := he.NotSpace.Difference("word_char", itn.MustClass("quote", '"'))
	if err != nil {
		return nil, err
	}
	if err := w.SetFst(w.AddTokens(he.Field("name", itn.Plus(itn.Chars(char))))); err != nil {
		return nil, err
	}
	return w, nil
}
