package taggers

import (
	"github.com/npillmayer/itn/he"
)

// WhiteListFst classifies phrases with a fixed written form, e.g.
//
//    עורך דין  ⇒  whitelist { name: "עו״ד" }
//
// The phrases are taken from the whitelist lexicon, which may be replaced
// by a user supplied file (see he.LoadLexicons).
type WhiteListFst struct {
	he.GraphFst
}

// NewWhiteListFst creates the whitelist grammar.
func NewWhiteListFst(lex *he.Lexicons) (*WhiteListFst, error) {
	w := &WhiteListFst{GraphFst: he.NewGraphFst("whitelist", he.Classify, true)}
	graph := he.Field("name", he.ConvertSpace(he.StringFile(lex.Whitelist)))
	if err := w.SetFst(w.AddTokens(graph)); err != nil {
		return nil, err
	}
	tracer().Infof("whitelist grammar ready with %d entries", lex.Whitelist.Len())
	return w, nil
}
