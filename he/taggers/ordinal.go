package taggers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// OrdinalFst classifies ordinal numbers 1st to 10th, masculine and feminine,
// e.g. ראשונה ⇒ ordinal { integer: "1" }.
//
// Ordinals are not part of the classifier; Graph is used by DateFst for
// days of the month.
type OrdinalFst struct {
	he.GraphFst
	Graph *itn.Fst
}

// NewOrdinalFst creates the ordinal grammar.
func NewOrdinalFst(lex *he.Lexicons) (*OrdinalFst, error) {
	o := &OrdinalFst{GraphFst: he.NewGraphFst("ordinal", he.Classify, true)}
	o.Graph = alt(he.StringFile(lex.OrdinalMasc), he.StringFile(lex.OrdinalFem)).MustOptimize()
	if err := o.SetFst(o.AddTokens(he.Field("integer", o.Graph))); err != nil {
		return nil, err
	}
	return o, nil
}
