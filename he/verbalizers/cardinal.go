package verbalizers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// CardinalFst verbalizes cardinal numbers, grouping thousands with a comma:
//
//    cardinal { negative: "-" integer: "23000" }  ⇒  -23,000
type CardinalFst struct {
	he.GraphFst
	Numbers *itn.Fst // the fields of a cardinal token
}

// NewCardinalFst creates the cardinal verbalizer.
func NewCardinalFst() (*CardinalFst, error) {
	c := &CardinalFst{GraphFst: he.NewGraphFst("cardinal", he.Verbalize, true)}
	c.Numbers = cat(optionalSign, he.DeleteField("integer", groupThousands())).MustOptimize()
	if err := c.SetFst(c.DeleteTokens(c.Numbers)); err != nil {
		return nil, err
	}
	return c, nil
}

// groupThousands inserts a comma between groups of three digits.
func groupThousands() *itn.Fst {
	digit := itn.Chars(he.Digit)
	return cat(
		itn.Closure(digit, 1, 3),
		itn.Star(cat(ins(","), itn.Closure(digit, 3, 3))),
	)
}
