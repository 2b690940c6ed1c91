package verbalizers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// DecimalFst verbalizes decimal numbers:
//
//    decimal { negative: "-" integer_part: "3" fractional_part: "5" }  ⇒  -3.5
type DecimalFst struct {
	he.GraphFst
	Numbers *itn.Fst // the fields of a decimal token
}

// NewDecimalFst creates the decimal verbalizer.
func NewDecimalFst() (*DecimalFst, error) {
	d := &DecimalFst{GraphFst: he.NewGraphFst("decimal", he.Verbalize, true)}
	d.Numbers = cat(
		optionalSign,
		he.DeleteField("integer_part", groupThousands()),
		he.DeleteSpace,
		ins("."),
		he.DeleteField("fractional_part", digits),
	).MustOptimize()
	if err := d.SetFst(d.DeleteTokens(d.Numbers)); err != nil {
		return nil, err
	}
	return d, nil
}
