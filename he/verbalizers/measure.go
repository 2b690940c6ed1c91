package verbalizers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// MeasureFst verbalizes quantities with a unit. Some units are attached to
// the number, others are separated by a space:
//
//    measure { cardinal { integer: "3" } spaced_units: "מ״ג" }                  ⇒  3 מ״ג
//    measure { cardinal { integer: "1000" } units: "%" }                       ⇒  1,000%
//    measure { units: "%" cardinal { integer: "1" } }                          ⇒  1%
//    measure { prefix: "ל" cardinal { integer: "4" } spaced_units: "ס״מ" }     ⇒  ל-4 ס״מ
type MeasureFst struct {
	he.GraphFst
}

// NewMeasureFst creates the measure verbalizer.
func NewMeasureFst(cardinal *CardinalFst, decimal *DecimalFst) (*MeasureFst, error) {
	m := &MeasureFst{GraphFst: he.NewGraphFst("measure", he.Verbalize, true)}
	char, err := he.NotSpace.Difference("unit_char", itn.MustClass("quote", '"'))
	if err != nil {
		return nil, err
	}
	unitValue := itn.Plus(itn.Chars(char))
	// nested returns the fields of a nested token, removing its braces
	nested := func(name string, fields *itn.Fst) *itn.Fst {
		return cat(del(name), he.DeleteSpace, del("{"), he.DeleteSpace, fields, he.DeleteSpace, del("}"))
	}
	unit := cat(he.DeleteField("units", unitValue), he.DeleteSpace)
	spacedUnit := cat(ins(" "), he.DeleteField("spaced_units", unitValue), he.DeleteSpace)
	numbers := cat(
		alt(nested("cardinal", cardinal.Numbers), nested("decimal", decimal.Numbers)),
		he.DeleteSpace,
		alt(unit, spacedUnit),
	)
	one := cat(he.DeleteSpace, ins("1"), alt(unit, spacedUnit), del(`cardinal { integer: "1" }`))
	graph := cat(optionalPrefix("prefix"), optionalSign, alt(numbers, one))
	if err := m.SetFst(m.DeleteTokens(graph)); err != nil {
		return nil, err
	}
	return m, nil
}
