package taggers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// MeasureFst classifies quantities with a unit, e.g.
//
//    שלושה מיליגרם      ⇒  measure { cardinal { integer: "3" } spaced_units: "מ״ג" }
//    לארבעה סנטימטר     ⇒  measure { prefix: "ל" cardinal { integer: "4" } spaced_units: "ס״מ" }
//    אחוז אחד           ⇒  measure { units: "%" cardinal { integer: "1" } }
//
// Units are either attached to the number when written (%, °) or separated
// by a space. A quantity of one follows its unit in spoken Hebrew; the tag
// keeps this order.
type MeasureFst struct {
	he.GraphFst
}

// NewMeasureFst creates the measure grammar.
func NewMeasureFst(cardinal *CardinalFst, decimal *DecimalFst, lex *he.Lexicons) (*MeasureFst, error) {
	m := &MeasureFst{GraphFst: he.NewGraphFst("measure", he.Classify, true)}
	prefix := opt(cat(he.Field("prefix", he.StringKeys(lex.Prefix)), he.InsertSpace))
	negative := opt(cat(
		he.Field("negative", itn.Cross("מינוס", "-")),
		itn.Delete(itn.Plus(itn.Chars(he.WhiteSpace))),
		he.InsertSpace,
	))
	number := alt(
		cat(ins("cardinal { "), he.Field("integer", cardinal.GraphNoException), ins(" }")),
		cat(ins("decimal { "), decimal.Numbers, ins(" }")),
	)
	unit := alt(
		he.Field("units", he.StringFile(lex.Units)),
		he.Field("spaced_units", he.StringFile(lex.SpacedUnits)),
	).MustOptimize()
	one := itn.Cross("אחד", `cardinal { integer: "1" }`)
	oneFem := itn.Cross("אחת", `cardinal { integer: "1" }`)
	graph := alt(
		cat(prefix, negative, number, he.DeleteExtraSpace, unit),
		cat(prefix, unit, he.DeleteExtraSpace, alt(one, oneFem)),
	)
	if err := m.SetFst(m.AddTokens(graph)); err != nil {
		return nil, err
	}
	tracer().Infof("measure grammar ready")
	return m, nil
}
