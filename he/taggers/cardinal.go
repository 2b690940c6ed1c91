package taggers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// CardinalFst classifies cardinal numbers from 0 to 999,999, e.g.
//
//    מינוס עשרים ושלוש  ⇒  cardinal { negative: "-" integer: "23" }
//
// Masculine and feminine forms are accepted, the conjunction vav before the
// last part is optional. Tokens are produced for numbers ≥ 10 only; single
// digits are too ambiguous in running text and are left to other
// categories.
//
// The graphs of CardinalFst are building blocks for other grammars. They
// output plain digit strings without leading zeros.
type CardinalFst struct {
	he.GraphFst
	GraphDigit       *itn.Fst // 1–9
	GraphTwoDigit    *itn.Fst // 1–99
	GraphTeenAndTies *itn.Fst // 10–99
	GraphHundreds    *itn.Fst // 100–999
	GraphThousands   *itn.Fst // 1,000–999,999
	GraphNoException *itn.Fst // 0–999,999
	Negative         *itn.Fst // optional negative field
}

// NewCardinalFst creates the cardinal grammar.
func NewCardinalFst(lex *he.Lexicons) (*CardinalFst, error) {
	c := &CardinalFst{GraphFst: he.NewGraphFst("cardinal", he.Classify, true)}
	// separator between orders of magnitude: "עשרים ושלוש", "מאה עשרים"
	sep := cat(itn.Delete(itn.Plus(itn.Chars(he.WhiteSpace))), opt(he.DeleteAnd))
	digit := alt(he.StringFile(lex.DigitMasc), he.StringFile(lex.DigitFem)).MustOptimize()
	zero := he.StringFile(lex.Zero)
	teens := alt(he.StringFile(lex.TeenMasc), he.StringFile(lex.TeenFem))
	ties := cat(he.StringFile(lex.Ties), alt(ins("0"), cat(sep, digit)))
	teenAndTies := alt(teens, ties).MustOptimize()
	pad2 := alt(cat(ins("0"), digit), teenAndTies)
	hundreds := cat(he.StringFile(lex.Hundreds), alt(ins("00"), cat(sep, pad2))).MustOptimize()
	pad3 := alt(cat(ins("00"), digit), cat(ins("0"), teenAndTies), hundreds)
	multiple := cat(
		alt(teenAndTies, hundreds),
		itn.Delete(itn.Plus(itn.Chars(he.WhiteSpace))),
		del("אלף"),
	)
	thousands := cat(
		alt(he.StringFile(lex.Thousands), multiple),
		alt(ins("000"), cat(sep, pad3)),
	).MustOptimize()
	c.GraphDigit = digit
	c.GraphTeenAndTies = teenAndTies
	c.GraphTwoDigit = alt(digit, teenAndTies).MustOptimize()
	c.GraphHundreds = hundreds
	c.GraphThousands = thousands
	c.GraphNoException = alt(zero, c.GraphTwoDigit, hundreds, thousands).MustOptimize()
	c.Negative = opt(cat(
		he.Field("negative", itn.Cross("מינוס", "-")),
		itn.Delete(itn.Plus(itn.Chars(he.WhiteSpace))),
		he.InsertSpace,
	)).MustOptimize()
	//
	atLeastTen := alt(teenAndTies, hundreds, thousands)
	graph := cat(c.Negative, he.Field("integer", atLeastTen))
	if err := c.SetFst(c.AddTokens(graph)); err != nil {
		return nil, err
	}
	tracer().Infof("cardinal grammar ready")
	return c, nil
}
