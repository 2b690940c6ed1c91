package taggers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// DecimalFst classifies decimal numbers, e.g.
//
//    שלוש נקודה חמש        ⇒  decimal { integer_part: "3" fractional_part: "5" }
//    מינוס שתיים וחצי      ⇒  decimal { negative: "-" integer_part: "2" fractional_part: "5" }
//    אפס נקודה אפס שבע   ⇒  decimal { integer_part: "0" fractional_part: "07" }
//
// The fractional part is read either as a cardinal number or digit by digit.
type DecimalFst struct {
	he.GraphFst
	Numbers *itn.Fst // integer_part and fractional_part fields, without sign
}

// NewDecimalFst creates the decimal grammar.
func NewDecimalFst(cardinal *CardinalFst, lex *he.Lexicons) (*DecimalFst, error) {
	d := &DecimalFst{GraphFst: he.NewGraphFst("decimal", he.Classify, true)}
	space := itn.Delete(itn.Plus(itn.Chars(he.WhiteSpace)))
	digit := alt(cardinal.GraphDigit, he.StringFile(lex.Zero))
	digits := cat(digit, itn.Plus(cat(space, digit)))
	point := cat(
		he.Field("integer_part", cardinal.GraphNoException),
		space, del("נקודה"), space, he.InsertSpace,
		he.Field("fractional_part", alt(cardinal.GraphNoException, digits)),
	)
	half := cat(
		he.Field("integer_part", cardinal.GraphNoException),
		space, del("וחצי"), he.InsertSpace,
		he.Field("fractional_part", ins("5")),
	)
	d.Numbers = alt(point, half).MustOptimize()
	if err := d.SetFst(d.AddTokens(cat(cardinal.Negative, d.Numbers))); err != nil {
		return nil, err
	}
	return d, nil
}
