package he

import (
	"github.com/npillmayer/itn"
)

// NonBreakingSpace protects spaces inside quoted field values.
const NonBreakingSpace = '\u00A0'

// Character classes.
var (
	Char       = itn.AnyChar("char")
	Digit      = itn.MustClass("digit", []rune("0123456789")...)
	Alpha      = itn.MustClass("alpha", []rune("אבגדהוזחטיכךלמםנןסעפףצץקרשת")...)
	Alnum      = Digit.Union("alnum", Alpha)
	WhiteSpace = itn.MustClass("white_space", ' ', '\t', '\n', '\r', NonBreakingSpace)
	// Punct is ASCII punctuation, except for the double quote delimiting field values.
	Punct    = itn.MustClass("punct", []rune("!#$%&'()*+,-./:;<=>?@[\\]^_`{|}~")...)
	NotSpace = mustDifference(Char, WhiteSpace, "not_space")
	NotQuote = mustDifference(Char, itn.MustClass("quote", '"'), "not_quote")
)

func mustDifference(c, other *itn.CharClass, name string) *itn.CharClass {
	d, err := c.Difference(name, other)
	if err != nil {
		panic(err)
	}
	return d
}

// White space transducers.
var (
	// DeleteSpace deletes any amount of white space, including none.
	DeleteSpace = itn.Delete(itn.Star(itn.Chars(WhiteSpace)))
	// DeleteZeroOrOneSpace deletes a single optional white space character.
	DeleteZeroOrOneSpace = itn.Delete(itn.Optional(itn.Chars(WhiteSpace)))
	// InsertSpace outputs a single space.
	InsertSpace = itn.Insert(" ")
	// DeleteExtraSpace collapses one or more white space characters into a single space.
	DeleteExtraSpace = itn.Concat(itn.Delete(itn.Plus(itn.Chars(WhiteSpace))), itn.Insert(" "))
	// DeleteAnd deletes the conjunction prefix vav.
	DeleteAnd = itn.DeleteString("ו")
	// Minus is the spoken minus sign.
	Minus = itn.Accep("מינוס")
)

// ConvertSpace converts spaces in the output of f to non-breaking spaces.
// Used for field values which may contain spaces.
func ConvertSpace(f *itn.Fst) *itn.Fst {
	return itn.RewriteOutput(f, ' ', NonBreakingSpace)
}

// Field wraps the output of body as a tagged field: name: "<body>".
func Field(name string, body *itn.Fst) *itn.Fst {
	return itn.Concat(itn.Insert(name+": \""), body, itn.Insert("\""))
}

// DeleteField deletes the field markup name: "…" and passes the field value
// through body.
func DeleteField(name string, body *itn.Fst) *itn.Fst {
	return itn.Concat(
		itn.DeleteString(name+":"),
		DeleteSpace,
		itn.DeleteString("\""),
		body,
		itn.DeleteString("\""),
	)
}

// FieldValue accepts a non-empty field value, which must not contain quotes.
var FieldValue = itn.Plus(itn.Chars(NotQuote))
