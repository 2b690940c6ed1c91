package taggers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// DateFst classifies dates, e.g.
//
//    אחד במאי אלף תשע מאות שמונים ושלוש
//    ⇒ date { day: "1" month_prefix: "ב" month: "5" year: "1983" }
//
//    הראשון ביוני אלפיים ושתיים עשרה
//    ⇒ date { day_prefix: "ה" day: "1" month_prefix: "ב" month: "6" year: "2012" }
//
//    בינואר עשרים עשרים
//    ⇒ date { month_prefix: "ב" month: "ינואר" year: "2020" }
//
// Four shapes are recognized: day and month, day, month and year, month
// name and year, and a year introduced by "שנת". Days and months attach
// their prefixes directly; the year is always separated by white space.
// Months following a day are converted to numbers, a month followed by a
// year only is kept as a name.
type DateFst struct {
	he.GraphFst
}

// NewDateFst creates the date grammar.
func NewDateFst(cardinal *CardinalFst, ordinal *OrdinalFst, lex *he.Lexicons) (*DateFst, error) {
	d := &DateFst{GraphFst: he.NewGraphFst("date", he.Classify, true)}
	prefix := he.StringKeys(lex.Prefix)
	day := he.Field("day", itn.AddWeight(alt(cardinal.GraphTwoDigit, ordinal.Graph), preferred))
	dayPrefix := opt(cat(he.Field("day_prefix", prefix), he.InsertSpace))
	monthPrefix := cat(he.Field("month_prefix", prefix), he.InsertSpace)
	monthName := he.Field("month", he.StringKeys(lex.Months))
	monthNumber := he.Field("month", he.StringFile(lex.MonthName2Number))
	anyMonth := alt(monthNumber, he.Field("month", he.StringFile(lex.MonthNum2Number)))
	year := cat(he.DeleteExtraSpace, he.Field("year", yearGraph(cardinal, lex)))
	dayMonth := cat(dayPrefix, day, he.InsertSpace, he.DeleteSpace).MustOptimize()
	//
	dm := cat(dayMonth, opt(monthPrefix), monthNumber)
	dmy := cat(dayMonth, monthPrefix, anyMonth, year)
	my := cat(opt(monthPrefix), monthName, year)
	yearOnly := cat(
		he.Field("year_only_prefix", cat(opt(prefix), alt(itn.Accep("שנה"), itn.Accep("שנת")))),
		year,
	)
	graph := alt(dm, dmy, my, yearOnly)
	if err := d.SetFst(d.AddTokens(graph)); err != nil {
		return nil, err
	}
	tracer().Infof("date grammar ready")
	return d, nil
}

// yearGraph reads a year either as a thousands-scale cardinal or as two
// groups of two digits ("עשרים עשרים" ⇒ 2020). A second group below ten
// is spoken with a leading zero: "עשרים אפס חמש" ⇒ 2005.
func yearGraph(cardinal *CardinalFst, lex *he.Lexicons) *itn.Fst {
	zero := he.StringFile(lex.Zero)
	low := alt(cardinal.GraphTeenAndTies, cat(zero, he.DeleteSpace, cardinal.GraphDigit))
	return alt(
		cat(cardinal.GraphTeenAndTies, he.DeleteSpace, low),
		cardinal.GraphThousands,
	).MustOptimize()
}
