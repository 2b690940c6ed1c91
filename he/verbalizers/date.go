package verbalizers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// DateFst verbalizes dates. Dates with a day are written numerically, the
// prefix of the day is joined with a hyphen, the prefix of the month is
// dropped:
//
//    date { day_prefix: "ה" day: "1" month_prefix: "ב" month: "6" year: "2012" }  ⇒  ה-1.6.2012
//    date { month_prefix: "ב" month: "ינואר" year: "2020" }                      ⇒  בינואר 2020
//    date { year_only_prefix: "בשנת" year: "1990" }                               ⇒  בשנת 1990
type DateFst struct {
	he.GraphFst
}

// NewDateFst creates the date verbalizer.
func NewDateFst() (*DateFst, error) {
	d := &DateFst{GraphFst: he.NewGraphFst("date", he.Verbalize, true)}
	year := he.DeleteField("year", digits)
	numeric := cat(
		optionalPrefix("day_prefix"),
		he.DeleteField("day", digits),
		he.DeleteSpace,
		opt(cat(itn.Delete(he.DeleteField("month_prefix", he.FieldValue)), he.DeleteSpace)),
		ins("."),
		he.DeleteField("month", digits),
		opt(cat(he.DeleteSpace, ins("."), year)),
	)
	named := cat(
		opt(cat(he.DeleteField("month_prefix", he.FieldValue), he.DeleteSpace)),
		he.DeleteField("month", he.FieldValue),
		he.DeleteSpace, he.InsertSpace,
		year,
	)
	yearOnly := cat(
		he.DeleteField("year_only_prefix", he.FieldValue),
		he.DeleteSpace, he.InsertSpace,
		year,
	)
	if err := d.SetFst(d.DeleteTokens(alt(numeric, named, yearOnly))); err != nil {
		return nil, err
	}
	return d, nil
}
