package taggers

import (
	"fmt"

	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// TimeFst classifies times of day, e.g.
//
//    שלוש דקות לחצות             ⇒  time { minutes: "57" hours: "23" }
//    באחת ושתי דקות בצהריים      ⇒  time { prefix: "ב" hours: "1" minutes: "02" suffix: "צהריים" }
//    שתיים ועשרה בבוקר           ⇒  time { hours: "2" minutes: "10" suffix: "בוקר" }
//    רבע לשש בערב                ⇒  time { minutes: "45" hours: "5" suffix: "ערב" }
//
// A time is converted only if it is unambiguous: it has to end with a time
// of day ("בבוקר", "בערב", …) or refer to midnight. Bare hour and minute
// phrases are left to other categories.
//
// Minutes are always tagged with two digits. In "to the hour" phrases
// ("רבע לשש") the hour lexicon yields the preceding hour and the minutes are
// converted to minutes past that hour.
type TimeFst struct {
	he.GraphFst
}

// minute phrases which are not plain cardinals
var (
	minutesVerbose = []itn.Mapping{
		{In: "שלושת רבעי", Out: "45"},
		{In: "חצי", Out: "30"},
		{In: "רבע", Out: "15"},
		{In: "עשרים", Out: "20"},
		{In: "עשרה", Out: "10"},
		{In: "חמישה", Out: "05"},
		{In: "דקה", Out: "01"},
		{In: "שתי", Out: "02"},
	}
	minutesToVerbose = []itn.Mapping{
		{In: "רבע", Out: "45"},
		{In: "עשרה", Out: "50"},
		{In: "חמישה", Out: "55"},
		{In: "עשרים", Out: "40"},
		{In: "עשרים וחמישה", Out: "35"},
		{In: "דקה", Out: "59"},
	}
)

// NewTimeFst creates the time grammar.
func NewTimeFst(cardinal *CardinalFst, lex *he.Lexicons) (*TimeFst, error) {
	t := &TimeFst{GraphFst: he.NewGraphFst("time", he.Classify, true)}
	sp, err := he.NewSpeller(lex)
	if err != nil {
		return nil, err
	}
	number := itn.AddWeight(cardinal.GraphNoException, preferred).MustOptimize()
	// spelled is the cardinal reading of the feminine number words from…to
	spelled := func(from, to int) (*itn.Fst, error) {
		words := make([]*itn.Fst, 0, to-from+1)
		for n := from; n <= to; n++ {
			w, err := sp.Spell(n, he.Feminine)
			if err != nil {
				return nil, err
			}
			words = append(words, itn.Accep(w))
		}
		f, err := itn.Compose(alt(words...), number)
		if err != nil {
			return nil, fmt.Errorf("time grammar: numbers %d…%d: %w", from, to, err)
		}
		return f, nil
	}
	hourNumber, err := spelled(1, 12)
	if err != nil {
		return nil, err
	}
	single, err := spelled(2, 9)
	if err != nil {
		return nil, err
	}
	if single, err = itn.Compose(single, cat(ins("0"), itn.Chars(he.Digit))); err != nil {
		return nil, err
	}
	double, err := spelled(10, 59)
	if err != nil {
		return nil, err
	}
	minutesTo, err := itn.Compose(alt(single, double), he.StringFile(lex.MinuteTo))
	if err != nil {
		return nil, err
	}
	midnight := itn.Cross("חצות", "0")
	hour := alt(hourNumber, midnight).MustOptimize()
	minute := alt(single, double).MustOptimize()
	minuteVerbose := itn.StringMap(minutesVerbose)
	minuteToVerbose := itn.StringMap(minutesToVerbose)
	//
	hours := func(f *itn.Fst) *itn.Fst { return he.Field("hours", f) }
	minutes := func(f *itn.Fst) *itn.Fst { return he.Field("minutes", f) }
	prefix := opt(cat(he.Field("prefix", he.StringKeys(lex.Prefix)), he.InsertSpace))
	suffix := cat(he.DeleteSpace, he.InsertSpace, he.Field("suffix", he.StringFile(lex.TimeSuffix)))
	minutesWord := opt(cat(he.DeleteSpace, del("דקות")))
	andMinutes := cat(
		he.DeleteSpace, he.DeleteAnd, he.InsertSpace,
		minutes(alt(minute, minuteVerbose)),
		minutesWord,
	).MustOptimize()
	// to returns "ל<hour>", the hour being read from a "to the hour" lexicon
	to := func(target *itn.Fst) *itn.Fst {
		return cat(he.DeleteSpace, del("ל"), he.InsertSpace, hours(target))
	}
	toHour := alt(he.StringFile(lex.ToHour), he.StringFile(lex.ToMidnight))
	toMidnight := he.StringFile(lex.ToMidnight)
	//
	hourAndMinutes := cat(hours(hour), andMinutes)
	specialToHour := cat(minutes(minuteToVerbose), to(toHour))
	minutesToHour := cat(minutes(minutesTo), minutesWord, to(toHour))
	withSuffix := cat(
		prefix, he.DeleteZeroOrOneSpace,
		alt(hourAndMinutes, specialToHour, minutesToHour),
		suffix,
	)
	hourOnly := cat(
		prefix, he.DeleteZeroOrOneSpace,
		hours(hour), he.DeleteExtraSpace,
		minutes(alt(ins("00"), minute)),
		suffix,
	)
	midnightHours := hours(midnight)
	midnightAlone := cat(midnightHours, alt(
		cat(he.InsertSpace, minutes(ins("00"))),
		cat(he.DeleteExtraSpace, minutes(minute)),
	))
	midnightFamily := cat(
		prefix, he.DeleteZeroOrOneSpace,
		alt(
			midnightAlone,
			cat(minutes(minuteToVerbose), to(toMidnight)),
			cat(minutes(minutesTo), minutesWord, to(toMidnight)),
			cat(midnightHours, andMinutes),
		),
	)
	graph := alt(withSuffix, hourOnly, midnightFamily)
	if err := t.SetFst(t.AddTokens(graph)); err != nil {
		return nil, err
	}
	tracer().Infof("time grammar ready")
	return t, nil
}
