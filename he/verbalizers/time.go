package verbalizers

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
)

// TimeFst verbalizes times of day in 24-hour notation. The time of day
// decides how the hour is converted; it does not show up in the output:
//
//    time { prefix: "ב" hours: "1" minutes: "02" suffix: "צהריים" }  ⇒  ב-13:02
//    time { minutes: "45" hours: "5" suffix: "ערב" }                 ⇒  17:45
//    time { minutes: "57" hours: "23" }                              ⇒  23:57
type TimeFst struct {
	he.GraphFst
}

// dayPeriod converts a 12-hour clock hour for a time of day.
type dayPeriod struct {
	suffix  string
	convert func(h int) int
}

var dayPeriods = []dayPeriod{
	{"", func(h int) int { return h }},
	{"בוקר", func(h int) int { return h }},
	{"צהריים", func(h int) int {
		if h >= 1 && h <= 10 {
			return h + 12
		}
		return h
	}},
	{"ערב", func(h int) int {
		if h >= 1 && h <= 11 {
			return h + 12
		}
		return h
	}},
	{"לילה", func(h int) int {
		switch {
		case h >= 6 && h <= 11:
			return h + 12
		case h == 12:
			return 0
		}
		return h
	}},
}

// NewTimeFst creates the time verbalizer.
func NewTimeFst() (*TimeFst, error) {
	t := &TimeFst{GraphFst: he.NewGraphFst("time", he.Verbalize, true)}
	twoDigits := itn.Closure(itn.Chars(he.Digit), 2, 2)
	var hoursFirst, minutesFirst []*itn.Fst
	for _, p := range dayPeriods {
		hours := he.DeleteField("hours", hourMap(p.convert))
		suffix := itn.Accep("")
		if p.suffix != "" {
			suffix = cat(he.DeleteSpace, itn.Delete(he.DeleteField("suffix", itn.Accep(p.suffix))))
		}
		hoursFirst = append(hoursFirst, cat(
			hours, he.DeleteSpace, ins(":"),
			he.DeleteField("minutes", twoDigits),
			suffix,
		))
		minutesFirst = append(minutesFirst, cat(hours, suffix))
	}
	// minutes preceding the hours have to be carried over
	reordered := make([]*itn.Fst, 60)
	hoursThenSuffix := alt(minutesFirst...).MustOptimize()
	for m := 0; m < 60; m++ {
		mm := fmt.Sprintf("%02d", m)
		reordered[m] = cat(
			itn.Delete(he.DeleteField("minutes", itn.Accep(mm))),
			he.DeleteSpace,
			hoursThenSuffix,
			ins(":"+mm),
		)
	}
	graph := cat(optionalPrefix("prefix"), alt(alt(hoursFirst...), alt(reordered...)))
	if err := t.SetFst(t.DeleteTokens(graph)); err != nil {
		return nil, err
	}
	return t, nil
}

// hourMap maps hours 0–23 through convert. Midnight is written as 00.
func hourMap(convert func(h int) int) *itn.Fst {
	mappings := make([]itn.Mapping, 24)
	for h := 0; h < 24; h++ {
		out := strconv.Itoa(convert(h))
		if out == "0" {
			out = "00"
		}
		mappings[h] = itn.Mapping{In: strconv.Itoa(h), Out: out}
	}
	return itn.StringMap(mappings)
}
