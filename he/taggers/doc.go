/*
Package taggers holds the classify grammars for Hebrew inverse text
normalization.

Every category grammar transduces a spoken-style phrase into a tagged
token, e.g.

   הראשון ביוני אלפיים ושתיים עשרה
   ⇒ date { day_prefix: "ה" day: "1" month_prefix: "ב" month: "6" year: "2012" }

ClassifyFst combines all categories into a single sentence-level grammar.
Where more than one category matches a span of input, fixed weights decide:

   whitelist   1.01
   date        1.09
   time        1.10
   decimal     1.10
   measure     1.10
   cardinal    1.10
   punct       1.10
   word      100

The weight of the generic word category guarantees that every sentence made
of white space separated words has a parse, while any specific category is
preferred over passing words through.

Ordinal numbers are converted only as part of a date; there is no
stand-alone ordinal category in the classifier.
*/
package taggers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Category weights of the classifier.
const (
	WeightWhitelist = 1.01
	WeightTime      = 1.1
	WeightDate      = 1.09
	WeightDecimal   = 1.1
	WeightMeasure   = 1.1
	WeightCardinal  = 1.1
	WeightWord      = 100
	WeightPunct     = 1.1
)

// preferred is the weight bonus for the compact numeral reading inside dates
// and times.
const preferred = -0.7

var (
	ins = itn.Insert
	del = itn.DeleteString
	cat = itn.Concat
	alt = itn.Union
	opt = itn.Optional
)
