/*
Package verbalizers holds the verbalize grammars for Hebrew inverse text
normalization.

Verbalizers are the second stage of normalization. They read the tagged
tokens produced by the classifier and render them in written form:

   tokens { date { day_prefix: "ה" day: "1" month_prefix: "ב" month: "6" year: "2012" } }
   ⇒ ה-1.6.2012

   tokens { time { prefix: "ב" hours: "1" minutes: "02" suffix: "צהריים" } }
   ⇒ ב-13:02

VerbalizeFinalFst processes a complete tagged sentence and joins the
rendered tokens with single spaces.
*/
package verbalizers

import (
	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

var (
	ins = itn.Insert
	del = itn.DeleteString
	cat = itn.Concat
	alt = itn.Union
	opt = itn.Optional
)

// digits accepts a non-empty run of decimal digits.
var digits = itn.Plus(itn.Chars(he.Digit))

// optionalPrefix renders a prefix field with a hyphen joiner: prefix: "ל" ⇒ ל-
func optionalPrefix(name string) *itn.Fst {
	return opt(cat(he.DeleteField(name, he.FieldValue), ins("-"), he.DeleteSpace))
}

// optionalSign keeps the sign of a negative field.
var optionalSign = opt(cat(he.DeleteField("negative", itn.Accep("-")), he.DeleteSpace))
