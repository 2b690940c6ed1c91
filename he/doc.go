/*
Package he holds the building blocks of Hebrew inverse text normalization.

Grammars for the individual categories (cardinal numbers, dates, times,
measures, …) live in sub-packages taggers and verbalizers. Taggers classify
spoken-style text into a tagged intermediate form

   שתיים ועשרה בבוקר  ⇒  tokens { time { hours: "2" minutes: "10" suffix: "בוקר" } }

and verbalizers render the tagged form into written text. This package
provides what both sides share: Hebrew character classes, white space
transducers, the grammar base type GraphFst, the lexicon tables, a number
speller and a cache for compiled grammars.

Protected Spaces

Tagged text uses spaces to separate tokens and fields. Spaces occurring
inside a quoted field value are therefore converted to non-breaking spaces
by the taggers (see ConvertSpace), and back to ordinary spaces by the last
step of every verbalizer (see GraphFst.DeleteTokens).

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package he

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
