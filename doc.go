/*
Package itn is a small runtime for weighted finite-state transducers, as used
by rule-based inverse text normalization.

Description

Inverse text normalization (ITN) turns spoken-style phrases, as produced by a
speech recognizer, into their canonical written form: "twenty nineteen"
becomes "2019", "quarter to six in the evening" becomes "17:45". Grammars
for this task are written as weighted transducers: finite-state machines
which map an input string to an output string, each accepting path carrying
a weight. Competing readings of the same span are resolved by selecting the
path with the lowest total weight.

Package itn provides the building blocks for such grammars. Transducers are
constructed bottom-up from string literals, character classes and lexicon
tables, and combined with the usual regular operations:

   Accep("abc")            accept "abc", output "abc"
   Cross("one", "1")       accept "one", output "1"
   Insert(" ")             accept nothing, output " "
   Delete(f)               accept like f, output nothing
   Union(f, g, …)          accept like f or g
   Concat(f, g, …)         accept f followed by g
   Closure(f, min, max)    accept f repeated min…max times (max < 0: unbounded)
   AddWeight(f, w)         add w to every path of f
   Compose(f, g)           feed the outputs of (finite) f into g

Combinators never modify their operands, thus sub-grammars may be shared
freely between grammars. A transducer is frozen by calling Optimize, which
trims useless states and computes a topological order of its input-epsilon
transitions. Frozen transducers are immutable and safe for concurrent use.

Shortest Path

ShortestPath runs a frozen transducer on an input string and returns the
output of the path with minimum total weight. Search is performed on the
lattice of (input position, state) pairs. As every epsilon transition moves
forward in the topological order and every other transition consumes one
code-point, the lattice is acyclic and may be processed in a single
sweep, which is correct for negative weights as well. Paths of equal weight
are resolved in favour of the one found first. The sweep order depends on
nothing but the construction of the transducer, thus ties are resolved
deterministically; usually the alternative added first to a union wins.

Lattices are short-lived objects. To avoid re-allocating them for
every sentence they are pooled.

Archives

Building large grammars may take a while. Frozen transducers may be
written to an archive, a file containing a set of named transducers, and
restored later (see WriteArchive and ReadArchive).

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package itn

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Epsilon is the input label of transitions which do not consume input.
const Epsilon rune = -1

// Weights closer than this are considered equal.
const weightDelta = 1e-9
