package itn

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEpsilonCycle flags a transducer with a cycle of transitions not
// consuming any input. Such machines have no well-defined shortest path.
var ErrEpsilonCycle = errors.New("input-epsilon cycle")

// arc is a transition between two states.
type arc struct {
	in     rune       // input code-point or Epsilon; ignored if class is set
	class  *CharClass // input character class
	out    string     // output, unless copy is set
	copy   bool       // output the consumed code-point
	weight float64
	next   int
}

func (a *arc) epsilon() bool {
	return a.class == nil && a.in == Epsilon
}

func (a *arc) matches(r rune) bool {
	if a.class != nil {
		return a.class.Contains(r)
	}
	return a.in == r
}

func (a *arc) output(r rune) string {
	if a.copy {
		return string(r)
	}
	return a.out
}

type state struct {
	arcs  []arc
	final bool
	fw    float64 // final weight
}

// Fst is a weighted finite-state transducer over Unicode code-points.
//
// Transducers are built with the constructors and combinators of this
// package, none of which modifies its operands. Optimize returns a frozen
// copy, ready for ShortestPath.
type Fst struct {
	states []state
	start  int
	rank   []int // topological rank of states w.r.t. input-epsilon arcs; set when frozen
}

func newFst() *Fst {
	f := &Fst{}
	f.start = f.addState()
	return f
}

func (f *Fst) addState() int {
	f.states = append(f.states, state{})
	return len(f.states) - 1
}

func (f *Fst) addArc(from int, a arc) {
	f.states[from].arcs = append(f.states[from].arcs, a)
}

func (f *Fst) setFinal(s int, w float64) {
	f.states[s].final = true
	f.states[s].fw = w
}

// NumStates returns the number of states of f.
func (f *Fst) NumStates() int {
	return len(f.states)
}

// Frozen is true for optimized transducers.
func (f *Fst) Frozen() bool {
	return f.rank != nil
}

func (f *Fst) String() string {
	return fmt.Sprintf("fst[start=%d, states=%d]", f.start, len(f.states))
}

// embed copies the states of g into f and returns the index offset.
func (f *Fst) embed(g *Fst) int {
	offset := len(f.states)
	for _, s := range g.states {
		arcs := make([]arc, len(s.arcs))
		for i, a := range s.arcs {
			a.next += offset
			arcs[i] = a
		}
		f.states = append(f.states, state{arcs: arcs, final: s.final, fw: s.fw})
	}
	return offset
}

func (f *Fst) clone() *Fst {
	c := &Fst{}
	c.start = c.embed(f) + f.start
	return c
}

// --- Constructors ----------------------------------------------------------

// Accep creates an acceptor for a literal string. The empty string yields a
// transducer accepting the empty input only.
func Accep(s string) *Fst {
	f := newFst()
	cur := f.start
	for _, r := range s {
		next := f.addState()
		f.addArc(cur, arc{in: r, copy: true, next: next})
		cur = next
	}
	f.setFinal(cur, 0)
	return f
}

// Cross creates a transducer accepting input and producing output.
func Cross(input, output string) *Fst {
	f := newFst()
	cur := f.start
	if input == "" {
		next := f.addState()
		f.addArc(cur, arc{in: Epsilon, out: output, next: next})
		f.setFinal(next, 0)
		return f
	}
	out := output
	for _, r := range input {
		next := f.addState()
		f.addArc(cur, arc{in: r, out: out, next: next})
		out = ""
		cur = next
	}
	f.setFinal(cur, 0)
	return f
}

// Insert creates a transducer which consumes nothing and outputs s.
func Insert(s string) *Fst {
	return Cross("", s)
}

// DeleteString creates a transducer which consumes s and outputs nothing.
func DeleteString(s string) *Fst {
	return Cross(s, "")
}

// Chars creates a transducer accepting a single code-point of class c and
// copying it to the output.
func Chars(c *CharClass) *Fst {
	f := newFst()
	next := f.addState()
	f.addArc(f.start, arc{class: c, copy: true, next: next})
	f.setFinal(next, 0)
	return f
}

// Mapping is an entry of a string map: input In is rewritten to Out.
type Mapping struct {
	In, Out string
	Weight  float64
}

// StringMap creates a transducer from a list of string rewrites. Inputs are
// arranged as a trie, the output is emitted after the complete input has
// been consumed. Duplicate inputs are kept as alternatives.
func StringMap(mappings []Mapping) *Fst {
	f := newFst()
	final := f.addState()
	f.setFinal(final, 0)
	children := map[int]map[rune]int{}
	for _, m := range mappings {
		cur := f.start
		for _, r := range m.In {
			if children[cur] == nil {
				children[cur] = map[rune]int{}
			}
			next, ok := children[cur][r]
			if !ok {
				next = f.addState()
				children[cur][r] = next
				f.addArc(cur, arc{in: r, next: next})
			}
			cur = next
		}
		f.addArc(cur, arc{in: Epsilon, out: m.Out, weight: m.Weight, next: final})
	}
	return f
}

// --- Combinators -----------------------------------------------------------

// Delete returns a transducer accepting the input language of f and
// producing no output.
func Delete(f *Fst) *Fst {
	d := f.clone()
	for i := range d.states {
		for j := range d.states[i].arcs {
			d.states[i].arcs[j].out = ""
			d.states[i].arcs[j].copy = false
		}
	}
	return d
}

// Union returns a transducer accepting the union of the operands. On equal
// weight, paths through operands further to the left are preferred.
func Union(fsts ...*Fst) *Fst {
	u := newFst()
	for _, g := range fsts {
		offset := u.embed(g)
		u.addArc(u.start, arc{in: Epsilon, next: offset + g.start})
	}
	return u
}

// Concat returns a transducer for the concatenation of the operands.
func Concat(fsts ...*Fst) *Fst {
	if len(fsts) == 0 {
		return Accep("")
	}
	c := fsts[0].clone()
	for _, g := range fsts[1:] {
		offset := c.embed(g)
		for i := 0; i < offset; i++ {
			if s := &c.states[i]; s.final {
				c.addArc(i, arc{in: Epsilon, weight: s.fw, next: offset + g.start})
				s.final, s.fw = false, 0
			}
		}
	}
	return c
}

// Optional returns a transducer accepting f or the empty input.
func Optional(f *Fst) *Fst {
	return Union(f, Accep(""))
}

// Star returns the Kleene closure of f. f must not accept the empty input,
// otherwise Star panics with ErrEpsilonCycle.
func Star(f *Fst) *Fst {
	if acceptsEmpty(f) {
		panic(fmt.Errorf("closure over %v: %w", f, ErrEpsilonCycle))
	}
	s := &Fst{}
	s.start = s.addState()
	s.setFinal(s.start, 0)
	offset := s.embed(f)
	s.addArc(s.start, arc{in: Epsilon, next: offset + f.start})
	for i := offset; i < len(s.states); i++ {
		if st := &s.states[i]; st.final {
			s.addArc(i, arc{in: Epsilon, weight: st.fw, next: s.start})
			st.final, st.fw = false, 0
		}
	}
	return s
}

// Plus returns a transducer accepting one or more repetitions of f.
func Plus(f *Fst) *Fst {
	return Concat(f, Star(f))
}

// Closure returns a transducer accepting min to max repetitions of f.
// A negative max denotes an unbounded number of repetitions.
func Closure(f *Fst, min, max int) *Fst {
	if min < 0 || (max >= 0 && max < min) {
		panic(fmt.Sprintf("invalid closure bounds %d…%d", min, max))
	}
	parts := make([]*Fst, 0, min+1)
	for i := 0; i < min; i++ {
		parts = append(parts, f)
	}
	if max < 0 {
		parts = append(parts, Star(f))
	} else if max > min {
		opt := Optional(f)
		for i := min + 1; i < max; i++ {
			opt = Optional(Concat(f, opt))
		}
		parts = append(parts, opt)
	}
	return Concat(parts...)
}

// AddWeight adds w to the weight of every accepting path of f.
func AddWeight(f *Fst, w float64) *Fst {
	g := f.clone()
	for i := range g.states {
		if g.states[i].final {
			g.states[i].fw += w
		}
	}
	return g
}

// RewriteOutput replaces every occurrence of code-point from with to in the
// output of f.
func RewriteOutput(f *Fst, from, to rune) *Fst {
	g := f.clone()
	for i := range g.states {
		arcs := g.states[i].arcs
		var split []arc
		for j := range arcs {
			a := &arcs[j]
			if !a.copy {
				a.out = strings.ReplaceAll(a.out, string(from), string(to))
				continue
			}
			if a.class == nil {
				if a.in == from {
					a.copy, a.out = false, string(to)
				}
				continue
			}
			if !a.class.Contains(from) {
				continue
			}
			single := MustClass(string(from), from)
			rest, err := a.class.Difference(a.class.Name(), single)
			split = append(split, arc{in: from, out: string(to), weight: a.weight, next: a.next})
			if err != nil { // class held nothing but from
				a.class, a.in, a.copy = nil, Epsilon, false
				a.next = -1
				continue
			}
			a.class = rest
		}
		g.states[i].arcs = append(dropDead(arcs), split...)
	}
	return g
}

func dropDead(arcs []arc) []arc {
	live := arcs[:0]
	for _, a := range arcs {
		if a.next >= 0 {
			live = append(live, a)
		}
	}
	return live
}

// acceptsEmpty checks if f has an accepting path consuming no input.
func acceptsEmpty(f *Fst) bool {
	seen := make([]bool, len(f.states))
	stack := []int{f.start}
	seen[f.start] = true
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.states[s].final {
			return true
		}
		for _, a := range f.states[s].arcs {
			if a.epsilon() && !seen[a.next] {
				seen[a.next] = true
				stack = append(stack, a.next)
			}
		}
	}
	return false
}
