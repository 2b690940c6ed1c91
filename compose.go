package itn

import (
	"errors"
	"fmt"
)

// ErrNotFinite is returned by Compose if its left operand has infinitely many
// paths or matches character classes.
var ErrNotFinite = errors.New("transducer is not a finite string relation")

// Compose returns a transducer which feeds the output of a into b. For every
// path of a, the output is transduced by b's shortest path; input strings of
// a with no accepted output are dropped. Path weights add up.
//
// a must be a finite relation, i.e. have no cycles and no arcs matching
// character classes. b may be any transducer.
func Compose(a, b *Fst) (*Fst, error) {
	paths, err := a.enumerate()
	if err != nil {
		return nil, err
	}
	if b, err = b.Optimize(); err != nil {
		return nil, err
	}
	var mappings []Mapping
	for _, p := range paths {
		q, err := b.ShortestPath(p.Out)
		if err != nil {
			if errors.Is(err, ErrNoAcceptingPath) {
				continue
			}
			return nil, err
		}
		mappings = append(mappings, Mapping{In: p.In, Out: q.Output, Weight: p.Weight + q.Weight})
	}
	CT().Debugf("composition yields %d of %d strings", len(mappings), len(paths))
	return StringMap(mappings), nil
}

// MustCompose is like Compose, but panics on error.
func MustCompose(a, b *Fst) *Fst {
	c, err := Compose(a, b)
	if err != nil {
		panic(err)
	}
	return c
}

// Paths enumerates the accepting paths of a finite transducer, reporting
// input, output and weight of each.
func (f *Fst) Paths() ([]Mapping, error) {
	return f.enumerate()
}

func (f *Fst) enumerate() ([]Mapping, error) {
	const (
		unvisited = iota
		onStack
		done
	)
	color := make([]int, len(f.states))
	var paths []Mapping
	var walk func(s int, in, out []rune, w float64) error
	walk = func(s int, in, out []rune, w float64) error {
		if color[s] == onStack {
			return fmt.Errorf("cycle at state %d: %w", s, ErrNotFinite)
		}
		color[s] = onStack
		st := &f.states[s]
		if st.final {
			paths = append(paths, Mapping{In: string(in), Out: string(out), Weight: w + st.fw})
		}
		for _, a := range st.arcs {
			if a.class != nil {
				return fmt.Errorf("class %v at state %d: %w", a.class, s, ErrNotFinite)
			}
			i, o := in, out
			if !a.epsilon() {
				i = append(in[:len(in):len(in)], a.in)
			}
			if a.copy {
				o = append(out[:len(out):len(out)], a.in)
			} else if a.out != "" {
				o = append(out[:len(out):len(out)], []rune(a.out)...)
			}
			if err := walk(a.next, i, o, w+a.weight); err != nil {
				return err
			}
		}
		color[s] = done
		return nil
	}
	if err := walk(f.start, nil, nil, 0); err != nil {
		return nil, err
	}
	return paths, nil
}
