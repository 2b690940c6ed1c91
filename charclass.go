package itn

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// ErrEmptyClass is returned when a character class would contain no code-point.
var ErrEmptyClass = errors.New("empty character class")

// CharClass is a named set of code-points. It is used to constrain the input
// alphabet of a transition.
//
// A class is either a finite set of runes or the (co-finite) set of all runes
// except a finite set of exclusions. This is sufficient to express classes
// like "any character but whitespace" and keeps classes closed under union and
// difference.
type CharClass struct {
	name    string
	members *unicode.RangeTable // finite classes only
	exclude *unicode.RangeTable // co-finite classes; nil excludes nothing
}

// NewClass creates a finite character class from a list of runes.
func NewClass(name string, runes ...rune) (*CharClass, error) {
	if len(runes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyClass, name)
	}
	return &CharClass{name: name, members: rangetable.New(runes...)}, nil
}

// MustClass is like NewClass, but panics on an empty rune list.
// It is intended for package level class definitions.
func MustClass(name string, runes ...rune) *CharClass {
	c, err := NewClass(name, runes...)
	if err != nil {
		panic(err)
	}
	return c
}

// AnyChar returns a class containing every code-point.
func AnyChar(name string) *CharClass {
	return &CharClass{name: name}
}

// Name returns the name of the class.
func (c *CharClass) Name() string {
	return c.name
}

func (c *CharClass) String() string {
	return "[" + c.name + "]"
}

// Contains checks if r is a member of c.
func (c *CharClass) Contains(r rune) bool {
	if c.members != nil {
		return unicode.Is(c.members, r)
	}
	return c.exclude == nil || !unicode.Is(c.exclude, r)
}

// Finite is true if c holds a finite set of runes.
func (c *CharClass) Finite() bool {
	return c.members != nil
}

// Runes returns the members of a finite class, or the exclusions of a
// co-finite one, in ascending order.
func (c *CharClass) Runes() []rune {
	if c.members != nil {
		return visit(c.members)
	}
	return visit(c.exclude)
}

// Union creates a new class containing the runes of both c and other.
func (c *CharClass) Union(name string, other *CharClass) *CharClass {
	switch {
	case c.Finite() && other.Finite():
		return &CharClass{name: name, members: rangetable.Merge(c.members, other.members)}
	case c.Finite():
		return other.Union(name, c)
	}
	// c is co-finite: keep only exclusions not covered by other
	return &CharClass{name: name, exclude: table(filter(visit(c.exclude), func(r rune) bool {
		return !other.Contains(r)
	}))}
}

// Difference creates a new class containing the runes of c which are not
// members of other. If the result would be empty, ErrEmptyClass is returned.
func (c *CharClass) Difference(name string, other *CharClass) (*CharClass, error) {
	var d *CharClass
	switch {
	case c.Finite():
		runes := filter(visit(c.members), func(r rune) bool { return !other.Contains(r) })
		if len(runes) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyClass, name)
		}
		d = &CharClass{name: name, members: rangetable.New(runes...)}
	case other.Finite():
		excl := other.members
		if c.exclude != nil {
			excl = rangetable.Merge(c.exclude, other.members)
		}
		d = &CharClass{name: name, exclude: excl}
	default: // co-finite minus co-finite is finite
		runes := filter(visit(other.exclude), c.Contains)
		if len(runes) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyClass, name)
		}
		d = &CharClass{name: name, members: rangetable.New(runes...)}
	}
	return d, nil
}

func visit(rt *unicode.RangeTable) []rune {
	if rt == nil {
		return nil
	}
	var runes []rune
	rangetable.Visit(rt, func(r rune) {
		runes = append(runes, r)
	})
	return runes
}

func filter(runes []rune, keep func(rune) bool) []rune {
	var out []rune
	for _, r := range runes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func table(runes []rune) *unicode.RangeTable {
	if len(runes) == 0 {
		return nil
	}
	return rangetable.New(runes...)
}
