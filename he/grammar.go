package he

import (
	"fmt"

	"github.com/npillmayer/itn"
)

// Kind tells whether a grammar classifies raw text or verbalizes tagged text.
type Kind int8

// Grammar kinds.
const (
	Classify Kind = iota
	Verbalize
)

func (k Kind) String() string {
	switch k {
	case Classify:
		return "classify"
	case Verbalize:
		return "verbalize"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Grammar is implemented by every category grammar.
type Grammar interface {
	Name() string
	Kind() Kind
	Fst() *itn.Fst
}

// GraphFst is the base type of all grammars. It carries a name, which doubles
// as the tag of the grammar's tokens, a kind and the (frozen) transducer.
//
// Category grammars embed GraphFst, build their transducer once and store it
// with SetFst. Grammars are immutable afterwards and may be shared between
// goroutines.
type GraphFst struct {
	name          string
	kind          Kind
	deterministic bool
	fst           *itn.Fst
}

// NewGraphFst creates a grammar base. deterministic=false would allow for
// multiple competing outputs; inverse text normalization always uses true.
func NewGraphFst(name string, kind Kind, deterministic bool) GraphFst {
	return GraphFst{name: name, kind: kind, deterministic: deterministic}
}

// Name returns the name of the grammar.
func (g *GraphFst) Name() string { return g.name }

// Kind returns the kind of the grammar.
func (g *GraphFst) Kind() Kind { return g.kind }

// Deterministic is true if the grammar produces a single output.
func (g *GraphFst) Deterministic() bool { return g.deterministic }

// Fst returns the frozen transducer of the grammar, or nil if none has been
// set.
func (g *GraphFst) Fst() *itn.Fst { return g.fst }

// SetFst optimizes f and makes it the grammar's transducer.
func (g *GraphFst) SetFst(f *itn.Fst) error {
	frozen, err := f.Optimize()
	if err != nil {
		return fmt.Errorf("%s grammar %q: %w", g.kind, g.name, err)
	}
	g.fst = frozen
	tracer().Debugf("%s grammar %q has %d states", g.kind, g.name, frozen.NumStates())
	return nil
}

// AddTokens wraps the output of body with the grammar's tag:
//
//    name { <body> }
//
func (g *GraphFst) AddTokens(body *itn.Fst) *itn.Fst {
	return itn.Concat(itn.Insert(g.name+" { "), body, itn.Insert(" }"))
}

// DeleteTokens is the inverse of AddTokens: it expects input of the form
// name { <body> }, deletes the tag and braces and passes the inner part
// through body. Protected spaces are converted back to ordinary spaces.
func (g *GraphFst) DeleteTokens(body *itn.Fst) *itn.Fst {
	f := itn.Concat(
		itn.DeleteString(g.name),
		DeleteSpace,
		itn.DeleteString("{"),
		DeleteSpace,
		body,
		DeleteSpace,
		itn.DeleteString("}"),
	)
	return itn.RewriteOutput(f, NonBreakingSpace, ' ')
}

// Apply runs the grammar on input.
func (g *GraphFst) Apply(input string) (string, error) {
	if g.fst == nil {
		return "", fmt.Errorf("%s grammar %q: %w", g.kind, g.name, itn.ErrNotFrozen)
	}
	return g.fst.Transduce(input)
}

// Cache is a store of compiled grammars. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Lookup returns a previously stored transducer for a rule name.
	Lookup(rule string) (*itn.Fst, bool)
	// Store saves a transducer under a rule name.
	Store(rule string, f *itn.Fst) error
}

// Restore substitutes a cached transducer for the grammar, using rule as the
// cache key. It returns false if cache is nil or does not hold the rule.
func (g *GraphFst) Restore(cache Cache, rule string) bool {
	if cache == nil {
		return false
	}
	f, ok := cache.Lookup(rule)
	if !ok {
		return false
	}
	g.fst = f
	tracer().Infof("%s grammar %q restored from cache", g.kind, g.name)
	return true
}
