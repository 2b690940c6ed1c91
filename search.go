package itn

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/binaryheap"
	pool "github.com/jolestar/go-commons-pool"
)

// ErrNoAcceptingPath is the sentinel for NoAcceptingPathError.
var ErrNoAcceptingPath = errors.New("no accepting path")

// ErrNotFrozen is returned when searching a transducer which has not been
// optimized.
var ErrNotFrozen = errors.New("transducer not optimized")

// NoAcceptingPathError is returned by ShortestPath if a transducer does not
// accept its input. It carries the offending input.
type NoAcceptingPathError struct {
	Input string
}

func (e *NoAcceptingPathError) Error() string {
	return fmt.Sprintf("no accepting path for input %q", e.Input)
}

// Is makes NoAcceptingPathError match ErrNoAcceptingPath.
func (e *NoAcceptingPathError) Is(target error) bool {
	return target == ErrNoAcceptingPath
}

// Path is the result of a shortest path search.
type Path struct {
	Output string
	Weight float64
}

// ShortestPath transduces input and returns the output of the accepting
// path with minimum weight.
func (f *Fst) ShortestPath(input string) (Path, error) {
	if !f.Frozen() {
		return Path{}, ErrNotFrozen
	}
	runes := []rune(input)
	lat := borrowLattice(f.rank)
	defer releaseLattice(lat)
	//
	lat.reach(0, f.start, 0, -1, "")
	for !lat.agenda.Empty() {
		v, _ := lat.agenda.Pop()
		i := v.(int)
		it := lat.items[i]
		for k := range f.states[it.state].arcs {
			a := &f.states[it.state].arcs[k]
			if a.epsilon() {
				lat.reach(it.pos, a.next, it.weight+a.weight, i, a.out)
			} else if it.pos < len(runes) && a.matches(runes[it.pos]) {
				lat.reach(it.pos+1, a.next, it.weight+a.weight, i, a.output(runes[it.pos]))
			}
		}
	}
	best, weight := -1, 0.0
	for i, it := range lat.items {
		if it.pos != len(runes) || !f.states[it.state].final {
			continue
		}
		if w := it.weight + f.states[it.state].fw; best < 0 || w < weight-weightDelta {
			best, weight = i, w
		}
	}
	if best < 0 {
		CT().Debugf("no accepting path for %q", input)
		return Path{}, &NoAcceptingPathError{Input: input}
	}
	return Path{Output: lat.output(best), Weight: weight}, nil
}

// Transduce is a shortcut for ShortestPath returning the output only.
func (f *Fst) Transduce(input string) (string, error) {
	p, err := f.ShortestPath(input)
	return p.Output, err
}

// Accepts checks if f has an accepting path for input.
func (f *Fst) Accepts(input string) bool {
	_, err := f.ShortestPath(input)
	return err == nil
}

// --- Lattice ---------------------------------------------------------------

// item is a node (input position, state) of the search lattice, together
// with the best path reaching it.
type item struct {
	pos, state int
	weight     float64
	back       int    // predecessor item, or -1
	out        string // output of the arc from the predecessor
}

type lattice struct {
	items  []item
	index  map[int64]int
	agenda *binaryheap.Heap // indices into items, ordered by (pos, rank)
	rank   []int
	size   int64 // number of states of the transducer searched
}

func newLattice() *lattice {
	lat := &lattice{index: make(map[int64]int)}
	lat.agenda = binaryheap.NewWith(func(a, b interface{}) int {
		x, y := &lat.items[a.(int)], &lat.items[b.(int)]
		if x.pos != y.pos {
			return x.pos - y.pos
		}
		return lat.rank[x.state] - lat.rank[y.state]
	})
	return lat
}

// reach relaxes the lattice node (pos, state). Nodes are popped from the agenda
// after all of their predecessors, thus a node's weight is final once it is
// popped. Strict comparison keeps the path found first on ties.
func (lat *lattice) reach(pos, state int, w float64, back int, out string) {
	key := int64(pos)*lat.size + int64(state)
	if i, ok := lat.index[key]; ok {
		if w < lat.items[i].weight-weightDelta {
			lat.items[i].weight, lat.items[i].back, lat.items[i].out = w, back, out
		}
		return
	}
	lat.items = append(lat.items, item{pos: pos, state: state, weight: w, back: back, out: out})
	i := len(lat.items) - 1
	lat.index[key] = i
	lat.agenda.Push(i)
}

func (lat *lattice) output(i int) string {
	var outs []string
	for ; i >= 0; i = lat.items[i].back {
		if lat.items[i].out != "" {
			outs = append(outs, lat.items[i].out)
		}
	}
	var b strings.Builder
	for k := len(outs) - 1; k >= 0; k-- {
		b.WriteString(outs[k])
	}
	return b.String()
}

// Lattices are short-lived objects. To avoid multiple allocation of
// their buffers we will pool them.
type latticePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalLatticePool *latticePool

func init() {
	globalLatticePool = &latticePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newLattice(), nil
		})
	globalLatticePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalLatticePool.opool = pool.NewObjectPool(globalLatticePool.ctx, factory, config)
}

func borrowLattice(rank []int) *lattice {
	o, err := globalLatticePool.opool.BorrowObject(globalLatticePool.ctx)
	if err != nil {
		CT().Errorf("lattice pool: %v", err)
		o = newLattice()
	}
	lat := o.(*lattice)
	lat.rank = rank
	lat.size = int64(len(rank))
	return lat
}

// Clears the lattice and puts it back into the pool.
func releaseLattice(lat *lattice) {
	lat.items = lat.items[:0]
	clear(lat.index)
	lat.agenda.Clear()
	lat.rank = nil
	_ = globalLatticePool.opool.ReturnObject(globalLatticePool.ctx, lat)
}
