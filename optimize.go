package itn

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// Optimize returns a frozen copy of f: states which are not reachable from
// the start state or cannot reach a final state are removed, and states are
// ranked in topological order with respect to input-epsilon transitions.
//
// If f contains a cycle of input-epsilon transitions, ErrEpsilonCycle is
// returned.
func (f *Fst) Optimize() (*Fst, error) {
	if f.Frozen() {
		return f, nil
	}
	g := f.trim()
	rank, err := g.epsilonOrder()
	if err != nil {
		return nil, err
	}
	g.rank = rank
	CT().Debugf("optimized %v, %d states removed", g, len(f.states)-len(g.states))
	return g, nil
}

// MustOptimize is like Optimize, but panics on error. It is intended for
// grammars fixed at compile time.
func (f *Fst) MustOptimize() *Fst {
	g, err := f.Optimize()
	if err != nil {
		panic(err)
	}
	return g
}

// trim removes states which are not both accessible and co-accessible.
func (f *Fst) trim() *Fst {
	n := len(f.states)
	access := make([]bool, n)
	stack := []int{f.start}
	access[f.start] = true
	reverse := make([][]int, n)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range f.states[s].arcs {
			reverse[a.next] = append(reverse[a.next], s)
			if !access[a.next] {
				access[a.next] = true
				stack = append(stack, a.next)
			}
		}
	}
	coaccess := make([]bool, n)
	for s := 0; s < n; s++ {
		if access[s] && f.states[s].final {
			coaccess[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range reverse[s] {
			if !coaccess[p] {
				coaccess[p] = true
				stack = append(stack, p)
			}
		}
	}
	g := &Fst{}
	if !coaccess[f.start] { // empty language
		g.start = g.addState()
		return g
	}
	renum := make([]int, n)
	for s := 0; s < n; s++ {
		renum[s] = -1
		if coaccess[s] { // co-accessible states have been reached from start
			renum[s] = g.addState()
		}
	}
	for s := 0; s < n; s++ {
		if renum[s] < 0 {
			continue
		}
		src, dst := &f.states[s], &g.states[renum[s]]
		dst.final, dst.fw = src.final, src.fw
		for _, a := range src.arcs {
			if renum[a.next] >= 0 {
				a.next = renum[a.next]
				dst.arcs = append(dst.arcs, a)
			}
		}
	}
	g.start = renum[f.start]
	return g
}

// epsilonOrder computes a topological rank of states with respect to
// input-epsilon arcs (Kahn's algorithm). Among ready states the one with
// the lowest index is ranked first.
func (f *Fst) epsilonOrder() ([]int, error) {
	n := len(f.states)
	indegree := make([]int, n)
	for _, s := range f.states {
		for _, a := range s.arcs {
			if a.epsilon() {
				indegree[a.next]++
			}
		}
	}
	ready := binaryheap.NewWith(utils.IntComparator)
	for s := 0; s < n; s++ {
		if indegree[s] == 0 {
			ready.Push(s)
		}
	}
	rank := make([]int, n)
	r := 0
	for !ready.Empty() {
		v, _ := ready.Pop()
		s := v.(int)
		rank[s] = r
		r++
		for _, a := range f.states[s].arcs {
			if a.epsilon() {
				if indegree[a.next]--; indegree[a.next] == 0 {
					ready.Push(a.next)
				}
			}
		}
	}
	if r < n {
		return nil, fmt.Errorf("%d of %d states on cycles: %w", n-r, n, ErrEpsilonCycle)
	}
	return rank, nil
}
