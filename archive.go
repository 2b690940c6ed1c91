package itn

import (
	"encoding/gob"
	"fmt"
	"io"
	"sort"
)

// Archive files hold a set of named, frozen transducers. Character classes
// shared between transducers are stored once.

const archiveMagic = "itn-archive/1"

type archiveFile struct {
	Magic   string
	Classes []archiveClass
	Rules   []archiveRule
}

type archiveClass struct {
	Name   string
	Finite bool
	Runes  []rune
}

type archiveRule struct {
	Name   string
	Start  int
	States []archiveState
}

type archiveState struct {
	Final       bool
	FinalWeight float64
	Arcs        []archiveArc
}

type archiveArc struct {
	In     rune
	Class  int // index into classes, or -1
	Out    string
	Copy   bool
	Weight float64
	Next   int
}

// WriteArchive writes a set of named transducers to w. Transducers are
// optimized before writing.
func WriteArchive(w io.Writer, rules map[string]*Fst) error {
	file := archiveFile{Magic: archiveMagic}
	classIndex := map[*CharClass]int{}
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, err := rules[name].Optimize()
		if err != nil {
			return fmt.Errorf("archive rule %q: %w", name, err)
		}
		rule := archiveRule{Name: name, Start: f.start, States: make([]archiveState, len(f.states))}
		for i, s := range f.states {
			as := archiveState{Final: s.final, FinalWeight: s.fw, Arcs: make([]archiveArc, len(s.arcs))}
			for j, a := range s.arcs {
				cl := -1
				if a.class != nil {
					var ok bool
					if cl, ok = classIndex[a.class]; !ok {
						cl = len(file.Classes)
						classIndex[a.class] = cl
						file.Classes = append(file.Classes, archiveClass{
							Name:   a.class.Name(),
							Finite: a.class.Finite(),
							Runes:  a.class.Runes(),
						})
					}
				}
				as.Arcs[j] = archiveArc{In: a.in, Class: cl, Out: a.out, Copy: a.copy, Weight: a.weight, Next: a.next}
			}
			rule.States[i] = as
		}
		file.Rules = append(file.Rules, rule)
	}
	if err := gob.NewEncoder(w).Encode(&file); err != nil {
		return fmt.Errorf("encoding archive: %w", err)
	}
	CT().Infof("archive written with %d rules and %d character classes", len(file.Rules), len(file.Classes))
	return nil
}

// ReadArchive restores a set of named transducers from r. The transducers
// returned are frozen.
func ReadArchive(r io.Reader) (map[string]*Fst, error) {
	var file archiveFile
	if err := gob.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding archive: %w", err)
	}
	if file.Magic != archiveMagic {
		return nil, fmt.Errorf("not an archive: magic is %q", file.Magic)
	}
	classes := make([]*CharClass, len(file.Classes))
	for i, c := range file.Classes {
		if c.Finite {
			cl, err := NewClass(c.Name, c.Runes...)
			if err != nil {
				return nil, fmt.Errorf("archive class %q: %w", c.Name, err)
			}
			classes[i] = cl
		} else {
			classes[i] = &CharClass{name: c.Name, exclude: table(c.Runes)}
		}
	}
	rules := make(map[string]*Fst, len(file.Rules))
	for _, rule := range file.Rules {
		if rule.Start < 0 || rule.Start >= len(rule.States) {
			return nil, fmt.Errorf("archive rule %q: corrupt start state", rule.Name)
		}
		f := &Fst{start: rule.Start, states: make([]state, len(rule.States))}
		for i, s := range rule.States {
			st := state{final: s.Final, fw: s.FinalWeight, arcs: make([]arc, len(s.Arcs))}
			for j, a := range s.Arcs {
				if a.Next < 0 || a.Next >= len(rule.States) || a.Class >= len(classes) {
					return nil, fmt.Errorf("archive rule %q: corrupt arc at state %d", rule.Name, i)
				}
				st.arcs[j] = arc{in: a.In, out: a.Out, copy: a.Copy, weight: a.Weight, next: a.Next}
				if a.Class >= 0 {
					st.arcs[j].class = classes[a.Class]
				}
			}
			f.states[i] = st
		}
		frozen, err := f.Optimize()
		if err != nil {
			return nil, fmt.Errorf("archive rule %q: %w", rule.Name, err)
		}
		rules[rule.Name] = frozen
	}
	return rules, nil
}
