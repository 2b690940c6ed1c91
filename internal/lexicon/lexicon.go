/* Package lexicon loads lexicon files into immutable relations.

Lexicon files are tab-separated text files with one entry per line: a
surface phrase, followed by its canonical value. Lines with a single column
map a phrase onto itself. Empty lines and lines starting with '#' are
ignored, as is anything following a '#' preceded by a tab.

   # month names
   ינואר	1
   פברואר	2

Keys are unique per file; a duplicate key is a build error.
*/
package lexicon

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrLexicon is the sentinel matched by every BuildError.
var ErrLexicon = errors.New("lexicon build error")

// BuildError reports a malformed or duplicate entry of a lexicon file.
type BuildError struct {
	Name string // name of the lexicon
	Line int    // line number, starting at 1
	Msg  string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("lexicon %s, line %d: %s", e.Name, e.Line, e.Msg)
}

// Is makes BuildError match ErrLexicon.
func (e *BuildError) Is(target error) bool {
	return target == ErrLexicon
}

// Entry is a single phrase-to-value pair of a relation.
type Entry struct {
	Key, Value string
	Line       int
}

// Relation is an immutable finite mapping from surface phrases to canonical
// values, in file order.
type Relation struct {
	name    string
	entries []Entry
	index   map[string]int
}

// Parse reads a lexicon from r. name is used for error messages.
func Parse(name string, r io.Reader) (*Relation, error) {
	rel := &Relation{name: name, index: make(map[string]int)}
	sc, err := newScanner(r)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", name, err)
	}
	for sc.Next() {
		token := sc.Token
		if token.Error != nil {
			return nil, &BuildError{Name: name, Line: token.LineNo, Msg: token.Error.Error()}
		}
		if token.TokenType != dataItem {
			continue
		}
		if prev, dup := rel.index[token.Key()]; dup {
			return nil, &BuildError{Name: name, Line: token.LineNo,
				Msg: fmt.Sprintf("duplicate key %q (first defined in line %d)", token.Key(), rel.entries[prev].Line)}
		}
		rel.index[token.Key()] = len(rel.entries)
		rel.entries = append(rel.entries, Entry{Key: token.Key(), Value: token.Value(), Line: token.LineNo})
	}
	if sc.LastError != nil {
		return nil, fmt.Errorf("lexicon %s: %w", name, sc.LastError)
	}
	tracer().Debugf("lexicon %s: %d entries", name, len(rel.entries))
	return rel, nil
}

// FromPairs creates a relation from a list of key/value pairs. Duplicate keys
// are reported as BuildError, with the index of the pair as line number.
func FromPairs(name string, pairs ...[2]string) (*Relation, error) {
	rel := &Relation{name: name, index: make(map[string]int)}
	for i, p := range pairs {
		if p[0] == "" {
			return nil, &BuildError{Name: name, Line: i + 1, Msg: "empty key"}
		}
		if _, dup := rel.index[p[0]]; dup {
			return nil, &BuildError{Name: name, Line: i + 1, Msg: fmt.Sprintf("duplicate key %q", p[0])}
		}
		rel.index[p[0]] = len(rel.entries)
		rel.entries = append(rel.entries, Entry{Key: p[0], Value: p[1], Line: i + 1})
	}
	return rel, nil
}

// Name returns the name of the relation.
func (rel *Relation) Name() string {
	return rel.name
}

// Len returns the number of entries.
func (rel *Relation) Len() int {
	return len(rel.entries)
}

// Lookup returns the value for a phrase.
func (rel *Relation) Lookup(key string) (string, bool) {
	if i, ok := rel.index[key]; ok {
		return rel.entries[i].Value, true
	}
	return "", false
}

// Entries returns a copy of the entries in file order.
func (rel *Relation) Entries() []Entry {
	entries := make([]Entry, len(rel.entries))
	copy(entries, rel.entries)
	return entries
}

// KeyFor returns the first phrase mapped onto value.
func (rel *Relation) KeyFor(value string) (string, bool) {
	for _, e := range rel.entries {
		if e.Value == value {
			return e.Key, true
		}
	}
	return "", false
}

// Filter returns a new relation holding the entries for which keep is true.
func (rel *Relation) Filter(name string, keep func(Entry) bool) *Relation {
	sub := &Relation{name: name, index: make(map[string]int)}
	for _, e := range rel.entries {
		if keep(e) {
			sub.index[e.Key] = len(sub.entries)
			sub.entries = append(sub.entries, e)
		}
	}
	return sub
}
