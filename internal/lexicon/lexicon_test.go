package lexicon

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/itn/internal/data"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseLexicon(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := "# month names\nינואר\t1\n\nפברואר\t2\t# short month\nמרץ\n"
	rel, err := Parse("months", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if rel.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", rel.Len())
	}
	if v, ok := rel.Lookup("פברואר"); !ok || v != "2" {
		t.Errorf("expected פברואר -> 2, got %q", v)
	}
	if v, ok := rel.Lookup("מרץ"); !ok || v != "מרץ" {
		t.Errorf("expected single column entry to map onto itself, got %q", v)
	}
	if e := rel.Entries()[1]; e.Line != 4 {
		t.Errorf("expected entry in line 4, got line %d", e.Line)
	}
}

func TestDuplicateKey(t *testing.T) {
	_, err := Parse("dup", strings.NewReader("אחד\t1\nשניים\t2\nאחד\t3\n"))
	if !errors.Is(err, ErrLexicon) {
		t.Fatalf("expected lexicon build error, got %v", err)
	}
	var berr *BuildError
	if !errors.As(err, &berr) || berr.Line != 3 {
		t.Errorf("expected error in line 3, got %v", err)
	}
}

func TestMalformedLines(t *testing.T) {
	for _, input := range []string{"a\tb\tc\n", "\t1\n", "a\t\n"} {
		if _, err := Parse("bad", strings.NewReader(input)); !errors.Is(err, ErrLexicon) {
			t.Errorf("input %q: expected build error, got %v", input, err)
		}
	}
}

func TestFromPairsAndFilter(t *testing.T) {
	rel, err := FromPairs("minutes", [2]string{"רבע", "15"}, [2]string{"חצי", "30"})
	if err != nil {
		t.Fatal(err)
	}
	if k, ok := rel.KeyFor("30"); !ok || k != "חצי" {
		t.Errorf("expected reverse lookup to find חצי, got %q", k)
	}
	sub := rel.Filter("quarter", func(e Entry) bool { return e.Value == "15" })
	if sub.Len() != 1 {
		t.Errorf("expected filtered relation of size 1, got %d", sub.Len())
	}
	if _, err := FromPairs("dup", [2]string{"x", "1"}, [2]string{"x", "2"}); !errors.Is(err, ErrLexicon) {
		t.Errorf("expected duplicate pair to fail, got %v", err)
	}
}

func TestEmbeddedLexicons(t *testing.T) {
	names, err := data.Files()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) < 20 {
		t.Errorf("expected at least 20 embedded lexicons, got %d", len(names))
	}
	for _, name := range names {
		r, err := data.Reader(name)
		if err != nil {
			t.Fatal(err)
		}
		rel, err := Parse(name, r)
		if err != nil {
			t.Errorf("embedded lexicon %s: %v", name, err)
			continue
		}
		if rel.Len() == 0 {
			t.Errorf("embedded lexicon %s is empty", name)
		}
	}
}
