package itn

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestArchiveRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	space := MustClass("space", ' ')
	notSpace, _ := AnyChar("char").Difference("not_space", space)
	word := Plus(Chars(notSpace))
	rules := map[string]*Fst{
		"words":  Concat(word, Star(Concat(Cross(" ", "_"), word))),
		"number": AddWeight(Cross("עשרים", "20"), 1.1),
	}
	var buf bytes.Buffer
	if err := WriteArchive(&buf, rules); err != nil {
		t.Fatal(err)
	}
	restored, err := ReadArchive(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(restored) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(restored))
	}
	if out, err := restored["words"].Transduce("שלום עולם"); err != nil || out != "שלום_עולם" {
		t.Errorf("expected שלום_עולם, got %q (%v)", out, err)
	}
	p, err := restored["number"].ShortestPath("עשרים")
	if err != nil || p.Output != "20" || p.Weight < 1.09 || p.Weight > 1.11 {
		t.Errorf("expected weighted 20, got %+v (%v)", p, err)
	}
}

func TestArchiveRejectsGarbage(t *testing.T) {
	if _, err := ReadArchive(bytes.NewReader([]byte("no archive"))); err == nil {
		t.Errorf("expected error for garbage input")
	}
}
