package segment

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSentences(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("נפגשנו בשלוש. מה שלומך?  הכל טוב!"))
	var sentences []string
	for seg.Next() {
		t.Logf("sentence = '%s'", seg.Text())
		sentences = append(sentences, seg.Text())
	}
	if seg.Err() != nil {
		t.Fatal(seg.Err())
	}
	if len(sentences) != 3 {
		t.Fatalf("Expected 3 sentences, have %d: %v", len(sentences), sentences)
	}
	if sentences[1] != "מה שלומך?" {
		t.Errorf("Expected second sentence to be 'מה שלומך?', is '%s'", sentences[1])
	}
}

func TestNoBreakInsideNumbers(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sentences, err := Split("המחיר עלה ב-3.5 אחוז.\nזה הכל")
	if err != nil {
		t.Fatal(err)
	}
	if len(sentences) != 2 || sentences[0] != "המחיר עלה ב-3.5 אחוז." {
		t.Errorf("Expected decimal point not to break, have %q", sentences)
	}
}

func TestClosingQuote(t *testing.T) {
	sentences, _ := Split(`הוא אמר "שלום." ואז הלך`)
	if len(sentences) != 2 || sentences[0] != `הוא אמר "שלום."` {
		t.Errorf("Expected break after closing quote, have %q", sentences)
	}
}

func TestEmptyInput(t *testing.T) {
	seg := NewSegmenter()
	seg.Init(strings.NewReader("  \n\n  "))
	if seg.Next() {
		t.Errorf("Expected no sentence for blank input, have '%s'", seg.Text())
	}
	if seg.Err() != nil {
		t.Errorf("Expected no error at EOF, have %v", seg.Err())
	}
}

func TestTooLong(t *testing.T) {
	seg := NewSegmenter()
	seg.Buffer(make([]byte, 0, 8), 8)
	seg.Init(strings.NewReader("אחת שתיים שלוש ארבע"))
	if seg.Next() {
		t.Errorf("Expected sentence to exceed buffer")
	}
	if !errors.Is(seg.Err(), ErrTooLong) {
		t.Errorf("Expected ErrTooLong, have %v", seg.Err())
	}
}

func TestNotInitialized(t *testing.T) {
	seg := NewSegmenter()
	if seg.Next() || !errors.Is(seg.Err(), ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized")
	}
}
