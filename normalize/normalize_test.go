package normalize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

var (
	cacheDir   string
	buildOnce  sync.Once
	normalizer *Normalizer
	buildErr   error
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "heitn-test")
	if err != nil {
		panic(err)
	}
	cacheDir = dir
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func testNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	buildOnce.Do(func() {
		normalizer, buildErr = New(Options{CacheDir: cacheDir, Concurrency: 2})
	})
	require.NoError(t, buildErr)
	return normalizer
}

func TestNormalizeSentence(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := testNormalizer(t)
	for input, written := range map[string]string{
		"יש לי עשרים ושלוש ילדים":                    "יש לי 23 ילדים",
		"נפגשנו בשבע בערב":                           "נפגשנו ב-19:00",
		"שלוש דקות לחצות":                            "23:57",
		"רבע לשש בערב":                               "17:45",
		"באחת ושתי דקות בצהריים":                     "ב-13:02",
		"שתיים ועשרה בבוקר":                          "2:10",
		"נולדתי באחד במאי אלף תשע מאות שמונים ושלוש": "נולדתי ב-1.5.1983",
		"הראשון ביוני אלפיים ושתיים עשרה":            "ה-1.6.2012",
		"בינואר עשרים עשרים":                         "בינואר 2020",
		"עשרים, שלום":                                "20, שלום",
		"הוא עורך דין":                               "הוא עו״ד",
		"לארבעה סנטימטר":                             "ל-4 ס״מ",
		"שלושה מיליגרם":                              "3 מ״ג",
		"אלף אחוז":                                   "1,000%",
		"אחוז אחד":                                   "1%",
		"מינוס עשרים ושלוש מעלות":                    "-23°",
		"שלוש נקודה חמש":                             "3.5",
		"זה מאה אחוז":                                "זה 100%",
	} {
		out, err := n.NormalizeSentence(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, written, out, "input %q", input)
	}
}

func TestClassifyAndVerbalize(t *testing.T) {
	n := testNormalizer(t)
	tokens, err := n.Classify("שלוש דקות לחצות")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, "time", tokens[0].Category)
	hours, _ := tokens[0].Get("hours")
	require.Equal(t, "23", hours)
	//
	out, err := n.VerbalizeText(`tokens { punct { name: "(" } } tokens { cardinal { integer: "20" } } tokens { punct { name: ")" } } tokens { punct { name: "." } }`)
	require.NoError(t, err)
	require.Equal(t, "(20).", out)
	_, err = n.VerbalizeText(`tokens { cardinal { integer: 20 } }`)
	require.Error(t, err)
	_, err = n.VerbalizeText(`tokens { cardinal { number: "20" } }`)
	require.ErrorIs(t, err, itn.ErrNoAcceptingPath)
}

func TestNormalizeText(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := testNormalizer(t)
	out, err := n.Normalize(context.Background(), "שלום. יש לי עשרים ושלוש ילדים!\nשלוש דקות לחצות")
	require.NoError(t, err)
	require.Equal(t, "שלום. יש לי 23 ילדים!\n23:57", out)
}

func TestNormalizeKeepsFailingSentences(t *testing.T) {
	n := testNormalizer(t)
	out, err := n.Normalize(context.Background(), "יש עשרים ילדים. \"\nרבע לשש בערב")
	require.Equal(t, "יש 20 ילדים. \"\n17:45", out)
	require.ErrorIs(t, err, itn.ErrNoAcceptingPath)
	var sentenceErr *SentenceError
	require.True(t, errors.As(err, &sentenceErr))
	require.Equal(t, 1, sentenceErr.Index)
	require.Equal(t, `"`, sentenceErr.Sentence)
}

func TestNormalizeCanceled(t *testing.T) {
	n := testNormalizer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := n.Normalize(ctx, "שלום. עשרים")
	require.ErrorIs(t, err, context.Canceled)
}

func TestGrammarsRestoredFromCache(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	testNormalizer(t)
	_, err := os.Stat(filepath.Join(cacheDir, he.ArchiveName))
	require.NoError(t, err)
	restored, err := New(Options{CacheDir: cacheDir})
	require.NoError(t, err)
	out, err := restored.NormalizeSentence("רבע לשש בערב")
	require.NoError(t, err)
	require.Equal(t, "17:45", out)
}
