package taggers

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/he"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

var (
	classifyOnce sync.Once
	classifier   *ClassifyFst
	classifyErr  error
)

func testClassifier(t *testing.T) *ClassifyFst {
	t.Helper()
	classifyOnce.Do(func() {
		classifier, classifyErr = NewClassifyFst(categories(t).lex, nil)
	})
	require.NoError(t, classifyErr)
	return classifier
}

// tokens wraps tagged tokens into the sentence envelope.
func tokens(tagged ...string) string {
	for i, tok := range tagged {
		tagged[i] = "tokens { " + tok + " }"
	}
	return strings.Join(tagged, " ")
}

func TestClassifySentences(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	c := testClassifier(t)
	for _, tc := range []struct {
		input, tagged string
	}{
		{"יש לי עשרים ושלוש ילדים", tokens(
			`word { name: "יש" }`,
			`word { name: "לי" }`,
			`cardinal { integer: "23" }`,
			`word { name: "ילדים" }`,
		)},
		{"  שלוש דקות לחצות ", tokens(
			`time { minutes: "57" hours: "23" }`,
		)},
		{"נולדתי באחד במאי אלף תשע מאות שמונים ושלוש", tokens(
			`word { name: "נולדתי" }`,
			`date { day_prefix: "ב" day: "1" month_prefix: "ב" month: "5" year: "1983" }`,
		)},
		{"הוא עורך דין", tokens(
			`word { name: "הוא" }`,
			`whitelist { name: "עו״ד" }`,
		)},
		{"זה מאה אחוז", tokens(
			`word { name: "זה" }`,
			`whitelist { name: "100%" }`,
		)},
		{"עשרים, שלום", tokens(
			`cardinal { integer: "20" }`,
			`punct { name: "," }`,
			`word { name: "שלום" }`,
		)},
		{"שלוש ילדים", tokens(
			`word { name: "שלוש" }`,
			`word { name: "ילדים" }`,
		)},
		{"נפגשנו בשבע בערב", tokens(
			`word { name: "נפגשנו" }`,
			`time { prefix: "ב" hours: "7" minutes: "00" suffix: "ערב" }`,
		)},
	} {
		out, err := c.Classify(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		require.Equal(t, tc.tagged, out, "input %q", tc.input)
	}
}

func TestClassifyMultiWordPhrases(t *testing.T) {
	c := testClassifier(t)
	out, err := c.Classify("עורכת דין")
	require.NoError(t, err)
	require.Equal(t, tokens(`whitelist { name: "עו״ד" }`), out)
	out, err = c.Classify("עשרים וארבע שבע")
	require.NoError(t, err)
	require.Equal(t, tokens(`whitelist { name: "24/7" }`), out)
}

func TestClassifyNoAcceptingPath(t *testing.T) {
	c := testClassifier(t)
	_, err := c.Classify(`"`)
	require.ErrorIs(t, err, itn.ErrNoAcceptingPath)
	var noPath *itn.NoAcceptingPathError
	require.ErrorAs(t, err, &noPath)
	require.Equal(t, `"`, noPath.Input)
}

func TestClassifyWithCustomWhitelistAndCache(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "whitelist.tsv")
	require.NoError(t, os.WriteFile(path, []byte("# custom\nעשרים\t20\n"), 0o644))
	lex, err := he.LoadLexicons(path)
	require.NoError(t, err)
	cache, err := he.NewFarCache(filepath.Join(dir, "cache"), false)
	require.NoError(t, err)
	c, err := NewClassifyFst(lex, cache)
	require.NoError(t, err)
	// whitelist and cardinal both accept the phrase, the whitelist weight is lower
	out, err := c.Classify("עשרים")
	require.NoError(t, err)
	require.Equal(t, tokens(`whitelist { name: "20" }`), out)
	//
	reopened, err := he.NewFarCache(filepath.Join(dir, "cache"), false)
	require.NoError(t, err)
	restored, err := NewClassifyFst(nil, reopened)
	require.NoError(t, err, "restoring must not need lexicons")
	out, err = restored.Classify("עשרים")
	require.NoError(t, err)
	require.Equal(t, tokens(`whitelist { name: "20" }`), out)
}
