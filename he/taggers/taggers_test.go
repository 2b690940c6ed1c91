package taggers

import (
	"sync"
	"testing"

	"github.com/npillmayer/itn/he"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

type testGrammars struct {
	lex       *he.Lexicons
	cardinal  *CardinalFst
	ordinal   *OrdinalFst
	decimal   *DecimalFst
	date      *DateFst
	time      *TimeFst
	measure   *MeasureFst
	whitelist *WhiteListFst
	punct     *PunctuationFst
	word      *WordFst
}

var (
	buildOnce sync.Once
	grammars  testGrammars
	buildErr  error
)

// categories builds the category grammars once per test run.
func categories(t *testing.T) *testGrammars {
	t.Helper()
	buildOnce.Do(func() {
		g := &grammars
		if g.lex, buildErr = he.LoadLexicons(""); buildErr != nil {
			return
		}
		if g.cardinal, buildErr = NewCardinalFst(g.lex); buildErr != nil {
			return
		}
		if g.ordinal, buildErr = NewOrdinalFst(g.lex); buildErr != nil {
			return
		}
		if g.decimal, buildErr = NewDecimalFst(g.cardinal, g.lex); buildErr != nil {
			return
		}
		if g.date, buildErr = NewDateFst(g.cardinal, g.ordinal, g.lex); buildErr != nil {
			return
		}
		if g.time, buildErr = NewTimeFst(g.cardinal, g.lex); buildErr != nil {
			return
		}
		if g.measure, buildErr = NewMeasureFst(g.cardinal, g.decimal, g.lex); buildErr != nil {
			return
		}
		if g.whitelist, buildErr = NewWhiteListFst(g.lex); buildErr != nil {
			return
		}
		if g.punct, buildErr = NewPunctuationFst(); buildErr != nil {
			return
		}
		g.word, buildErr = NewWordFst()
	})
	require.NoError(t, buildErr)
	return &grammars
}

type taggerCase struct {
	input, tagged string
}

func runTagger(t *testing.T, g he.Grammar, cases []taggerCase) {
	t.Helper()
	for _, tc := range cases {
		out, err := g.Fst().Transduce(tc.input)
		require.NoError(t, err, "%s: input %q", g.Name(), tc.input)
		require.Equal(t, tc.tagged, out, "%s: input %q", g.Name(), tc.input)
	}
}

func rejects(t *testing.T, g he.Grammar, inputs ...string) {
	t.Helper()
	for _, input := range inputs {
		require.False(t, g.Fst().Accepts(input), "%s should not accept %q", g.Name(), input)
	}
}

func TestCardinal(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := categories(t)
	runTagger(t, g.cardinal, []taggerCase{
		{"עשר", `cardinal { integer: "10" }`},
		{"עשרים ושלוש", `cardinal { integer: "23" }`},
		{"עשרים שלושה", `cardinal { integer: "23" }`},
		{"מינוס עשרים ושלוש", `cardinal { negative: "-" integer: "23" }`},
		{"מאה", `cardinal { integer: "100" }`},
		{"מאתיים וחמש", `cardinal { integer: "205" }`},
		{"שלושת אלפים", `cardinal { integer: "3000" }`},
		{"עשרים ואחד אלף", `cardinal { integer: "21000" }`},
		{"אלף תשע מאות שמונים ושלוש", `cardinal { integer: "1983" }`},
		{"אלפיים ושתיים עשרה", `cardinal { integer: "2012" }`},
	})
	rejects(t, g.cardinal, "שלוש", "אפס", "מאה מאה")
}

func TestCardinalBuildingBlocks(t *testing.T) {
	g := categories(t)
	for input, digits := range map[string]string{
		"אפס":         "0",
		"שבע":         "7",
		"תשעים ותשעה": "99",
		"אלף ואחת":    "1001",
	} {
		out, err := g.cardinal.GraphNoException.Transduce(input)
		require.NoError(t, err)
		require.Equal(t, digits, out)
	}
	out, err := g.cardinal.GraphTwoDigit.Transduce("אחד")
	require.NoError(t, err)
	require.Equal(t, "1", out)
}

func TestOrdinal(t *testing.T) {
	g := categories(t)
	runTagger(t, g.ordinal, []taggerCase{
		{"ראשון", `ordinal { integer: "1" }`},
		{"שנייה", `ordinal { integer: "2" }`},
		{"עשירית", `ordinal { integer: "10" }`},
	})
}

func TestDecimal(t *testing.T) {
	g := categories(t)
	runTagger(t, g.decimal, []taggerCase{
		{"שלוש נקודה חמש", `decimal { integer_part: "3" fractional_part: "5" }`},
		{"מינוס שתיים וחצי", `decimal { negative: "-" integer_part: "2" fractional_part: "5" }`},
		{"אפס נקודה אפס שבע", `decimal { integer_part: "0" fractional_part: "07" }`},
		{"עשרים נקודה עשרים וחמש", `decimal { integer_part: "20" fractional_part: "25" }`},
	})
	rejects(t, g.decimal, "נקודה חמש", "שלוש נקודה")
}

func TestDate(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := categories(t)
	runTagger(t, g.date, []taggerCase{
		{"אחד במאי אלף תשע מאות שמונים ושלוש",
			`date { day: "1" month_prefix: "ב" month: "5" year: "1983" }`},
		{"הראשון ביוני אלפיים ושתיים עשרה",
			`date { day_prefix: "ה" day: "1" month_prefix: "ב" month: "6" year: "2012" }`},
		{"העשירי ביוני",
			`date { day_prefix: "ה" day: "10" month_prefix: "ב" month: "6" }`},
		{"עשרים ושניים מרץ",
			`date { day: "22" month: "3" }`},
		{"חמישה בשלישי אלפיים",
			`date { day: "5" month_prefix: "ב" month: "3" year: "2000" }`},
		{"מרץ אלף תשע מאות שמונים ותשע",
			`date { month: "מרץ" year: "1989" }`},
		{"בינואר עשרים עשרים",
			`date { month_prefix: "ב" month: "ינואר" year: "2020" }`},
		{"בשנת אלפיים וחמש",
			`date { year_only_prefix: "בשנת" year: "2005" }`},
		{"שנת עשרים אפס שלוש",
			`date { year_only_prefix: "שנת" year: "2003" }`},
	})
	rejects(t, g.date, "מאי", "אחד בשלישי", "אלפיים")
}

func TestTime(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g := categories(t)
	runTagger(t, g.time, []taggerCase{
		{"שלוש דקות לחצות", `time { minutes: "57" hours: "23" }`},
		{"באחת ושתי דקות בצהריים", `time { prefix: "ב" hours: "1" minutes: "02" suffix: "צהריים" }`},
		{"שתיים ועשרה בבוקר", `time { hours: "2" minutes: "10" suffix: "בוקר" }`},
		{"שתיים ועשרה בצהריים", `time { hours: "2" minutes: "10" suffix: "צהריים" }`},
		{"שתיים עשרה ושלוש דקות אחרי הצהריים", `time { hours: "12" minutes: "03" suffix: "צהריים" }`},
		{"רבע לשש בערב", `time { minutes: "45" hours: "5" suffix: "ערב" }`},
		{"עשרים דקות לשמונה בבוקר", `time { minutes: "40" hours: "7" suffix: "בוקר" }`},
		{"שמונה וחצי בערב", `time { hours: "8" minutes: "30" suffix: "ערב" }`},
		{"בשבע בערב", `time { prefix: "ב" hours: "7" minutes: "00" suffix: "ערב" }`},
		{"עשר עשרים ואחת בלילה", `time { hours: "10" minutes: "21" suffix: "לילה" }`},
		{"חצות", `time { hours: "0" minutes: "00" }`},
		{"בחצות ורבע", `time { prefix: "ב" hours: "0" minutes: "15" }`},
		{"רבע לחצות", `time { minutes: "45" hours: "23" }`},
	})
	// no conversion without a time of day
	rejects(t, g.time, "שתיים ועשרה", "רבע לשש", "שלוש")
}

func TestMeasure(t *testing.T) {
	g := categories(t)
	runTagger(t, g.measure, []taggerCase{
		{"שלושה מיליגרם", `measure { cardinal { integer: "3" } spaced_units: "מ״ג" }`},
		{"לארבעה סנטימטר", `measure { prefix: "ל" cardinal { integer: "4" } spaced_units: "ס״מ" }`},
		{"אלף אחוז", `measure { cardinal { integer: "1000" } units: "%" }`},
		{"אחוז אחד", `measure { units: "%" cardinal { integer: "1" } }`},
		{"מינוס חמש מעלות", `measure { negative: "-" cardinal { integer: "5" } units: "°" }`},
		{"שתיים וחצי קילומטר", `measure { decimal { integer_part: "2" fractional_part: "5" } spaced_units: "ק״מ" }`},
	})
	rejects(t, g.measure, "מיליגרם", "שלושה")
}

func TestNameCategories(t *testing.T) {
	g := categories(t)
	runTagger(t, g.whitelist, []taggerCase{
		{"עורך דין", `whitelist { name: "עו״ד" }`},
		{"דוקטור", `whitelist { name: "ד״ר" }`},
	})
	runTagger(t, g.punct, []taggerCase{
		{",", `punct { name: "," }`},
		{"?", `punct { name: "?" }`},
	})
	runTagger(t, g.word, []taggerCase{
		{"שלום", `word { name: "שלום" }`},
		{"ג׳ירפה!", `word { name: "ג׳ירפה!" }`},
	})
	rejects(t, g.word, `"`, "שני מילים", "")
	rejects(t, g.punct, `"`, "..")
}
