package he

import (
	"fmt"
	"os"

	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/internal/data"
	"github.com/npillmayer/itn/internal/lexicon"
)

// Relation is an immutable lexicon table, mapping phrases to values.
type Relation = lexicon.Relation

// Lexicons holds all lexicon tables used by the grammars. They are loaded
// once and shared read-only by every grammar needing them.
type Lexicons struct {
	Prefix           *Relation // definite article and prepositions
	Months           *Relation // month names
	MonthName2Number *Relation
	MonthNum2Number  *Relation // spoken (ordinal) month numbers
	DigitMasc        *Relation
	DigitFem         *Relation
	TeenMasc         *Relation
	TeenFem          *Relation
	Ties             *Relation
	Hundreds         *Relation
	Thousands        *Relation
	Zero             *Relation
	OrdinalMasc      *Relation
	OrdinalFem       *Relation
	ToHour           *Relation // hour named in "to the hour" phrases → preceding hour
	ToMidnight       *Relation
	MinuteTo         *Relation // minutes to the hour → minutes past the preceding hour
	TimeSuffix       *Relation
	Units            *Relation // units attached to the number
	SpacedUnits      *Relation // units separated from the number by a space
	Whitelist        *Relation
}

// LoadLexicons loads the default lexicons. If whitelistPath is not empty,
// the whitelist is read from that file instead of the default one.
func LoadLexicons(whitelistPath string) (*Lexicons, error) {
	lex := &Lexicons{}
	tables := []struct {
		rel  **Relation
		file string
	}{
		{&lex.Prefix, "prefix.tsv"},
		{&lex.Months, "months.tsv"},
		{&lex.MonthName2Number, "months_name2number.tsv"},
		{&lex.MonthNum2Number, "months_number2number.tsv"},
		{&lex.DigitMasc, "numbers/digit_masc.tsv"},
		{&lex.DigitFem, "numbers/digit_fem.tsv"},
		{&lex.TeenMasc, "numbers/teen_masc.tsv"},
		{&lex.TeenFem, "numbers/teen_fem.tsv"},
		{&lex.Ties, "numbers/ties.tsv"},
		{&lex.Hundreds, "numbers/hundreds.tsv"},
		{&lex.Thousands, "numbers/thousands.tsv"},
		{&lex.Zero, "numbers/zero.tsv"},
		{&lex.OrdinalMasc, "numbers/ordinal_masc.tsv"},
		{&lex.OrdinalFem, "numbers/ordinal_fem.tsv"},
		{&lex.ToHour, "time/to_hour.tsv"},
		{&lex.ToMidnight, "time/to_midnight.tsv"},
		{&lex.MinuteTo, "time/minute_to.tsv"},
		{&lex.TimeSuffix, "time/time_suffix.tsv"},
		{&lex.Units, "measure/units.tsv"},
		{&lex.SpacedUnits, "measure/spaced_units.tsv"},
		{&lex.Whitelist, "whitelist.tsv"},
	}
	for _, t := range tables {
		r, err := data.Reader(t.file)
		if err != nil {
			return nil, fmt.Errorf("lexicon %s: %w", t.file, err)
		}
		if *t.rel, err = lexicon.Parse(t.file, r); err != nil {
			return nil, err
		}
	}
	if whitelistPath != "" {
		f, err := os.Open(whitelistPath)
		if err != nil {
			return nil, fmt.Errorf("whitelist: %w", err)
		}
		defer f.Close()
		if lex.Whitelist, err = lexicon.Parse(whitelistPath, f); err != nil {
			return nil, err
		}
		tracer().Infof("whitelist loaded from %s", whitelistPath)
	}
	return lex, nil
}

// StringFile creates a transducer mapping every phrase of rel onto its value.
func StringFile(rel *Relation) *itn.Fst {
	entries := rel.Entries()
	mappings := make([]itn.Mapping, len(entries))
	for i, e := range entries {
		mappings[i] = itn.Mapping{In: e.Key, Out: e.Value}
	}
	return itn.StringMap(mappings)
}

// StringKeys creates an acceptor for the phrases of rel.
func StringKeys(rel *Relation) *itn.Fst {
	entries := rel.Entries()
	mappings := make([]itn.Mapping, len(entries))
	for i, e := range entries {
		mappings[i] = itn.Mapping{In: e.Key, Out: e.Key}
	}
	return itn.StringMap(mappings)
}
