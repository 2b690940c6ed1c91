package he

import (
	"fmt"
	"strconv"
	"strings"
)

// Gender selects the grammatical gender of spelled-out numbers.
type Gender int8

// Genders of Hebrew numerals. Bare counting and clock hours use the
// feminine forms.
const (
	Feminine Gender = iota
	Masculine
)

// Speller spells out numbers in words, using the canonical (first) phrase
// of every value in the number lexicons. It is the inverse of the cardinal
// grammar and is used to derive the phrases of hours and minutes.
type Speller struct {
	digits    [2][10]string // by gender
	teens     [2][10]string
	ties      [10]string
	hundreds  [10]string
	thousands [11]string
}

// NewSpeller creates a speller from the number lexicons.
func NewSpeller(lex *Lexicons) (*Speller, error) {
	sp := &Speller{}
	fill := func(table []string, rel *Relation, offset int) error {
		for _, e := range rel.Entries() {
			n, err := strconv.Atoi(e.Value)
			if err != nil || n-offset < 0 || n-offset >= len(table) {
				return fmt.Errorf("speller: lexicon %s, line %d: bad value %q", rel.Name(), e.Line, e.Value)
			}
			if table[n-offset] == "" {
				table[n-offset] = e.Key
			}
		}
		return nil
	}
	for _, t := range []struct {
		table  []string
		rel    *Relation
		offset int
	}{
		{sp.digits[Feminine][:], lex.DigitFem, 0},
		{sp.digits[Masculine][:], lex.DigitMasc, 0},
		{sp.teens[Feminine][:], lex.TeenFem, 10},
		{sp.teens[Masculine][:], lex.TeenMasc, 10},
		{sp.ties[:], lex.Ties, 0},
		{sp.hundreds[:], lex.Hundreds, 0},
		{sp.thousands[:], lex.Thousands, 0},
	} {
		if err := fill(t.table, t.rel, t.offset); err != nil {
			return nil, err
		}
	}
	return sp, nil
}

// Spell returns the words for 1 ≤ n ≤ 999,999.
func (sp *Speller) Spell(n int, g Gender) (string, error) {
	if n < 1 || n > 999999 {
		return "", fmt.Errorf("speller: %d out of range", n)
	}
	s := sp.spell(n, g)
	if s == "" {
		return "", fmt.Errorf("speller: no words for %d", n)
	}
	return s, nil
}

func (sp *Speller) spell(n int, g Gender) string {
	switch {
	case n < 10:
		return sp.digits[g][n]
	case n < 20:
		return sp.teens[g][n-10]
	case n < 100:
		if n%10 == 0 {
			return sp.ties[n/10]
		}
		return sp.ties[n/10] + " ו" + sp.digits[g][n%10]
	case n < 1000:
		return join(sp.hundreds[n/100], sp.spell0(n%100, g))
	}
	k, rest := n/1000, n%1000
	var th string
	if k <= 10 {
		th = sp.thousands[k]
	} else {
		th = sp.spell(k, Masculine) + " אלף"
	}
	return join(th, sp.spell0(rest, g))
}

func (sp *Speller) spell0(n int, g Gender) string {
	if n == 0 {
		return ""
	}
	return sp.spell(n, g)
}

// join appends a lower order part. A single-word remainder gets the
// conjunction vav.
func join(high, low string) string {
	switch {
	case low == "":
		return high
	case !strings.ContainsRune(low, ' '):
		return high + " ו" + low
	}
	return high + " " + low
}
