package tagged

import (
	"fmt"
	"strings"
	"unicode"
)

// SyntaxError reports malformed tagged text. Pos is the index of the
// offending code-point.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("tagged text: %s at position %d", e.Msg, e.Pos)
}

// Parse reads a tagged sentence. Non-breaking spaces within values are
// converted to ordinary spaces.
func Parse(text string) ([]Token, error) {
	p := &parser{input: []rune(text)}
	var tokens []Token
	p.skipSpace()
	for !p.atEnd() {
		t, err := p.token()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
		p.skipSpace()
	}
	return tokens, nil
}

type parser struct {
	input []rune
	pos   int
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for !p.atEnd() && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *parser) expect(r rune) error {
	p.skipSpace()
	if p.atEnd() || p.input[p.pos] != r {
		return p.errorf("expected %q", r)
	}
	p.pos++
	return nil
}

func (p *parser) ident() (string, error) {
	p.skipSpace()
	start := p.pos
	for !p.atEnd() && isNameRune(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected name")
	}
	return string(p.input[start:p.pos]), nil
}

func isNameRune(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z'
}

// token reads tokens { <category> { <fields> } }.
func (p *parser) token() (Token, error) {
	kw, err := p.ident()
	if err != nil {
		return Token{}, err
	}
	if kw != "tokens" {
		return Token{}, p.errorf("expected tokens, found %q", kw)
	}
	if err = p.expect('{'); err != nil {
		return Token{}, err
	}
	category, err := p.ident()
	if err != nil {
		return Token{}, err
	}
	fields, err := p.group()
	if err != nil {
		return Token{}, err
	}
	if err = p.expect('}'); err != nil {
		return Token{}, err
	}
	return Token{Category: category, Fields: fields}, nil
}

// group reads { <fields> }.
func (p *parser) group() ([]Field, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	var fields []Field
	for {
		p.skipSpace()
		if p.atEnd() {
			return nil, p.errorf("unterminated group")
		}
		if p.input[p.pos] == '}' {
			p.pos++
			return fields, nil
		}
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.atEnd() && p.input[p.pos] == '{' {
			nested, err := p.group()
			if err != nil {
				return nil, err
			}
			if len(nested) == 0 {
				return nil, p.errorf("empty group %q", name)
			}
			fields = append(fields, Field{Name: name, Fields: nested})
			continue
		}
		if err = p.expect(':'); err != nil {
			return nil, err
		}
		value, err := p.quoted()
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Value: value})
	}
}

func (p *parser) quoted() (string, error) {
	if err := p.expect('"'); err != nil {
		return "", err
	}
	start := p.pos
	for !p.atEnd() && p.input[p.pos] != '"' {
		p.pos++
	}
	if p.atEnd() {
		return "", p.errorf("unterminated value")
	}
	value := string(p.input[start:p.pos])
	p.pos++
	return strings.ReplaceAll(value, nbsp, " "), nil
}
