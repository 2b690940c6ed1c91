package lexicon

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// scanner is a type for a line-level scanner.
//
// Our line-level scanner will operate by calling scanning steps in a chain, iteratively.
// Each step function inspects the remainder of the current line and then possibly
// branches out to a subsequent step function.
type scanner struct {
	lines     *bufio.Scanner // line reader
	lineNo    int            // current line number
	rest      string         // unconsumed part of the current line
	Token     *scannerToken  // last token produced by scanner
	LastError error          // last I/O error, if any
}

// A scanner step will return the next step in the chain, or nil to stop/accept.
type scannerStep func(*scannerToken) (*scannerToken, scannerStep)

// scannerToken subsumes the properties of a line of lexicon input.
type scannerToken struct {
	LineNo    int
	TokenType scannerTokenType
	Fields    []string // tab-separated columns, trimmed
	Comment   string   // rest-of-line comment
	Error     error    // error condition, if any
}

type scannerTokenType int8

const (
	undefined scannerTokenType = iota
	emptyLine
	commentLine
	dataItem
)

func newScanner(r io.Reader) (*scanner, error) {
	if r == nil {
		return nil, errors.New("no input present")
	}
	return &scanner{lines: bufio.NewScanner(r)}, nil
}

// Next reads the next line and runs the chain of step functions on it.
// A chain stops when a step returns a nil step or an error-signalling token.
func (sc *scanner) Next() bool {
	if !sc.lines.Scan() {
		sc.LastError = sc.lines.Err()
		return false
	}
	sc.lineNo++
	sc.rest = strings.TrimRight(sc.lines.Text(), "\r")
	if sc.lineNo == 1 {
		sc.rest = strings.TrimPrefix(sc.rest, "\uFEFF") // byte order mark
	}
	sc.Token = &scannerToken{LineNo: sc.lineNo}
	var step scannerStep = sc.scanLineStart
	for step != nil {
		sc.Token, step = step(sc.Token)
		if sc.Token.Error != nil {
			break
		}
	}
	return true
}

// scanLineStart classifies a line.
//
//    line start:
//      -> empty: emptyLine
//      -> '#':   commentLine
//      -> other: fields
//
func (sc *scanner) scanLineStart(token *scannerToken) (*scannerToken, scannerStep) {
	if strings.TrimSpace(sc.rest) == "" {
		token.TokenType = emptyLine
		return token, nil
	}
	if strings.HasPrefix(strings.TrimSpace(sc.rest), "#") {
		token.TokenType = commentLine
		token.Comment = strings.TrimSpace(strings.TrimSpace(sc.rest)[1:])
		return token, nil
	}
	token.TokenType = dataItem
	return token, sc.scanComment
}

// scanComment splits off a trailing comment. Comments have to be separated
// from the data by a tab, as '#' may be part of a phrase.
func (sc *scanner) scanComment(token *scannerToken) (*scannerToken, scannerStep) {
	if i := strings.Index(sc.rest, "\t#"); i >= 0 {
		token.Comment = strings.TrimSpace(sc.rest[i+2:])
		sc.rest = sc.rest[:i]
	}
	return token, sc.scanFields
}

func (sc *scanner) scanFields(token *scannerToken) (*scannerToken, scannerStep) {
	fields := strings.Split(sc.rest, "\t")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	switch {
	case len(fields) > 2:
		token.Error = errors.New("more than two columns")
	case fields[0] == "":
		token.Error = errors.New("empty phrase")
	case len(fields) == 2 && fields[1] == "":
		token.Error = errors.New("empty value")
	}
	token.Fields = fields
	sc.rest = ""
	return token, nil
}

// Key gets the surface phrase of a data item.
func (token *scannerToken) Key() string {
	return token.Fields[0]
}

// Value gets the canonical value of a data item. Single column items map
// onto themselves.
func (token *scannerToken) Value() string {
	if len(token.Fields) > 1 {
		return token.Fields[1]
	}
	return token.Fields[0]
}
