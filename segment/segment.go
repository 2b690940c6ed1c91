/*
Package segment splits text into sentences, the unit of inverse text
normalization.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the sentences of a text.
Clients are able to get the runes of the sentence by calling Bytes() or Text().

  segmenter := segment.NewSegmenter()
  segmenter.Init(bufio.NewReader(os.Stdin))
  for segmenter.Next() {
      sentence := segmenter.Text()
      …
  }
  if err := segmenter.Err(); err != nil {
      …
  }

How it works

A sentence ends at a run of sentence terminators ('.', '!', '?', '…'),
optionally followed by closing quotes or brackets, if the run is followed
by white space or the end of input. A line break always ends a sentence.
Thus a decimal point (3.5) or an abbreviation glued to the next word does
not break. Leading and trailing white space of a sentence is stripped,
and empty sentences are skipped.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package segment

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// splits it into sentences.
type Segmenter struct {
	reader        io.RuneReader // where we get the next runes from
	activeSegment []byte        // the most recent segment to build
	buffer        *bytes.Buffer // wrapper around activeSegment
	maxSegmentLen int           // maximum length allowed for segments
	pos           int64         // current position in text
	err           error
	atEOF         bool
	inUse         bool // Next() has been called; buffer is in use.
}

// MaxSegmentSize is the maximum size of a sentence in bytes.
const MaxSegmentSize = 64 * 1024
const startBufSize = 4096 // Size of initial allocation for buffer.

// Errors returned by Segmenter.Err().
var (
	ErrTooLong        = errors.New("segmenter: sentence too long for buffer")
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new sentence segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already having been in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
		s.maxSegmentLen = MaxSegmentSize
	} else {
		s.buffer.Reset()
	}
	s.activeSegment = nil
	s.atEOF = false
	s.inUse = false
	s.err = nil
	s.pos = 0
}

// Buffer sets the initial buffer to use when scanning and the maximum size
// of buffer that may be allocated during scanning.
// The maximum segment size is the larger of max and cap(buf).
// By default, Segmenter uses an internal buffer and sets the maximum
// segment size to MaxSegmentSize.
//
// Buffer panics if it is called after scanning has started.
func (s *Segmenter) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("segment.Buffer: buffer already in use; cannot be re-set")
	}
	s.buffer = bytes.NewBuffer(buf[:0])
	if max < cap(buf) {
		max = cap(buf)
	}
	s.maxSegmentLen = max
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Next gets the next sentence, together with the terminating punctuation.
// It returns false at the end of input or on error.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.inUse = true
	for !s.atEOF {
		s.buffer.Reset()
		if err := s.readSentence(); err != nil && err != io.EOF {
			s.setErr(err)
			s.activeSegment = nil
			return false
		}
		if text := bytes.TrimSpace(s.buffer.Bytes()); len(text) > 0 {
			s.activeSegment = text
			CT().P("pos", strconv.FormatInt(s.pos, 10)).Debugf("Next() = %q", string(text))
			return true
		}
	}
	s.activeSegment = nil
	return false
}

// readSentence reads runes up to and including the white space following
// a sentence end.
func (s *Segmenter) readSentence() error {
	terminated := false
	for {
		r, size, err := s.reader.ReadRune()
		if err != nil {
			s.atEOF = true
			return err
		}
		s.pos += int64(size)
		if s.buffer.Len()+size > s.maxSegmentLen {
			return ErrTooLong
		}
		s.buffer.WriteRune(r)
		switch {
		case r == '\n' || r == '\u2029': // line or paragraph separator
			return nil
		case isTerminator(r):
			terminated = true
		case terminated && isCloser(r):
		case terminated && unicode.IsSpace(r):
			return nil
		default:
			terminated = false
		}
	}
}

// Bytes returns the most recent sentence generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next(). It does no allocation.
func (s *Segmenter) Bytes() []byte {
	return s.activeSegment
}

// Text returns the most recent sentence generated by a call to Next()
// as a newly allocated string holding its bytes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment)
}

func (s *Segmenter) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isCloser(r rune) bool {
	return r == '"' || r == '\'' || r == ')' || r == ']' || r == '”' || r == '’' || r == '״'
}

// Split is a convenience function returning all sentences of a text.
func Split(text string) ([]string, error) {
	seg := NewSegmenter()
	seg.Init(strings.NewReader(text))
	var sentences []string
	for seg.Next() {
		sentences = append(sentences, seg.Text())
	}
	return sentences, seg.Err()
}
