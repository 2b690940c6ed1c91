/*
Package normalize runs Hebrew inverse text normalization on sentences and
texts.

A Normalizer builds the classify and verbalize grammars once and may then
be used concurrently:

   n, err := normalize.New(normalize.Options{CacheDir: "/tmp/heitn"})
   …
   out, err := n.NormalizeSentence("נפגשנו בשבע בערב")  // נפגשנו ב-19:00

Texts are normalized sentence by sentence. A sentence which cannot be
normalized is kept as it is; the error is reported after the whole text
has been processed.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package normalize

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/npillmayer/itn/he"
	"github.com/npillmayer/itn/he/taggers"
	"github.com/npillmayer/itn/he/verbalizers"
	"github.com/npillmayer/itn/segment"
	"github.com/npillmayer/itn/tagged"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Options configure a Normalizer.
type Options struct {
	CacheDir       string // directory of the grammar archive; empty for no caching
	OverwriteCache bool   // rebuild grammars even if the archive holds them
	WhitelistPath  string // replaces the built-in whitelist
	Concurrency    int    // sentences normalized in parallel; 0 for GOMAXPROCS
}

// Normalizer converts spoken-style Hebrew into written form.
type Normalizer struct {
	classifier  *taggers.ClassifyFst
	verbalizer  *verbalizers.VerbalizeFinalFst
	concurrency int
}

// SentenceError is the error for a sentence which could not be normalized.
type SentenceError struct {
	Index    int    // position of the sentence within the text
	Sentence string // the sentence, which is left unchanged
	Err      error
}

func (e *SentenceError) Error() string {
	return fmt.Sprintf("sentence %d: %v", e.Index, e.Err)
}

func (e *SentenceError) Unwrap() error {
	return e.Err
}

// New creates a Normalizer, building or restoring its grammars.
func New(opts Options) (*Normalizer, error) {
	var cache he.Cache
	if opts.CacheDir != "" {
		far, err := he.NewFarCache(opts.CacheDir, opts.OverwriteCache)
		if err != nil {
			return nil, err
		}
		cache = far
	}
	lex, err := he.LoadLexicons(opts.WhitelistPath)
	if err != nil {
		return nil, err
	}
	n := &Normalizer{concurrency: opts.Concurrency}
	if n.concurrency <= 0 {
		n.concurrency = runtime.GOMAXPROCS(0)
	}
	if n.classifier, err = taggers.NewClassifyFst(lex, cache); err != nil {
		return nil, err
	}
	if n.verbalizer, err = verbalizers.NewVerbalizeFinalFst(cache); err != nil {
		return nil, err
	}
	tracer().Infof("normalizer ready")
	return n, nil
}

// Classify tags a sentence.
func (n *Normalizer) Classify(sentence string) ([]tagged.Token, error) {
	text, err := n.classifier.Classify(norm.NFC.String(sentence))
	if err != nil {
		return nil, err
	}
	return tagged.Parse(text)
}

// Verbalize renders tagged tokens as a sentence. Closing punctuation is
// attached to the preceding token, opening punctuation to the following
// one.
func (n *Normalizer) Verbalize(tokens []tagged.Token) (string, error) {
	var b strings.Builder
	glue := true
	for _, t := range tokens {
		out, err := n.verbalizer.Verbalize(t.String())
		if err != nil {
			return "", err
		}
		mark, _ := t.Get("name")
		punct := t.Category == "punct"
		if !glue && !(punct && strings.ContainsAny(mark, closing)) {
			b.WriteByte(' ')
		}
		b.WriteString(out)
		glue = punct && strings.ContainsAny(mark, opening)
	}
	return b.String(), nil
}

const (
	closing = ".,;:!?)]}"
	opening = "([{"
)

// VerbalizeText renders a tagged sentence given in its text form.
func (n *Normalizer) VerbalizeText(text string) (string, error) {
	tokens, err := tagged.Parse(text)
	if err != nil {
		return "", err
	}
	return n.Verbalize(tokens)
}

// NormalizeSentence normalizes a single sentence.
func (n *Normalizer) NormalizeSentence(sentence string) (string, error) {
	tokens, err := n.Classify(sentence)
	if err != nil {
		return "", err
	}
	return n.Verbalize(tokens)
}

// Normalize normalizes a text. Lines are kept, sentences within a line are
// separated by a single space. Sentences failing to normalize are left
// unchanged and reported as a joined error of SentenceErrors.
func (n *Normalizer) Normalize(ctx context.Context, text string) (string, error) {
	var sentences []string
	var lineEnds []int // index of the last sentence of every line
	for _, line := range strings.Split(norm.NFC.String(text), "\n") {
		s, err := segment.Split(line)
		if err != nil {
			return "", err
		}
		sentences = append(sentences, s...)
		lineEnds = append(lineEnds, len(sentences))
	}
	out := make([]string, len(sentences))
	errs := make([]error, len(sentences))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(n.concurrency)
	for i, s := range sentences {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			normalized, err := n.NormalizeSentence(s)
			if err != nil {
				tracer().Debugf("sentence %d not normalized: %v", i, err)
				errs[i] = &SentenceError{Index: i, Sentence: s, Err: err}
				normalized = s
			}
			out[i] = normalized
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	var b strings.Builder
	start := 0
	for l, end := range lineEnds {
		if l > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(out[start:end], " "))
		start = end
	}
	return b.String(), errors.Join(errs...)
}
