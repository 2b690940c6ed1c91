// Command heitn converts spoken-style Hebrew text into its written form.
//
// Text is given with flag -text or read from standard input. With -tagged,
// heitn prints the tagged form of every sentence instead; with -verbalize it
// reads tagged text and renders it.
//
//	echo "נפגשנו בשבע בערב" | heitn      # נפגשנו ב-19:00
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/npillmayer/itn/internal/config"
	"github.com/npillmayer/itn/normalize"
	"github.com/npillmayer/itn/tagged"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	configPath := flag.String("config", "", "path of a YAML configuration file")
	text := flag.String("text", "", "text to normalize; standard input if empty")
	showTagged := flag.Bool("tagged", false, "print the tagged form of each sentence")
	verbalize := flag.Bool("verbalize", false, "read tagged text and verbalize it")
	flag.Parse()

	if err := run(*configPath, *text, *showTagged, *verbalize, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "heitn: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, text string, showTagged, verbalize bool, in io.Reader, out io.Writer) error {
	if showTagged && verbalize {
		return errors.New("flags -tagged and -verbalize are exclusive")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(cfg.Log.TraceLevel())
	if !cfg.Hebrew() {
		gtrace.CoreTracer.Errorf("locale %s is not Hebrew, normalizing Hebrew anyway", cfg.Grammar.Locale)
	}
	n, err := normalize.New(cfg.Grammar.Options())
	if err != nil {
		return err
	}
	if text == "" {
		b, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		text = strings.TrimRight(string(b), "\n")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return process(ctx, n, text, showTagged, verbalize, out)
}

func process(ctx context.Context, n *normalize.Normalizer, text string, showTagged, verbalize bool,
	out io.Writer) error {
	//
	w := bufio.NewWriter(out)
	defer w.Flush()
	switch {
	case verbalize:
		var errs []error
		for i, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) == "" {
				fmt.Fprintln(w)
				continue
			}
			s, err := n.VerbalizeText(line)
			if err != nil {
				errs = append(errs, fmt.Errorf("line %d: %w", i+1, err))
				s = line
			}
			fmt.Fprintln(w, s)
		}
		return errors.Join(errs...)
	case showTagged:
		var errs []error
		for i, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			tokens, err := n.Classify(line)
			if err != nil {
				errs = append(errs, fmt.Errorf("line %d: %w", i+1, err))
				continue
			}
			fmt.Fprintln(w, tagged.Format(tokens))
		}
		return errors.Join(errs...)
	}
	s, err := n.Normalize(ctx, text)
	fmt.Fprintln(w, s)
	return err
}
