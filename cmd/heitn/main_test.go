package main

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/npillmayer/itn"
	"github.com/npillmayer/itn/normalize"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

var (
	buildOnce sync.Once
	built     *normalize.Normalizer
	buildErr  error
)

func testNormalizer(t *testing.T) *normalize.Normalizer {
	t.Helper()
	buildOnce.Do(func() {
		built, buildErr = normalize.New(normalize.Options{})
	})
	require.NoError(t, buildErr)
	return built
}

func TestProcessModes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := testNormalizer(t)
	var out bytes.Buffer
	require.NoError(t, process(context.Background(), n, "אלף אחוז", false, false, &out))
	require.Equal(t, "1,000%\n", out.String())
	//
	out.Reset()
	require.NoError(t, process(context.Background(), n, "עשרים", true, false, &out))
	require.Equal(t, "tokens { cardinal { integer: \"20\" } }\n", out.String())
	//
	out.Reset()
	require.NoError(t, process(context.Background(), n, "tokens { cardinal { integer: \"20\" } }", false, true, &out))
	require.Equal(t, "20\n", out.String())
}

func TestProcessKeepsFailingLines(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	n := testNormalizer(t)
	var out bytes.Buffer
	err := process(context.Background(), n, "tokens { bogus }\ntokens { word { name: \"x\" } }", false, true, &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")
	require.Equal(t, "tokens { bogus }\nx\n", out.String())
	//
	out.Reset()
	err = process(context.Background(), n, "\"", true, false, &out)
	require.ErrorIs(t, err, itn.ErrNoAcceptingPath)
	require.Empty(t, out.String())
}

func TestExclusiveFlags(t *testing.T) {
	err := run("", "x", true, true, nil, &bytes.Buffer{})
	require.Error(t, err)
}
