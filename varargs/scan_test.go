package varargs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/hopter/log"
)

const sample = `#pragma once
// head
@VARARGS
int f@NUM(@FUNCARGS);
@ENDVAR
// tail
`

func expansions(block string) string {
	var sb strings.Builder

	for n := range MaxArity + 1 {
		sb.WriteString(Marker(n))
		sb.WriteString(NewExpander().Expand(block, n))
	}

	return sb.String()
}

func process(t *testing.T, input string, opts ...Option) (string, error) {
	t.Helper()

	var out bytes.Buffer

	err := NewScanner(opts...).Process(context.Background(), strings.NewReader(input), &out)

	return out.String(), err
}

func TestScanner_Process(t *testing.T) {
	got, err := process(t, sample)
	require.NoError(t, err)

	want := "#pragma once\n// head\n" +
		expansions("int f@NUM(@FUNCARGS);\n") +
		"// tail\n"

	assert.Equal(t, want, got)
	assert.Contains(t, got, "//N=0\nint f0();\n//N=1\nint f1(Param1 p1);\n")
	assert.NotContains(t, got, StartMarker)
	assert.NotContains(t, got, EndMarker)
}

func TestScanner_Process_Passthrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"plain", "a\nb\n"},
		{"no final newline", "a\nb"},
		{"blank lines", "\n\n\n"},
		{"markers not at line start", " @VARARGS\nx @ENDVAR\n"},
		{"stray end marker", "@ENDVAR\nstill text\n"},
		{"crlf", "one\r\ntwo\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := process(t, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestScanner_Process_MultipleRegionsInOrder(t *testing.T) {
	input := "A\n@VARARGS\nx@NUM\n@ENDVAR\nB\n@VARARGS extra text ignored\ny@NUM\n@ENDVAR trailing\nC"

	got, err := process(t, input, WithMarker(false))
	require.NoError(t, err)

	assert.Equal(t,
		"A\n"+
			"x0\nx1\nx2\nx3\nx4\nx5\nx6\nx7\nx8\n"+
			"B\n"+
			"y0\ny1\ny2\ny3\ny4\ny5\ny6\ny7\ny8\n"+
			"C",
		got,
	)
}

func TestScanner_Process_EmptyRegion(t *testing.T) {
	got, err := process(t, "@VARARGS\n@ENDVAR\nz\n")
	require.NoError(t, err)

	assert.Equal(t, expansions("")+"z\n", got)
}

func TestScanner_Process_EndMarkerWithoutNewline(t *testing.T) {
	got, err := process(t, "@VARARGS\nq@NUM\n@ENDVAR", WithMarker(false))
	require.NoError(t, err)

	assert.Equal(t, "q0\nq1\nq2\nq3\nq4\nq5\nq6\nq7\nq8\n", got)
}

func TestScanner_Process_UnterminatedRegion(t *testing.T) {
	got, err := process(t, "keep\n@VARARGS\nlost@NUM\n")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminatedRegion)
	assert.Equal(t, "keep\n", got, "no output for the dangling region")

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Contains(t, e.LogValue().Group(), slog.Int("line", 2))
}

func TestScanner_Process_NestedRegion(t *testing.T) {
	got, err := process(t, "@VARARGS\na\n@VARARGS\nb\n@ENDVAR\n")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNestedRegion)
	assert.NotErrorIs(t, err, ErrUnterminatedRegion)
	assert.Empty(t, got)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Contains(t, e.LogValue().Group(), slog.Int("line", 3))
	assert.Contains(t, e.LogValue().Group(), slog.Int("open", 1))
}

func TestScanner_Process_ReadError(t *testing.T) {
	boom := errors.New("boom")

	err := NewScanner().Process(
		context.Background(),
		iotest.ErrReader(boom),
		&bytes.Buffer{},
	)

	assert.ErrorIs(t, err, ErrReadInput)
	assert.ErrorIs(t, err, boom)
}

func TestScanner_Process_WriteError(t *testing.T) {
	err := NewScanner().Process(
		context.Background(),
		strings.NewReader("text\n"),
		failWriter{},
	)

	assert.ErrorIs(t, err, ErrWriteOutput)
}

func TestScanner_Process_WarnsOnUnknownPlaceholder(t *testing.T) {
	var logs bytes.Buffer

	logger := log.Make(&logs, log.WithTimeLayout("none"))

	got, err := process(t,
		"@VARARGS\nok\nf(@FUNCARG);\n@ENDVAR\n",
		WithLogger(logger), WithMarker(false),
	)
	require.NoError(t, err)

	assert.Contains(t, got, "f(@FUNCARG);")
	assert.Contains(t, logs.String(), "token=@FUNCARG ")
	assert.Contains(t, logs.String(), "line=3")
	assert.Contains(t, logs.String(), "suggest=@FUNCARGS")
	assert.Equal(t, 1, strings.Count(logs.String(), "unknown placeholder"))
}

func TestScanner_Regions(t *testing.T) {
	input := "x\n@VARARGS\na\nb\n@ENDVAR\n@VARARGS\n@ENDVAR\n"

	regions, err := NewScanner().Regions(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []Region{
		{Start: 2, End: 5, Body: "a\nb\n"},
		{Start: 6, End: 7, Body: ""},
	}, regions)
	assert.Equal(t, 2, regions[0].Lines())
	assert.Equal(t, 0, regions[1].Lines())
}

func TestScanner_Regions_Errors(t *testing.T) {
	_, err := NewScanner().Regions(context.Background(), strings.NewReader("@VARARGS\n"))
	assert.ErrorIs(t, err, ErrUnterminatedRegion)

	_, err = NewScanner().Regions(context.Background(), strings.NewReader("@VARARGS\n@VARARGS\n"))
	assert.ErrorIs(t, err, ErrNestedRegion)
}

func TestMachine_Transitions(t *testing.T) {
	var m machine

	steps := []struct {
		line  string
		event event
		state state
	}{
		{"text\n", eventText, outside},
		{"@ENDVAR\n", eventText, outside},
		{"@VARARGS\n", eventOpen, inside},
		{"body\n", eventBody, inside},
		{"@ENDVAR\n", eventClose, outside},
	}

	for i, s := range steps {
		ev, err := m.step(s.line)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, s.event, ev, "step %d", i)
		assert.Equal(t, s.state, m.state, "step %d: %s", i, m.state)
	}

	assert.Equal(t, Region{Start: 3, End: 5, Body: "body\n"}, m.open)
	assert.NoError(t, m.finish())
}

func TestError_Is(t *testing.T) {
	derived := ErrNestedRegion.With(slog.Int("line", 1)).Wrap(errFail)

	assert.ErrorIs(t, derived, ErrNestedRegion)
	assert.ErrorIs(t, derived, errFail)
	assert.NotErrorIs(t, derived, ErrReadInput)
	assert.Equal(t, ErrNestedRegion.Error()+": disk full", derived.Error())
}

func TestScanner_Expander(t *testing.T) {
	block := "x@NUM\n"

	var plain bytes.Buffer

	s := NewScanner(WithMarker(false))
	require.NoError(t, s.Expander().WriteAll(context.Background(), &plain, block))
	assert.Equal(t, "x0\nx1\nx2\nx3\nx4\nx5\nx6\nx7\nx8\n", plain.String())

	var marked bytes.Buffer

	require.NoError(t, NewScanner().Expander().WriteAll(context.Background(), &marked, block))
	assert.Equal(t, expansions(block), marked.String())
}
