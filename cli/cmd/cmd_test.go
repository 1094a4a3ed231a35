package cmd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/hopter/varargs"
)

const sample = `#include <utility>
@VARARGS
struct Tuple@NUM<@SELARGS>;
@ENDVAR
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestOpenInputMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.hxx")

	_, err := openInput(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOpenInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "cannot open input")
}

func TestOpenStdio(t *testing.T) {
	in, err := openInput(stdio)
	require.NoError(t, err)
	assert.NoError(t, in.Close())

	out, err := createOutput(stdio)
	require.NoError(t, err)
	assert.NoError(t, out.Close())

	assert.Equal(t, "<stdin>", displayName(stdio))
	assert.Equal(t, "a.hxx", displayName("a.hxx"))
}

func TestCreateOutputBadDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.h")

	_, err := createOutput(path)
	assert.ErrorIs(t, err, ErrCreateOutput)
}

func TestCommandAttrsWithoutKong(t *testing.T) {
	assert.Nil(t, kongContextFrom(context.Background()))
	assert.Nil(t, commandAttrs(context.Background()))
}

func TestErrorIs(t *testing.T) {
	base := errors.New("boom")
	err := ErrExpand.With(slog.String("input", "x")).Wrap(base)

	assert.ErrorIs(t, err, ErrExpand)
	assert.ErrorIs(t, err, base)
	assert.NotErrorIs(t, err, ErrCheck)
	assert.Equal(t, "expand: boom", err.Error())
}

func TestErrorLogValueKeepsCause(t *testing.T) {
	inner := varargs.ErrUnterminatedRegion.With(slog.Int("line", 4))
	err := ErrExpand.Wrap(inner)

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Error("run failed", slog.Any("error", err))

	assert.Contains(t, buf.String(), "error.cause.line=4")
	assert.Contains(t, buf.String(), "error.error=expand")
}
