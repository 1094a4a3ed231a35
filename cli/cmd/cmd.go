package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// commandAttrs describes the running command for debug logging.
func commandAttrs(ctx context.Context) []slog.Attr {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return nil
	}

	attrs := []slog.Attr{slog.String("command", ktx.Command())}
	if path, ok := ktx.Model.Vars()[ConfigIdentifier]; ok {
		attrs = append(attrs, slog.String("config", path))
	}

	return attrs
}

// stdio is the path naming stdin for inputs and stdout for outputs.
const stdio = "-"

// openInput opens path for reading.
func openInput(path string) (io.ReadCloser, error) {
	if path == stdio {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenInput.With(slog.String("path", path)).Wrap(err)
	}

	return f, nil
}

// createOutput creates or truncates path for writing.
func createOutput(path string) (io.WriteCloser, error) {
	if path == stdio {
		return nopWriteCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, ErrCreateOutput.With(slog.String("path", path)).Wrap(err)
	}

	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// displayName returns the name used for path in reports.
func displayName(path string) string {
	if path == stdio {
		return "<stdin>"
	}

	return path
}
