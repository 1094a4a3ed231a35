package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/hopter/log"
	"github.com/ardnew/hopter/varargs"
)

// Expand generates a header by expanding every region of a template.
type Expand struct {
	Marker bool `default:"true" help:"Precede each expansion with a //N=<arity> line." negatable:""`

	Input  string `arg:"" help:"Template source file, or '-' for stdin."    name:"input"`
	Output string `arg:"" help:"Generated header file, or '-' for stdout." name:"output"`
}

// Run opens the input before creating the output, so an unreadable input
// leaves any existing output untouched.
func (e *Expand) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer func() { cancel(err) }()

	log.DebugContext(ctx, "expand", commandAttrs(ctx)...)

	in, err := openInput(e.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createOutput(e.Output)
	if err != nil {
		return err
	}

	defer func() {
		cerr := out.Close()
		if cerr != nil && err == nil {
			err = ErrCloseOutput.With(slog.String("path", e.Output)).Wrap(cerr)
		}
	}()

	scanner := varargs.NewScanner(
		varargs.WithMarker(e.Marker),
		varargs.WithLogger(log.Default()),
	)

	err = scanner.Process(ctx, in, out)
	if err != nil {
		return ErrExpand.With(
			slog.String("input", displayName(e.Input)),
			slog.String("output", e.Output),
		).Wrap(err)
	}

	log.DebugContext(ctx, "expanded",
		slog.String("input", displayName(e.Input)),
		slog.String("output", e.Output),
	)

	return nil
}
