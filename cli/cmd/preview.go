package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/hopter/cli/cmd/preview"
	"github.com/ardnew/hopter/log"
	"github.com/ardnew/hopter/varargs"
)

// Preview browses the expansions of a template in the terminal.
type Preview struct {
	Input string `arg:"" help:"Template source file (not '-', the terminal is the preview's input)." name:"input"`
}

func (p *Preview) Run(ctx context.Context) error {
	log.DebugContext(ctx, "preview", commandAttrs(ctx)...)

	if p.Input == stdio {
		return ErrUsage.Wrap(ErrPreviewStdin)
	}

	in, err := openInput(p.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	scanner := varargs.NewScanner(varargs.WithLogger(log.Default()))

	regions, err := scanner.Regions(ctx, in)
	if err != nil {
		return ErrCheck.With(slog.String("input", p.Input)).Wrap(err)
	}

	if len(regions) == 0 {
		return ErrNoRegions.With(slog.String("input", p.Input))
	}

	return preview.Run(ctx, p.Input, regions, scanner.Expander(), log.Default())
}
