package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/hopter/log"
	"github.com/ardnew/hopter/varargs"
)

// Vocab lists the placeholders recognized inside regions, each with the text
// it produces at a sample arity.
type Vocab struct {
	Format string `default:"text" enum:"text,yaml,json" help:"Report format."                      short:"o"`
	Arity  int    `default:"2"                          help:"Arity of the sample substitutions." short:"n"`

	Query string `arg:"" help:"Fuzzy filter on placeholder names." optional:""`
}

type vocabEntry struct {
	Token       string `json:"token"       yaml:"token"`
	Description string `json:"description" yaml:"description"`
	Arity       int    `json:"arity"       yaml:"arity"`
	Example     string `json:"example"     yaml:"example"`
}

func (v *Vocab) Run(ctx context.Context) error {
	return v.run(ctx, os.Stdout)
}

func (v *Vocab) run(ctx context.Context, w io.Writer) error {
	log.DebugContext(ctx, "vocab", commandAttrs(ctx)...)

	if v.Arity < 0 || v.Arity > varargs.MaxArity {
		return ErrArity.With(
			slog.Int("arity", v.Arity),
			slog.Int("max", varargs.MaxArity),
		)
	}

	entries := v.entries()

	if v.Format == formatText {
		return writeVocabText(w, entries)
	}

	return encode(ctx, w, v.Format, entries)
}

// entries returns the whole vocabulary, or the fuzzy matches of Query ranked
// best first.
func (v *Vocab) entries() []vocabEntry {
	var found []varargs.Placeholder

	if v.Query == "" {
		found = varargs.Vocabulary()
	} else {
		for _, name := range varargs.Suggest(v.Query) {
			if p, ok := varargs.Lookup(name); ok {
				found = append(found, p)
			}
		}
	}

	entries := make([]vocabEntry, 0, len(found))
	for _, p := range found {
		entries = append(entries, vocabEntry{
			Token:       p.String(),
			Description: p.Description(),
			Arity:       v.Arity,
			Example:     p.Fragment(v.Arity),
		})
	}

	return entries
}

func writeVocabText(w io.Writer, entries []vocabEntry) error {
	re := lipgloss.NewRenderer(w)
	name := re.NewStyle().Bold(true).Width(12)
	example := re.NewStyle().Faint(true)

	var sb strings.Builder

	for _, e := range entries {
		fmt.Fprintf(&sb, "%s%s\n", name.Render(e.Token), e.Description)
		fmt.Fprintf(&sb, "%s%s\n", name.Render(""),
			example.Render(fmt.Sprintf("n=%d: %q", e.Arity, e.Example)))
	}

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return ErrWriteReport.Wrap(err)
	}

	return nil
}
