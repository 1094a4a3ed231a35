package varargs

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/ardnew/hopter/log"
)

// Marker returns the annotation line written before the expansion for
// arity n.
func Marker(n int) string {
	return "//N=" + strconv.Itoa(n) + "\n"
}

// Expander instantiates region text for concrete arities. The zero value
// expands without markers or logging; use [NewExpander] for defaults.
type Expander struct {
	logger log.Logger
	marker bool
}

// NewExpander returns an Expander configured by opts.
func NewExpander(opts ...Option) Expander {
	o := makeOptions(opts...)

	return Expander{logger: o.logger, marker: o.marker}
}

// Expand returns block with every placeholder replaced for arity n.
// Arities outside [0, MaxArity] are clamped to that range. Tokens outside the
// vocabulary are left untouched.
func (e Expander) Expand(block string, n int) string {
	n = clamp(n)

	for _, r := range rules {
		block = r.Apply(block, n)
	}

	return block
}

// WriteAll writes the expansions of block for every arity from 0 through
// [MaxArity] to w, in ascending order.
func (e Expander) WriteAll(ctx context.Context, w io.Writer, block string) error {
	for n := range MaxArity + 1 {
		text := e.Expand(block, n)

		if e.marker {
			text = Marker(n) + text
		}

		if _, err := io.WriteString(w, text); err != nil {
			return ErrWriteOutput.Wrap(err).With(slog.Int("arity", n))
		}

		e.logger.TraceContext(ctx, "expanded",
			slog.Int("arity", n),
			slog.Int("bytes", len(text)),
		)
	}

	return nil
}

func clamp(n int) int {
	return min(max(n, 0), MaxArity)
}
