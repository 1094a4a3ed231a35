package varargs

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/hopter/log"
)

// Region boundary markers. A marker is recognized only at the start of a
// line; the rest of a marker line is ignored.
const (
	StartMarker = "@VARARGS"
	EndMarker   = "@ENDVAR"
)

// Region is the text between a start marker line and an end marker line,
// exclusive of both.
type Region struct {
	// Start and End are the 1-based line numbers of the marker lines.
	Start, End int
	// Body is the concatenation of the enclosed lines, terminators included.
	Body string
}

// Lines returns the number of body lines in the region.
func (r Region) Lines() int { return max(r.End-r.Start-1, 0) }

// state is the scanner position relative to regions.
type state int

const (
	outside state = iota
	inside
)

func (s state) String() string {
	if s == inside {
		return "inside"
	}

	return "outside"
}

// event is the outcome of feeding one line to the machine.
type event int

const (
	eventText  event = iota // line belongs to the output verbatim
	eventOpen               // start marker consumed
	eventBody               // line appended to the open region
	eventClose              // end marker consumed, region complete
)

// machine is the two-state region recognizer.
type machine struct {
	state state
	line  int
	open  Region
	body  strings.Builder
}

// step consumes one line, including its terminator.
func (m *machine) step(line string) (event, error) {
	m.line++

	switch m.state {
	case outside:
		if !strings.HasPrefix(line, StartMarker) {
			return eventText, nil
		}

		m.state = inside
		m.open = Region{Start: m.line}
		m.body.Reset()

		return eventOpen, nil

	default:
		switch {
		case strings.HasPrefix(line, StartMarker):
			return eventBody, ErrNestedRegion.With(
				slog.Int("line", m.line),
				slog.Int("open", m.open.Start),
			)

		case strings.HasPrefix(line, EndMarker):
			m.state = outside
			m.open.End = m.line
			m.open.Body = m.body.String()

			return eventClose, nil

		default:
			m.body.WriteString(line)

			return eventBody, nil
		}
	}
}

// finish checks the end-of-input transition.
func (m *machine) finish() error {
	if m.state == inside {
		return ErrUnterminatedRegion.With(
			slog.Int("line", m.open.Start),
		)
	}

	return nil
}

// Scanner partitions input into passthrough lines and regions, and expands
// each region for every arity.
type Scanner struct {
	expander Expander
	logger   log.Logger
}

// NewScanner returns a Scanner configured by opts. The same options
// configure its [Expander].
func NewScanner(opts ...Option) *Scanner {
	o := makeOptions(opts...)

	return &Scanner{
		expander: Expander{logger: o.logger, marker: o.marker},
		logger:   o.logger,
	}
}

// Expander returns the expander used for each region.
func (s *Scanner) Expander() Expander { return s.expander }

// Process copies r to w, replacing each region with its expansions for
// arities 0 through [MaxArity]. Lines outside regions are written as soon as
// they are read. On error nothing further is written, in particular nothing
// for an unterminated region.
func (s *Scanner) Process(ctx context.Context, r io.Reader, w io.Writer) error {
	var regions, lines int

	err := s.scan(ctx, r,
		func(line string) error {
			lines++

			if _, err := io.WriteString(w, line); err != nil {
				return ErrWriteOutput.Wrap(err)
			}

			return nil
		},
		func(region Region) error {
			regions++

			s.lint(ctx, region)

			return s.expander.WriteAll(ctx, w, region.Body)
		},
	)
	if err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "processed",
		slog.Int("regions", regions),
		slog.Int("passthrough_lines", lines),
	)

	return nil
}

// Regions returns every region of r without expanding anything.
func (s *Scanner) Regions(ctx context.Context, r io.Reader) ([]Region, error) {
	var regions []Region

	err := s.scan(ctx, r,
		func(string) error { return nil },
		func(region Region) error {
			regions = append(regions, region)

			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return regions, nil
}

// scan drives the machine over the lines of r.
func (s *Scanner) scan(
	ctx context.Context,
	r io.Reader,
	text func(string) error,
	region func(Region) error,
) error {
	var m machine

	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return ErrReadInput.Wrap(err).With(slog.Int("line", m.line+1))
		}

		if line != "" {
			ev, serr := m.step(line)
			if serr != nil {
				return serr
			}

			switch ev {
			case eventText:
				if werr := text(line); werr != nil {
					return werr
				}

			case eventOpen:
				s.logger.TraceContext(ctx, "region open",
					slog.Int("line", m.line),
				)

			case eventClose:
				s.logger.TraceContext(ctx, "region close",
					slog.Int("start", m.open.Start),
					slog.Int("end", m.open.End),
				)

				if rerr := region(m.open); rerr != nil {
					return rerr
				}

			case eventBody:
			}
		}

		if err != nil {
			break
		}
	}

	return m.finish()
}

// lint warns about tokens that look like placeholders but are not part of
// the vocabulary.
func (s *Scanner) lint(ctx context.Context, region Region) {
	if s.logger.Logger == nil {
		return
	}

	for _, tok := range Unknown(region.Body) {
		attrs := []slog.Attr{
			slog.String("token", tok.Text),
			slog.Int("line", region.Start+tok.Line),
		}

		if len(tok.Suggestions) > 0 {
			attrs = append(attrs, slog.String("suggest", tok.Suggestions[0]))
		}

		s.logger.WarnContext(ctx, "unknown placeholder left verbatim", attrs...)
	}
}
