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

// Check reports the regions of a template and any @-tokens in them that no
// placeholder accounts for. Unknown tokens are not an error; structural
// problems such as an unterminated region are.
type Check struct {
	Format string `default:"text" enum:"text,yaml,json" help:"Report format." short:"o"`

	Input string `arg:"" default:"-" help:"Template source file, or '-' for stdin." name:"input" optional:""`
}

type checkReport struct {
	Input   string         `json:"input"   yaml:"input"`
	Regions []regionReport `json:"regions" yaml:"regions"`
}

type regionReport struct {
	Start   int             `json:"start"             yaml:"start"`
	End     int             `json:"end"               yaml:"end"`
	Lines   int             `json:"lines"             yaml:"lines"`
	Unknown []unknownReport `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

type unknownReport struct {
	Token   string   `json:"token"             yaml:"token"`
	Line    int      `json:"line"              yaml:"line"`
	Suggest []string `json:"suggest,omitempty" yaml:"suggest,omitempty"`
}

func (c *Check) Run(ctx context.Context) error {
	return c.run(ctx, os.Stdout)
}

func (c *Check) run(ctx context.Context, w io.Writer) error {
	log.DebugContext(ctx, "check", commandAttrs(ctx)...)

	in, err := openInput(c.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	regions, err := varargs.NewScanner().Regions(ctx, in)
	if err != nil {
		return ErrCheck.With(slog.String("input", displayName(c.Input))).Wrap(err)
	}

	report := makeCheckReport(displayName(c.Input), regions)

	if c.Format == formatText {
		return report.writeText(w)
	}

	return encode(ctx, w, c.Format, report)
}

func makeCheckReport(input string, regions []varargs.Region) checkReport {
	report := checkReport{Input: input, Regions: make([]regionReport, 0, len(regions))}

	for _, region := range regions {
		rr := regionReport{Start: region.Start, End: region.End, Lines: region.Lines()}

		for _, tok := range varargs.Unknown(region.Body) {
			rr.Unknown = append(rr.Unknown, unknownReport{
				Token:   tok.Text,
				Line:    region.Start + tok.Line,
				Suggest: tok.Suggestions,
			})
		}

		report.Regions = append(report.Regions, rr)
	}

	return report
}

// writeText writes one line per region followed by one indented line per
// unknown token, in the "file:line: message" form editors recognize.
func (r checkReport) writeText(w io.Writer) error {
	re := lipgloss.NewRenderer(w)
	pos := re.NewStyle().Bold(true)
	warn := re.NewStyle().Foreground(lipgloss.Color("11"))
	hint := re.NewStyle().Faint(true)

	var sb strings.Builder

	for _, region := range r.Regions {
		fmt.Fprintf(&sb, "%s region with %d line(s), ends at line %d\n",
			pos.Render(fmt.Sprintf("%s:%d:", r.Input, region.Start)),
			region.Lines, region.End)

		for _, u := range region.Unknown {
			fmt.Fprintf(&sb, "  %s unknown placeholder %s",
				pos.Render(fmt.Sprintf("%s:%d:", r.Input, u.Line)),
				warn.Render(u.Token))

			if len(u.Suggest) > 0 {
				sb.WriteString(" " + hint.Render("(did you mean "+strings.Join(u.Suggest, ", ")+"?)"))
			}

			sb.WriteByte('\n')
		}
	}

	fmt.Fprintf(&sb, "%s: %d region(s)\n", r.Input, len(r.Regions))

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return ErrWriteReport.Wrap(err)
	}

	return nil
}
