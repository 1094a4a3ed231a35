package preview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/hopter/log"
	"github.com/ardnew/hopter/varargs"
)

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	arityStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Padding(0, 1)
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const (
	defaultWidth  = 80
	defaultHeight = 20

	// headerHeight and footerHeight are the lines drawn around the viewport.
	headerHeight = 2
	footerHeight = 2
)

// model is the Bubble Tea model for the preview.
type model struct {
	ctxFunc  func() context.Context
	name     string
	regions  []varargs.Region
	expander varargs.Expander
	logger   log.Logger
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	region   int
	arity    int
	marker   bool
	width    int
	quitting bool
}

// Run shows the expansions of regions read from the file called name, one
// region and arity at a time, until the user quits or ctx is canceled.
// It returns immediately when regions is empty.
func Run(
	ctx context.Context,
	name string,
	regions []varargs.Region,
	expander varargs.Expander,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if len(regions) == 0 {
		return nil
	}

	logger.TraceContext(ctx, "preview start",
		slog.String("name", name),
		slog.Int("regions", len(regions)),
	)

	m := newModel(ctx, name, regions, expander, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()

	return err
}

func newModel(
	ctx context.Context,
	name string,
	regions []varargs.Region,
	expander varargs.Expander,
	logger log.Logger,
) model {
	m := model{
		ctxFunc:  func() context.Context { return ctx },
		name:     name,
		regions:  regions,
		expander: expander,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
	}

	m.refresh()

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, ok := m.handleKey(msg); ok {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)

		return m, nil
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// handleKey applies the preview bindings. Keys it does not consume fall
// through to the viewport for scrolling.
func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

		return tea.Quit, true

	case key.Matches(msg, m.keys.Less):
		m.setArity(m.arity - 1)

	case key.Matches(msg, m.keys.More):
		m.setArity(m.arity + 1)

	case key.Matches(msg, m.keys.Zero):
		m.setArity(0)

	case key.Matches(msg, m.keys.Max):
		m.setArity(varargs.MaxArity)

	case key.Matches(msg, m.keys.Next):
		m.setRegion(m.region + 1)

	case key.Matches(msg, m.keys.Prev):
		m.setRegion(m.region - 1)

	case key.Matches(msg, m.keys.Marker):
		m.marker = !m.marker
		m.refresh()

	default:
		return nil, false
	}

	return nil, true
}

// setArity clamps n to the supported arities.
func (m *model) setArity(n int) {
	n = min(max(n, 0), varargs.MaxArity)
	if n == m.arity {
		return
	}

	m.arity = n
	m.refresh()
}

// setRegion wraps i around the region list.
func (m *model) setRegion(i int) {
	n := len(m.regions)
	m.region = ((i % n) + n) % n
	m.refresh()
}

func (m *model) refresh() {
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()

	m.logger.TraceContext(m.ctxFunc(), "preview",
		slog.Int("region", m.region),
		slog.Int("arity", m.arity),
	)
}

// content is the expansion of the current region at the current arity.
func (m model) content() string {
	region := m.regions[m.region]
	text := m.expander.Expand(region.Body, m.arity)

	if m.marker {
		return markerStyle.Render(strings.TrimSuffix(varargs.Marker(m.arity), "\n")) + "\n" + text
	}

	return text
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	region := m.regions[m.region]

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.name))
	b.WriteString(" ")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"region %d/%d (lines %d-%d)",
		m.region+1, len(m.regions), region.Start, region.End,
	)))
	b.WriteString(" ")
	b.WriteString(arityStyle.Render(fmt.Sprintf("n=%d", m.arity)))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
