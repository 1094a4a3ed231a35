package preview

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/hopter/log"
	"github.com/ardnew/hopter/varargs"
)

func testRegions() []varargs.Region {
	return []varargs.Region{
		{Start: 1, End: 3, Body: "struct Tuple@NUM<@SELARGS>;\n"},
		{Start: 5, End: 7, Body: "void f(@FUNCARGS);\n"},
	}
}

func testModel(t *testing.T) model {
	t.Helper()

	return newModel(context.Background(), "in.hxx", testRegions(), varargs.NewExpander(), log.Logger{})
}

func press(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd

	for _, msg := range msgs {
		var next tea.Model

		next, cmd = m.Update(msg)

		var ok bool

		m, ok = next.(model)
		require.True(t, ok)
	}

	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := testModel(t)

	assert.Equal(t, 0, m.region)
	assert.Equal(t, 0, m.arity)
	assert.Equal(t, "struct Tuple0;\n", m.content())
}

func TestArityKeys(t *testing.T) {
	m := testModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.arity)
	assert.Equal(t, "struct Tuple1<Param1>;\n", m.content())

	m, _ = press(t, m, runes("l"), runes("l"))
	assert.Equal(t, 3, m.arity)

	m, _ = press(t, m, runes("h"), tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.arity)

	m, _ = press(t, m, runes("$"))
	assert.Equal(t, varargs.MaxArity, m.arity)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, varargs.MaxArity, m.arity, "arity is clamped above")

	m, _ = press(t, m, runes("0"), tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.arity, "arity is clamped below")
}

func TestRegionKeysWrap(t *testing.T) {
	m := testModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.region)
	assert.Equal(t, "void f();\n", m.content())

	m, _ = press(t, m, runes("n"))
	assert.Equal(t, 0, m.region)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.region)

	m, _ = press(t, m, runes("p"))
	assert.Equal(t, 0, m.region)
}

func TestMarkerToggle(t *testing.T) {
	m := testModel(t)

	m, _ = press(t, m, runes("m"))
	assert.True(t, m.marker)
	assert.Contains(t, m.content(), "//N=0")
	assert.Contains(t, m.content(), "struct Tuple0;")

	m, _ = press(t, m, runes("m"))
	assert.False(t, m.marker)
	assert.NotContains(t, m.content(), "//N=")
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		runes("q"),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			m, cmd := press(t, testModel(t), msg)

			assert.True(t, m.quitting)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestView(t *testing.T) {
	m, _ := press(t, testModel(t),
		tea.WindowSizeMsg{Width: 100, Height: 12},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
	)

	view := m.View()

	assert.Equal(t, 100, m.viewport.Width)
	assert.Equal(t, 12-headerHeight-footerHeight, m.viewport.Height)
	assert.Contains(t, view, "in.hxx")
	assert.Contains(t, view, "region 1/2 (lines 1-3)")
	assert.Contains(t, view, "n=2")
	assert.Contains(t, view, "struct Tuple2<Param1, Param2>;")
}

func TestRunNoRegions(t *testing.T) {
	err := Run(context.Background(), "empty", nil, varargs.NewExpander(), log.Logger{})
	assert.NoError(t, err)
}
