package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brutalist/internal/components"
	"github.com/alexisbeaulieu97/brutalist/internal/document"
	"github.com/alexisbeaulieu97/brutalist/internal/theme"
)

type clipboardStub struct {
	text string
	err  error
}

func (c *clipboardStub) write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func newTestModel(t *testing.T, initial any, cb *clipboardStub) (Model, *theme.Provider) {
	t.Helper()
	provider := theme.Mount(context.Background(), theme.Options{Initial: initial, Root: document.New()})
	m := NewModel(context.Background(), provider,
		WithClipboard(cb.write),
		WithSwatches(components.NewSwatchRendererWithGlyphs(false)),
	)
	return m, provider
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, c := m.Update(msg)
		m = updated.(Model)
		cmd = c
	}
	return m, cmd
}

func TestNewModelStartsOnActiveTheme(t *testing.T) {
	ocean, ok := theme.GetThemeByID("ocean")
	require.True(t, ok)

	m, _ := newTestModel(t, ocean, &clipboardStub{})
	require.Equal(t, "ocean", m.themes[m.Cursor()].ID)
	require.Nil(t, m.Init())
}

func TestCursorStaysInBounds(t *testing.T) {
	m, _ := newTestModel(t, nil, &clipboardStub{})
	require.Equal(t, 0, m.Cursor())

	m, _ = press(t, m, "up")
	require.Equal(t, 0, m.Cursor())

	for range m.themes {
		m, _ = press(t, m, "down")
	}
	require.Equal(t, len(m.themes)-1, m.Cursor())
}

func TestEnterAppliesHighlightedTheme(t *testing.T) {
	m, provider := newTestModel(t, nil, &clipboardStub{})

	m, cmd := press(t, m, "down", "enter")
	require.NotNil(t, cmd, "notices schedule their own expiry")
	require.Equal(t, "neon", provider.Current().ID)
	require.Equal(t, "Applied Neon", m.Notice())
	require.Contains(t, m.View(), "(active)")
}

func TestRandomAndReset(t *testing.T) {
	m, provider := newTestModel(t, nil, &clipboardStub{})

	m, _ = press(t, m, "r")
	require.Contains(t, provider.Current().ID, theme.RandomThemeIDPrefix)
	require.Contains(t, m.Notice(), "Randomized")

	m, _ = press(t, m, "down", "down", "d")
	require.Equal(t, theme.DefaultThemeID, provider.Current().ID)
	require.Equal(t, 0, m.Cursor())
}

func TestCopyCommands(t *testing.T) {
	cb := &clipboardStub{}
	m, provider := newTestModel(t, nil, cb)

	m, _ = press(t, m, "c")
	require.Equal(t, theme.GenerateCSSVariables(provider.Current()), cb.text)
	require.Equal(t, "Copied CSS variables", m.Notice())

	m, _ = press(t, m, "x")
	require.Equal(t, theme.GenerateReactScaffold(provider.Current(), ""), cb.text)
	require.Equal(t, "Copied React scaffold", m.Notice())
}

func TestCopyFailureShowsErrorNotice(t *testing.T) {
	m, _ := newTestModel(t, nil, &clipboardStub{err: errors.New("no clipboard")})

	m, _ = press(t, m, "c")
	require.Equal(t, "Copy failed: no clipboard", m.Notice())
	require.True(t, m.noticeErr)
}

func TestNoticeClearsOnlyForLatestSequence(t *testing.T) {
	m, _ := newTestModel(t, nil, &clipboardStub{})

	m, _ = press(t, m, "c")
	stale := clearNoticeMsg{seq: m.noticeSeq}
	m, _ = press(t, m, "x")

	updated, _ := m.Update(stale)
	m = updated.(Model)
	require.Equal(t, "Copied React scaffold", m.Notice(), "an older timer must not clear a newer notice")

	updated, _ = m.Update(clearNoticeMsg{seq: m.noticeSeq})
	m = updated.(Model)
	require.Empty(t, m.Notice())
}

func TestQuitUnmountsProvider(t *testing.T) {
	m, provider := newTestModel(t, nil, &clipboardStub{})

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	require.True(t, m.Quitting())
	require.False(t, provider.Mounted())
	require.Empty(t, m.View())
}
