package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/brutalist/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case clearNoticeMsg:
		// A newer notice replaced this one; let its own tick clear it.
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.provider.Unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.themes)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		selected := m.themes[m.cursor]
		if !m.provider.SetThemeByID(m.ctx, selected.ID) {
			return m, m.setNotice(fmt.Sprintf("Could not apply %s", selected.Name), true)
		}
		return m, m.setNotice(fmt.Sprintf("Applied %s", selected.Name), false)

	case key.Matches(msg, m.keys.Random):
		t := m.provider.RandomizeTheme(m.ctx)
		return m, m.setNotice(fmt.Sprintf("Randomized %s", t.ID), false)

	case key.Matches(msg, m.keys.Reset):
		m.provider.ResetToDefault(m.ctx)
		m.cursor = 0
		return m, m.setNotice("Reset to "+theme.DefaultTheme().Name, false)

	case key.Matches(msg, m.keys.CopyCSS):
		return m, m.copyText("CSS variables", theme.GenerateCSSVariables(m.provider.Current()))

	case key.Matches(msg, m.keys.CopyReact):
		return m, m.copyText("React scaffold", theme.GenerateReactScaffold(m.provider.Current(), ""))
	}
	return m, nil
}

func (m *Model) copyText(what, text string) tea.Cmd {
	if err := m.copy(text); err != nil {
		m.log.Warn("clipboard write failed", map[string]any{"content": what, "error": err.Error()})
		return m.setNotice(fmt.Sprintf("Copy failed: %v", err), true)
	}
	return m.setNotice("Copied "+what, false)
}
