package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).MarginTop(1)
	failureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).MarginTop(1)
	paletteBorder = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1).MarginTop(1)
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	current := m.provider.Current()
	sections := []string{titleStyle.Render("Brutalist • theme picker")}

	rows := make([]string, 0, len(m.themes))
	for i, t := range m.themes {
		marker := "  "
		name := t.Name
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			name = cursorStyle.Render(name)
		}
		line := fmt.Sprintf("%s%s %s", marker, m.swatches.Strip(t), name)
		if t.Equal(current) {
			line += " " + activeStyle.Render("(active)")
		}
		rows = append(rows, line)
	}
	sections = append(sections, sectionStyle.Render("Themes"), strings.Join(rows, "\n"))

	sections = append(sections, paletteBorder.Render(m.swatches.Palette(current)))

	if m.notice != "" {
		style := noticeStyle
		if m.noticeErr {
			style = failureStyle
		}
		sections = append(sections, style.Render(m.notice))
	}

	sections = append(sections, mutedStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
