package components

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/brutalist/internal/theme"
)

const (
	unicodeSwatch = "██"
	asciiSwatch   = "[]"
)

var (
	swatchLabelStyle = lipgloss.NewStyle().Width(14)
	swatchValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	swatchTitleStyle = lipgloss.NewStyle().Bold(true)
)

// SwatchRenderer draws theme colors as terminal swatches.
type SwatchRenderer struct {
	glyph string
}

// NewSwatchRenderer picks block glyphs when w is a terminal and plain
// brackets otherwise.
func NewSwatchRenderer(w io.Writer) *SwatchRenderer {
	return &SwatchRenderer{glyph: swatchGlyph(isTerminal(w))}
}

// NewSwatchRendererWithGlyphs forces the glyph set.
func NewSwatchRendererWithGlyphs(unicode bool) *SwatchRenderer {
	return &SwatchRenderer{glyph: swatchGlyph(unicode)}
}

func swatchGlyph(unicode bool) string {
	if unicode {
		return unicodeSwatch
	}
	return asciiSwatch
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Swatch renders a single colored block.
func (r *SwatchRenderer) Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(r.glyph)
}

// Row renders one labelled color line.
func (r *SwatchRenderer) Row(key theme.ColorKey, value string) string {
	return fmt.Sprintf("  %s %s %s", r.Swatch(value), swatchLabelStyle.Render(key.String()), swatchValueStyle.Render(value))
}

// Palette renders every color of t under a heading.
func (r *SwatchRenderer) Palette(t theme.Theme) string {
	lines := []string{swatchTitleStyle.Render(fmt.Sprintf("%s (%s)", t.Name, t.ID))}
	if t.Description != "" {
		lines = append(lines, swatchValueStyle.Render(t.Description))
	}
	for _, key := range theme.ColorKeys() {
		lines = append(lines, r.Row(key, t.Colors.Get(key)))
	}
	return strings.Join(lines, "\n")
}

// Strip renders the accent colors side by side as a compact preview.
func (r *SwatchRenderer) Strip(t theme.Theme) string {
	keys := []theme.ColorKey{theme.ColorBlack, theme.ColorWhite, theme.ColorAccent, theme.ColorAccentDark, theme.ColorAccentLight}
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, r.Swatch(t.Colors.Get(key)))
	}
	return strings.Join(parts, "")
}
