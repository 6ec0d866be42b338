package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/brutalist/internal/components"
	"github.com/alexisbeaulieu97/brutalist/internal/logger"
	"github.com/alexisbeaulieu97/brutalist/internal/theme"
)

// NoticeDuration is how long a status notice stays on screen.
const NoticeDuration = 2 * time.Second

// clearNoticeMsg expires the notice with the matching sequence number.
type clearNoticeMsg struct {
	seq int
}

// Model is the Bubbletea state of the theme picker.
type Model struct {
	ctx       context.Context
	provider  *theme.Provider
	themes    []theme.Theme
	cursor    int
	keys      keyMap
	help      help.Model
	swatches  *components.SwatchRenderer
	copy      func(string) error
	log       *logger.Logger
	notice    string
	noticeErr bool
	noticeSeq int
	quitting  bool
}

// Option customises the picker.
type Option func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		m.copy = write
	}
}

// WithLogger attaches a logger for clipboard failures.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// WithSwatches overrides swatch rendering.
func WithSwatches(r *components.SwatchRenderer) Option {
	return func(m *Model) {
		m.swatches = r
	}
}

// NewModel builds a picker over the built-in themes, positioned on the
// active one.
func NewModel(ctx context.Context, provider *theme.Provider, opts ...Option) Model {
	m := Model{
		ctx:      ctx,
		provider: provider,
		themes:   theme.BuiltinThemes(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		swatches: components.NewSwatchRendererWithGlyphs(true),
		copy:     clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}

	active := provider.Current().ID
	for i, t := range m.themes {
		if t.ID == active {
			m.cursor = i
			break
		}
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// Notice returns the visible notice, if any.
func (m Model) Notice() string {
	return m.notice
}

// Quitting reports whether the picker has been closed.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) setNotice(text string, isErr bool) tea.Cmd {
	m.notice = text
	m.noticeErr = isErr
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

// Run starts the picker on the terminal and blocks until it exits.
func Run(ctx context.Context, provider *theme.Provider, opts ...Option) error {
	p := tea.NewProgram(NewModel(ctx, provider, opts...), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
