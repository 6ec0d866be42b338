package logger

import (
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger wraps zerolog with the small surface the theme and utility engines need.
// All methods are safe on a nil receiver so callers may leave logging unwired.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for _, key := range sortedKeys(fields) {
		builder = builder.Interface(key, fields[key])
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Component derives a logger tagged with the given component name.
func (l *Logger) Component(name string) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Str("component", name).Logger()}
	return &derived
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	withFields(l.base.Info(), fields).Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	withFields(l.base.Debug(), fields).Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	withFields(l.base.Warn(), fields).Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string, fields ...map[string]any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	withFields(event, fields).Msg(msg)
}

func withFields(event *zerolog.Event, fields []map[string]any) *zerolog.Event {
	for _, set := range fields {
		for _, key := range sortedKeys(set) {
			event = event.Interface(key, set[key])
		}
	}
	return event
}

func sortedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
