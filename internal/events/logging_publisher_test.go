package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brutalist/internal/logger"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf, Component: "publisher"})
	require.NoError(t, err)
	return log, buf
}

func TestLoggingPublisherLogsPayload(t *testing.T) {
	t.Parallel()

	log, buf := newTestLogger(t)
	publisher := NewLoggingPublisher(log)

	event := NewThemeEvent(EventThemeChanged, "neon", "Neon", "set")
	require.NoError(t, publisher.Publish(context.Background(), event))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "theme event", entry["message"])
	require.Equal(t, EventThemeChanged, entry["event_type"])
	require.Equal(t, "neon", entry["theme_id"])
	require.Equal(t, "set", entry["source"])
	require.Equal(t, event.EventID, entry["event_id"])
	require.NotEmpty(t, event.EventID)
}

func TestLoggingPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	log, _ := newTestLogger(t)
	publisher := NewLoggingPublisher(log)

	var specific, wildcard int
	sub := publisher.Subscribe(EventThemeReset, func(context.Context, Event) error {
		specific++
		return nil
	})
	publisher.Subscribe(AllEvents, func(context.Context, Event) error {
		wildcard++
		return nil
	})

	ctx := context.Background()
	require.NoError(t, publisher.Publish(ctx, NewThemeEvent(EventThemeReset, "classic", "Classic", "reset")))
	require.NoError(t, publisher.Publish(ctx, NewThemeEvent(EventThemeChanged, "neon", "Neon", "set")))
	require.Equal(t, 1, specific)
	require.Equal(t, 2, wildcard)

	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(ctx, NewThemeEvent(EventThemeReset, "classic", "Classic", "reset")))
	require.Equal(t, 1, specific)
	require.Equal(t, 3, wildcard)
}

func TestLoggingPublisherLogsHandlerFailure(t *testing.T) {
	t.Parallel()

	log, buf := newTestLogger(t)
	publisher := NewLoggingPublisher(log)

	var second bool
	publisher.Subscribe(EventThemeRejected, func(context.Context, Event) error {
		return errors.New("boom")
	})
	publisher.Subscribe(EventThemeRejected, func(context.Context, Event) error {
		second = true
		return nil
	})

	event := NewThemeEvent(EventThemeRejected, "nope", "", "select").WithReason("unknown theme id")
	require.NoError(t, publisher.Publish(context.Background(), event))
	require.True(t, second)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "unknown theme id")
	require.Contains(t, lines[1], "event handler failed")
}

func TestNilPublisherIsSafe(t *testing.T) {
	t.Parallel()

	var publisher *LoggingPublisher
	require.NoError(t, publisher.Publish(context.Background(), NewThemeEvent(EventThemeChanged, "x", "", "")))
	publisher.Subscribe(EventThemeChanged, func(context.Context, Event) error { return nil }).Unsubscribe()
}
