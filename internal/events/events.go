package events

import (
	"context"

	"github.com/google/uuid"
)

const (
	// EventThemeChanged is emitted after a new active theme has been applied.
	EventThemeChanged = "theme.changed"
	// EventThemeReset is emitted after the provider returns to the default theme.
	EventThemeReset = "theme.reset"
	// EventThemeRejected is emitted when a candidate theme or id is refused.
	EventThemeRejected = "theme.rejected"
	// AllEvents subscribes a handler to every event type.
	AllEvents = "*"
)

// Event is something the theme engine wants observers to know about.
type Event interface {
	EventType() string
	Payload() map[string]any
}

// Handler processes a published event. Returned errors are logged and do not
// stop delivery to the remaining handlers.
type Handler func(context.Context, Event) error

// Subscription is returned by Subscribe. Unsubscribe stops delivery.
type Subscription interface {
	Unsubscribe()
}

// Publisher distributes events synchronously.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler Handler) Subscription
}

// ThemeEvent describes a transition of the active theme.
type ThemeEvent struct {
	Type      string
	EventID   string
	ThemeID   string
	ThemeName string
	Source    string
	Reason    string
}

// NewThemeEvent stamps a theme event with a fresh correlation id.
func NewThemeEvent(eventType, themeID, themeName, source string) ThemeEvent {
	return ThemeEvent{
		Type:      eventType,
		EventID:   uuid.NewString(),
		ThemeID:   themeID,
		ThemeName: themeName,
		Source:    source,
	}
}

// WithReason returns a copy carrying a rejection reason.
func (e ThemeEvent) WithReason(reason string) ThemeEvent {
	e.Reason = reason
	return e
}

func (e ThemeEvent) EventType() string {
	return e.Type
}

func (e ThemeEvent) Payload() map[string]any {
	payload := map[string]any{
		"event_id": e.EventID,
		"theme_id": e.ThemeID,
	}
	if e.ThemeName != "" {
		payload["theme_name"] = e.ThemeName
	}
	if e.Source != "" {
		payload["source"] = e.Source
	}
	if e.Reason != "" {
		payload["reason"] = e.Reason
	}
	return payload
}
