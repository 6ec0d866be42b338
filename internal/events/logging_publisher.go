package events

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/brutalist/internal/logger"
)

// LoggingPublisher writes each event as a structured log entry and then
// delivers it to subscribers in registration order.
type LoggingPublisher struct {
	log    *logger.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates a publisher backed by log. A nil logger only
// disables the log entry; handlers still run.
func NewLoggingPublisher(log *logger.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		log:  log,
		subs: make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event and runs every matching handler.
func (p *LoggingPublisher) Publish(ctx context.Context, event Event) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.EventType()]...)
	handlers = append(handlers, p.subs[AllEvents]...)
	p.mu.RUnlock()

	payload := event.Payload()
	fields := make(map[string]any, len(payload)+1)
	for key, value := range payload {
		fields[key] = value
	}
	fields["event_type"] = event.EventType()
	p.log.Info("theme event", fields)

	for _, entry := range handlers {
		if entry.handler == nil {
			continue
		}
		if err := entry.handler(ctx, event); err != nil {
			p.log.Warn("event handler failed", map[string]any{"event_type": event.EventType(), "error": err.Error()})
		}
	}
	return nil
}

// Subscribe registers handler for eventType, or for every event with AllEvents.
func (p *LoggingPublisher) Subscribe(eventType string, handler Handler) Subscription {
	if p == nil || handler == nil {
		return noopSubscription{}
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[eventType] = append(handlers[:i], handlers[i+1:]...)
					break
				}
			}
		},
	}
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}
