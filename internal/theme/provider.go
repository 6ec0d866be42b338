package theme

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/brutalist/internal/events"
	"github.com/alexisbeaulieu97/brutalist/internal/logger"
	"github.com/alexisbeaulieu97/brutalist/internal/storage"
)

// Status is the provider's lifecycle state.
type Status int

const (
	StatusUninitialized Status = iota
	StatusResolving
	StatusActive
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusResolving:
		return "resolving"
	case StatusActive:
		return "active"
	default:
		return "unknown"
	}
}

// Source records where the active theme came from.
type Source string

const (
	SourceInitial Source = "initial"
	SourceStorage Source = "storage"
	SourceDefault Source = "default"
	SourceSet     Source = "set"
	SourceSelect  Source = "select"
	SourceRandom  Source = "random"
	SourceReset   Source = "reset"
)

// RootStyler receives the theme's custom properties.
type RootStyler interface {
	SetRootProperty(name, value string)
}

// Options configures Mount.
type Options struct {
	// Initial is an explicit starting theme in any form IsValidTheme accepts.
	Initial any
	// Store holds the persisted record. Nil disables reading and writing.
	Store storage.Store
	// Persist enables writing the active theme to Store on change.
	Persist    bool
	Root       RootStyler
	Publisher  events.Publisher
	Logger     *logger.Logger
	Randomizer *Randomizer
}

// Provider owns the active theme for one tree of consumers.
type Provider struct {
	mu         sync.Mutex
	status     Status
	current    Theme
	source     Source
	unmounted  bool
	store      storage.Store
	persist    bool
	root       RootStyler
	publisher  events.Publisher
	log        *logger.Logger
	randomizer *Randomizer
}

// Mount resolves the starting theme (explicit initial, then storage, then the
// default), applies it and returns an active provider.
func Mount(ctx context.Context, opts Options) *Provider {
	p := &Provider{
		status:     StatusUninitialized,
		store:      opts.Store,
		persist:    opts.Persist,
		root:       opts.Root,
		publisher:  opts.Publisher,
		log:        opts.Logger,
		randomizer: opts.Randomizer,
	}
	if p.randomizer == nil {
		p.randomizer = NewRandomizer()
	}

	p.mu.Lock()
	p.status = StatusResolving
	resolved, source := p.resolveInitial(ctx, opts.Initial)
	p.current = resolved
	p.source = source
	p.applyLocked()
	if source == SourceInitial && p.persist {
		persistTheme(ctx, p.store, resolved, p.log)
	}
	p.status = StatusActive
	p.mu.Unlock()

	p.log.Info("theme provider mounted", map[string]any{"theme": resolved.ID, "source": string(source)})
	p.publish(ctx, events.NewThemeEvent(events.EventThemeChanged, resolved.ID, resolved.Name, string(source)))
	return p
}

func (p *Provider) resolveInitial(ctx context.Context, initial any) (Theme, Source) {
	if initial != nil {
		t, err := candidateTheme(initial)
		if err == nil {
			return t, SourceInitial
		}
		p.log.Warn("ignoring invalid initial theme", map[string]any{"error": err.Error()})
	}

	if stored := LoadThemeFromStorage(ctx, p.store, p.log); stored != nil {
		err := Validate(*stored)
		if err == nil {
			return *stored, SourceStorage
		}
		p.log.Warn("ignoring invalid persisted theme", map[string]any{"error": err.Error()})
	}

	return DefaultTheme(), SourceDefault
}

// Current returns the active theme.
func (p *Provider) Current() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Source returns where the active theme came from.
func (p *Provider) Source() Source {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

// Status returns the lifecycle state.
func (p *Provider) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Mounted reports whether Unmount has not been called yet.
func (p *Provider) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.unmounted
}

// SetTheme makes candidate active when it is a valid theme. Invalid input
// leaves the active theme untouched, logs a warning and returns false.
func (p *Provider) SetTheme(ctx context.Context, candidate any) bool {
	t, err := candidateTheme(candidate)
	if err != nil {
		p.log.Warn("rejected invalid theme", map[string]any{"error": err.Error()})
		p.publish(ctx, events.NewThemeEvent(events.EventThemeRejected, "", "", string(SourceSet)).WithReason(err.Error()))
		return false
	}
	return p.activate(ctx, t, SourceSet)
}

// SetThemeByID activates a built-in theme. Unknown ids are a logged no-op.
func (p *Provider) SetThemeByID(ctx context.Context, id string) bool {
	t, ok := GetThemeByID(id)
	if !ok {
		p.log.Warn("unknown theme id", map[string]any{"id": id})
		p.publish(ctx, events.NewThemeEvent(events.EventThemeRejected, id, "", string(SourceSelect)).WithReason("unknown theme id"))
		return false
	}
	return p.activate(ctx, t, SourceSelect)
}

// RandomizeTheme activates and returns a freshly generated theme.
func (p *Provider) RandomizeTheme(ctx context.Context) Theme {
	t := p.randomizer.Theme()
	p.activate(ctx, t, SourceRandom)
	return t
}

// ResetToDefault activates the default theme and clears the persisted record.
func (p *Provider) ResetToDefault(ctx context.Context) {
	t := DefaultTheme()

	p.mu.Lock()
	if p.unmounted {
		p.mu.Unlock()
		p.log.Warn("theme reset after unmount ignored")
		return
	}
	p.current = t
	p.source = SourceReset
	p.applyLocked()
	clearPersistedTheme(ctx, p.store, p.log)
	p.mu.Unlock()

	p.publish(ctx, events.NewThemeEvent(events.EventThemeReset, t.ID, t.Name, string(SourceReset)))
}

// Unmount ends the provider's lifecycle. Later operations are ignored.
func (p *Provider) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.unmounted {
		return
	}
	p.unmounted = true
	p.log.Debug("theme provider unmounted", map[string]any{"theme": p.current.ID})
}

func (p *Provider) activate(ctx context.Context, t Theme, source Source) bool {
	p.mu.Lock()
	if p.unmounted {
		p.mu.Unlock()
		p.log.Warn("theme change after unmount ignored", map[string]any{"theme": t.ID})
		return false
	}
	p.current = t
	p.source = source
	p.applyLocked()
	if p.persist {
		persistTheme(ctx, p.store, t, p.log)
	}
	p.mu.Unlock()

	p.publish(ctx, events.NewThemeEvent(events.EventThemeChanged, t.ID, t.Name, string(source)))
	return true
}

// applyLocked writes the sixteen custom properties. Callers hold p.mu.
func (p *Provider) applyLocked() {
	if p.root == nil {
		return
	}
	for _, v := range p.current.CSSVariables() {
		p.root.SetRootProperty(v.Name, v.Value)
	}
}

func (p *Provider) publish(ctx context.Context, event events.ThemeEvent) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, event); err != nil {
		p.log.Warn("failed to publish theme event", map[string]any{"event_type": event.EventType(), "error": err.Error()})
	}
}
