package utility

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/brutalist/internal/logger"
)

// StyleSink is the environment that owns generated <style> elements.
type StyleSink interface {
	UpsertStyle(scope, css string)
	RemoveStyle(scope string)
}

// Instance ties generated CSS to one component instance. The instance's style
// element is created on first need, replaced when the CSS changes and removed
// exactly once by Close.
type Instance struct {
	mu       sync.Mutex
	scope    string
	sink     StyleSink
	log      *logger.Logger
	injected bool
	lastCSS  string
	closed   bool
}

// InstanceOption customises an Instance.
type InstanceOption func(*Instance)

// WithLogger attaches a logger for lifecycle diagnostics.
func WithLogger(log *logger.Logger) InstanceOption {
	return func(i *Instance) {
		i.log = log
	}
}

// WithScope overrides the generated scope class.
func WithScope(scope string) InstanceOption {
	return func(i *Instance) {
		if scope != "" {
			i.scope = scope
		}
	}
}

// NewInstance allocates a unique scope class bound to sink.
func NewInstance(sink StyleSink, opts ...InstanceOption) *Instance {
	inst := &Instance{scope: NewScope(), sink: sink}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// NewScope returns a fresh synthetic class name such as "brutal-u-1a2b3c4d".
func NewScope() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "brutal-u-" + id[:8]
}

// Scope returns the instance's synthetic class name.
func (i *Instance) Scope() string {
	return i.scope
}

// Resolve runs the engine for this instance and syncs its style element.
func (i *Instance) Resolve(className string, style Style, baseClasses ...string) Result {
	result := Resolve(Input{
		ClassName:   className,
		Style:       style,
		BaseClasses: baseClasses,
		Scope:       i.scope,
	})

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		i.log.Warn("utility instance resolved after close", map[string]any{"scope": i.scope})
		return result
	}
	if i.sink == nil {
		return result
	}

	switch {
	case !i.injected && result.CSS == "":
	case !i.injected:
		i.sink.UpsertStyle(i.scope, result.CSS)
		i.injected = true
		i.lastCSS = result.CSS
	case result.CSS != i.lastCSS:
		i.sink.UpsertStyle(i.scope, result.CSS)
		i.lastCSS = result.CSS
	}
	return result
}

// Close removes the instance's style element. Further calls do nothing.
func (i *Instance) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return
	}
	i.closed = true
	if i.injected && i.sink != nil {
		i.sink.RemoveStyle(i.scope)
		i.log.Debug("utility styles removed", map[string]any{"scope": i.scope})
	}
}
