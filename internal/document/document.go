package document

import (
	"html"
	"sort"
	"strings"
	"sync"
)

// ChangeType names a mutation applied to the document.
type ChangeType string

const (
	ChangeRootProperty ChangeType = "root-property"
	ChangeStyleUpsert  ChangeType = "style-upsert"
	ChangeStyleRemove  ChangeType = "style-remove"
)

// Change describes one mutation. It is also the wire format streamed to
// preview clients.
type Change struct {
	Type  ChangeType `json:"type"`
	ID    string     `json:"id,omitempty"`
	Name  string     `json:"name,omitempty"`
	Value string     `json:"value,omitempty"`
	CSS   string     `json:"css,omitempty"`
}

// Listener receives changes synchronously after they are applied.
type Listener func(Change)

// Property is a custom property set on the root element.
type Property struct {
	Name  string
	Value string
}

// StyleElement is a generated <style> element keyed by its scope class.
type StyleElement struct {
	Scope string
	CSS   string
}

// Document is the single place where generated CSS meets the rendering
// environment: root custom properties and per-instance style elements.
type Document struct {
	mu         sync.RWMutex
	root       map[string]string
	rootOrder  []string
	styles     map[string]string
	styleOrder []string
	listeners  map[int]Listener
	nextID     int
}

// New returns an empty document.
func New() *Document {
	return &Document{
		root:      make(map[string]string),
		styles:    make(map[string]string),
		listeners: make(map[int]Listener),
	}
}

// SetRootProperty writes a custom property onto the root element.
// Writing the value already present is not reported as a change.
func (d *Document) SetRootProperty(name, value string) {
	d.mu.Lock()
	current, exists := d.root[name]
	if exists && current == value {
		d.mu.Unlock()
		return
	}
	if !exists {
		d.rootOrder = append(d.rootOrder, name)
	}
	d.root[name] = value
	listeners := d.snapshotListeners()
	d.mu.Unlock()

	notify(listeners, Change{Type: ChangeRootProperty, Name: name, Value: value})
}

// RootProperty reads a root custom property.
func (d *Document) RootProperty(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	value, ok := d.root[name]
	return value, ok
}

// RootProperties returns the root custom properties in first-write order.
func (d *Document) RootProperties() []Property {
	d.mu.RLock()
	defer d.mu.RUnlock()

	props := make([]Property, 0, len(d.rootOrder))
	for _, name := range d.rootOrder {
		props = append(props, Property{Name: name, Value: d.root[name]})
	}
	return props
}

// UpsertStyle creates or replaces the style element owned by scope.
func (d *Document) UpsertStyle(scope, css string) {
	d.mu.Lock()
	if _, exists := d.styles[scope]; !exists {
		d.styleOrder = append(d.styleOrder, scope)
	}
	d.styles[scope] = css
	listeners := d.snapshotListeners()
	d.mu.Unlock()

	notify(listeners, Change{Type: ChangeStyleUpsert, ID: scope, CSS: css})
}

// RemoveStyle deletes the style element owned by scope if it exists.
func (d *Document) RemoveStyle(scope string) {
	d.mu.Lock()
	if _, exists := d.styles[scope]; !exists {
		d.mu.Unlock()
		return
	}
	delete(d.styles, scope)
	for i, id := range d.styleOrder {
		if id == scope {
			d.styleOrder = append(d.styleOrder[:i], d.styleOrder[i+1:]...)
			break
		}
	}
	listeners := d.snapshotListeners()
	d.mu.Unlock()

	notify(listeners, Change{Type: ChangeStyleRemove, ID: scope})
}

// Style returns the CSS held by the style element for scope.
func (d *Document) Style(scope string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	css, ok := d.styles[scope]
	return css, ok
}

// StyleElements returns every style element in creation order.
func (d *Document) StyleElements() []StyleElement {
	d.mu.RLock()
	defer d.mu.RUnlock()

	elements := make([]StyleElement, 0, len(d.styleOrder))
	for _, scope := range d.styleOrder {
		elements = append(elements, StyleElement{Scope: scope, CSS: d.styles[scope]})
	}
	return elements
}

// Subscribe registers a listener and returns a function that removes it.
func (d *Document) Subscribe(listener Listener) func() {
	if listener == nil {
		return func() {}
	}

	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.listeners[id] = listener
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.listeners, id)
		d.mu.Unlock()
	}
}

// Snapshot replays the current state as a list of changes.
func (d *Document) Snapshot() []Change {
	d.mu.RLock()
	defer d.mu.RUnlock()

	changes := make([]Change, 0, len(d.rootOrder)+len(d.styleOrder))
	for _, name := range d.rootOrder {
		changes = append(changes, Change{Type: ChangeRootProperty, Name: name, Value: d.root[name]})
	}
	for _, scope := range d.styleOrder {
		changes = append(changes, Change{Type: ChangeStyleUpsert, ID: scope, CSS: d.styles[scope]})
	}
	return changes
}

// RenderHead renders the document state as <style> elements suitable for an
// HTML head.
func (d *Document) RenderHead() string {
	var b strings.Builder

	props := d.RootProperties()
	if len(props) > 0 {
		b.WriteString("<style data-brutal-theme>\n:root {\n")
		for _, prop := range props {
			b.WriteString("  ")
			b.WriteString(prop.Name)
			b.WriteString(": ")
			b.WriteString(escapeCSS(prop.Value))
			b.WriteString(";\n")
		}
		b.WriteString("}\n</style>\n")
	}

	for _, el := range d.StyleElements() {
		b.WriteString(`<style data-brutal-utilities="`)
		b.WriteString(html.EscapeString(el.Scope))
		b.WriteString("\">\n")
		b.WriteString(escapeCSS(el.CSS))
		b.WriteString("\n</style>\n")
	}
	return b.String()
}

func (d *Document) snapshotListeners() []Listener {
	ids := make([]int, 0, len(d.listeners))
	for id := range d.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, d.listeners[id])
	}
	return listeners
}

func notify(listeners []Listener, change Change) {
	for _, listener := range listeners {
		listener(change)
	}
}

// escapeCSS keeps generated text from closing the surrounding style element.
func escapeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
