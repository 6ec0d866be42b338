package utility

import (
	"sort"
	"strings"
)

// Style is an inline style object keyed by camelCase property name.
type Style map[string]string

// Merge returns a new Style where entries from override replace those in s.
func (s Style) Merge(override Style) Style {
	out := make(Style, len(s)+len(override))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// String renders the style as an HTML style attribute value with properties
// sorted by their CSS name.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	names := make(map[string]string, len(s))
	keys := make([]string, 0, len(s))
	for property := range s {
		name := KebabCase(property)
		names[name] = property
		keys = append(keys, name)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, name := range keys {
		parts = append(parts, name+": "+s[names[name]])
	}
	return strings.Join(parts, "; ") + ";"
}

// ParseStyleAssignments reads "property=value" pairs into a Style. Keys may be
// given in camelCase or kebab-case.
func ParseStyleAssignments(pairs []string) (Style, bool) {
	style := make(Style, len(pairs))
	for _, raw := range pairs {
		key, value, ok := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, false
		}
		style[CamelCase(key)] = strings.TrimSpace(value)
	}
	return style, true
}

// CamelCase converts a kebab-case CSS property to camelCase.
func CamelCase(property string) string {
	if strings.HasPrefix(property, "--") || !strings.Contains(property, "-") {
		return property
	}
	parts := strings.Split(property, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
