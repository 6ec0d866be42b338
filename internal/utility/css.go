package utility

import (
	"fmt"
	"strings"
	"unicode"
)

// GenerateResponsiveCSS wraps the declarations in a min-width media query.
func GenerateResponsiveCSS(bp Breakpoint, selector string, decls Declarations) string {
	if bp == BreakpointNone || len(decls) == 0 {
		return ""
	}
	return wrapMedia(bp, fmt.Sprintf("%s { %s }", selector, renderDeclarations(decls, false)))
}

// GenerateStateCSS emits a pseudo-class rule. Every declaration is marked
// !important so it beats inline styles set on the same element.
func GenerateStateCSS(state State, selector string, decls Declarations) string {
	if state == StateNone || len(decls) == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%s { %s }", selector, state.Pseudo(), renderDeclarations(decls, true))
}

func wrapMedia(bp Breakpoint, block string) string {
	return fmt.Sprintf("@media (min-width: %dpx) { %s }", bp.MinWidth(), block)
}

func renderDeclarations(decls Declarations, important bool) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		value := d.Value
		if important {
			value += " !important"
		}
		parts = append(parts, KebabCase(d.Property)+": "+value+";")
	}
	return strings.Join(parts, " ")
}

// mergeTransforms folds every transform declaration into the first one,
// joining values with a space. CSS keeps only one transform per rule.
func mergeTransforms(decls Declarations) Declarations {
	merged := make(Declarations, 0, len(decls))
	transformAt := -1
	for _, d := range decls {
		if d.Property != "transform" {
			merged = append(merged, d)
			continue
		}
		if transformAt < 0 {
			transformAt = len(merged)
			merged = append(merged, d)
			continue
		}
		merged[transformAt].Value += " " + d.Value
	}
	return merged
}

// KebabCase converts a camelCase property name to its CSS spelling.
func KebabCase(property string) string {
	if strings.HasPrefix(property, "--") {
		return property
	}
	var b strings.Builder
	b.Grow(len(property) + 4)
	for _, r := range property {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
