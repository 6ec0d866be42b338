package utility

import (
	"strings"
)

// DefaultScope is used when Resolve is called without a scope class.
const DefaultScope = "brutal-u-static"

// Input is what a component hands to the engine on every render.
type Input struct {
	ClassName   string
	Style       Style
	BaseClasses []string
	// Scope is the synthetic class that generated rules are attached to.
	Scope string
}

// Result is the resolved className, inline style and scoped stylesheet.
type Result struct {
	ClassName string
	Style     Style
	CSS       string
	// Utilities lists the recognised tokens as written, modifiers included.
	Utilities []string
	// Passthrough lists tokens kept verbatim as plain CSS classes.
	Passthrough []string
}

// Resolve separates utility tokens from plain classes, folds unmodified
// utilities into the inline style and generates scoped CSS for the rest.
// It has no side effects.
func Resolve(in Input) Result {
	scope := in.Scope
	if scope == "" {
		scope = DefaultScope
	}

	var (
		utilities   []string
		passthrough []string
		base        = Style{}
	)
	for _, token := range strings.Fields(in.ClassName) {
		parsed := ParseModifiedUtility(token)
		decls, ok := ParseUtilityClass(parsed.Utility)
		if !ok {
			passthrough = append(passthrough, token)
			continue
		}
		utilities = append(utilities, token)
		if !parsed.HasModifier() {
			base = base.Merge(decls.Style())
		}
	}

	css := GenerateStylesheet(GroupUtilitiesByModifiers(utilities), "."+scope)

	classes := make([]string, 0, len(in.BaseClasses)+len(passthrough)+1)
	for _, class := range in.BaseClasses {
		if class = strings.TrimSpace(class); class != "" {
			classes = append(classes, class)
		}
	}
	classes = append(classes, passthrough...)
	if css != "" {
		classes = append(classes, scope)
	}

	return Result{
		ClassName:   strings.Join(classes, " "),
		Style:       base.Merge(in.Style),
		CSS:         css,
		Utilities:   utilities,
		Passthrough: passthrough,
	}
}

// GenerateStylesheet renders the modified buckets of a group against selector.
// Blocks are ordered responsive, then state, then responsive+state, with
// breakpoints ascending and states in declaration order.
func GenerateStylesheet(group UtilityGroup, selector string) string {
	var blocks []string

	for _, bp := range Breakpoints() {
		if block := GenerateResponsiveCSS(bp, selector, collect(group.Responsive[bp])); block != "" {
			blocks = append(blocks, block)
		}
	}

	for _, state := range States() {
		decls := mergeTransforms(collect(group.States[state]))
		if block := GenerateStateCSS(state, selector, decls); block != "" {
			blocks = append(blocks, block)
		}
	}

	for _, bp := range Breakpoints() {
		for _, state := range States() {
			decls := mergeTransforms(collect(group.ResponsiveStates[ResponsiveStateKey(bp, state)]))
			if block := GenerateStateCSS(state, selector, decls); block != "" {
				blocks = append(blocks, wrapMedia(bp, block))
			}
		}
	}

	return strings.Join(blocks, "\n")
}

func collect(utilities []string) Declarations {
	var decls Declarations
	for _, utility := range utilities {
		if parsed, ok := ParseUtilityClass(utility); ok {
			decls = append(decls, parsed...)
		}
	}
	return decls
}
