package utility

import "strings"

// ModifiedUtility is a className token split into its optional modifiers and
// the bare utility name.
type ModifiedUtility struct {
	Breakpoint Breakpoint
	State      State
	Utility    string
}

// HasModifier reports whether a breakpoint or a state was recognised.
func (m ModifiedUtility) HasModifier() bool {
	return m.Breakpoint != BreakpointNone || m.State != StateNone
}

// ParseModifiedUtility splits a token on ":".
//
//	"px-4"                  → {Utility: "px-4"}
//	"hover:bg-gray-100"     → {State: hover, Utility: "bg-gray-100"}
//	"md:hover:bg-gray-100"  → {Breakpoint: md, State: hover, Utility: "bg-gray-100"}
//
// Tokens with more than two colons keep only the final segment and carry no
// modifiers.
func ParseModifiedUtility(token string) ModifiedUtility {
	parts := strings.Split(token, ":")

	switch len(parts) {
	case 1:
		return ModifiedUtility{Utility: token}
	case 2:
		parsed := ModifiedUtility{Utility: parts[1]}
		if bp, ok := ParseBreakpoint(parts[0]); ok {
			parsed.Breakpoint = bp
		} else if state, ok := ParseState(parts[0]); ok {
			parsed.State = state
		}
		return parsed
	case 3:
		parsed := ModifiedUtility{Utility: parts[2]}
		if bp, ok := ParseBreakpoint(parts[0]); ok {
			parsed.Breakpoint = bp
		}
		if state, ok := ParseState(parts[1]); ok {
			parsed.State = state
		}
		return parsed
	default:
		return ModifiedUtility{Utility: parts[len(parts)-1]}
	}
}
