package utility

// UtilityGroup partitions utility tokens by the modifiers they carried. Every
// bucket holds unwrapped utility names ("px-2", not "sm:px-2").
type UtilityGroup struct {
	Base             []string
	Responsive       map[Breakpoint][]string
	States           map[State][]string
	ResponsiveStates map[string][]string
}

// GroupUtilitiesByModifiers buckets tokens by breakpoint and state presence.
func GroupUtilitiesByModifiers(tokens []string) UtilityGroup {
	group := UtilityGroup{
		Responsive:       make(map[Breakpoint][]string),
		States:           make(map[State][]string),
		ResponsiveStates: make(map[string][]string),
	}

	for _, token := range tokens {
		parsed := ParseModifiedUtility(token)
		switch {
		case parsed.Breakpoint != BreakpointNone && parsed.State != StateNone:
			key := ResponsiveStateKey(parsed.Breakpoint, parsed.State)
			group.ResponsiveStates[key] = append(group.ResponsiveStates[key], parsed.Utility)
		case parsed.Breakpoint != BreakpointNone:
			group.Responsive[parsed.Breakpoint] = append(group.Responsive[parsed.Breakpoint], parsed.Utility)
		case parsed.State != StateNone:
			group.States[parsed.State] = append(group.States[parsed.State], parsed.Utility)
		default:
			group.Base = append(group.Base, parsed.Utility)
		}
	}

	return group
}
