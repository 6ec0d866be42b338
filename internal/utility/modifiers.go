package utility

// Breakpoint is a named minimum viewport width.
type Breakpoint int

const (
	BreakpointNone Breakpoint = iota
	BreakpointSM              // ≥640px
	BreakpointMD              // ≥768px
	BreakpointLG              // ≥1024px
	BreakpointXL              // ≥1280px
	Breakpoint2XL             // ≥1536px
)

// Breakpoints lists every breakpoint in ascending width order.
func Breakpoints() []Breakpoint {
	return []Breakpoint{BreakpointSM, BreakpointMD, BreakpointLG, BreakpointXL, Breakpoint2XL}
}

// ParseBreakpoint maps a modifier prefix to its breakpoint.
func ParseBreakpoint(prefix string) (Breakpoint, bool) {
	switch prefix {
	case "sm":
		return BreakpointSM, true
	case "md":
		return BreakpointMD, true
	case "lg":
		return BreakpointLG, true
	case "xl":
		return BreakpointXL, true
	case "2xl":
		return Breakpoint2XL, true
	default:
		return BreakpointNone, false
	}
}

func (b Breakpoint) String() string {
	switch b {
	case BreakpointSM:
		return "sm"
	case BreakpointMD:
		return "md"
	case BreakpointLG:
		return "lg"
	case BreakpointXL:
		return "xl"
	case Breakpoint2XL:
		return "2xl"
	default:
		return ""
	}
}

// MinWidth returns the threshold in pixels, or 0 for BreakpointNone.
func (b Breakpoint) MinWidth() int {
	switch b {
	case BreakpointSM:
		return 640
	case BreakpointMD:
		return 768
	case BreakpointLG:
		return 1024
	case BreakpointXL:
		return 1280
	case Breakpoint2XL:
		return 1536
	default:
		return 0
	}
}

// State is a named interaction pseudo-class.
type State int

const (
	StateNone State = iota
	StateHover
	StateFocus
	StateActive
	StateDisabled
	StateFocusWithin
	StateFocusVisible
)

// States lists every state in declaration order.
func States() []State {
	return []State{StateHover, StateFocus, StateActive, StateDisabled, StateFocusWithin, StateFocusVisible}
}

// ParseState maps a modifier prefix to its state.
func ParseState(prefix string) (State, bool) {
	switch prefix {
	case "hover":
		return StateHover, true
	case "focus":
		return StateFocus, true
	case "active":
		return StateActive, true
	case "disabled":
		return StateDisabled, true
	case "focus-within":
		return StateFocusWithin, true
	case "focus-visible":
		return StateFocusVisible, true
	default:
		return StateNone, false
	}
}

func (s State) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StateFocus:
		return "focus"
	case StateActive:
		return "active"
	case StateDisabled:
		return "disabled"
	case StateFocusWithin:
		return "focus-within"
	case StateFocusVisible:
		return "focus-visible"
	default:
		return ""
	}
}

// Pseudo returns the CSS pseudo-class name used in generated selectors.
func (s State) Pseudo() string {
	return s.String()
}

// ResponsiveStateKey builds the key used by UtilityGroup.ResponsiveStates.
func ResponsiveStateKey(b Breakpoint, s State) string {
	return b.String() + ":" + s.String()
}
