package utility

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResponsiveCSS(t *testing.T) {
	css := GenerateResponsiveCSS(BreakpointMD, ".x", Declarations{{"paddingLeft", "0.5rem"}})
	assert.Equal(t, "@media (min-width: 768px) { .x { padding-left: 0.5rem; } }", css)

	assert.Empty(t, GenerateResponsiveCSS(BreakpointNone, ".x", Declarations{{"padding", "0"}}))
	assert.Empty(t, GenerateResponsiveCSS(BreakpointMD, ".x", nil))
}

func TestGenerateStateCSS(t *testing.T) {
	css := GenerateStateCSS(StateFocusVisible, ".x", Declarations{{"backgroundColor", "red"}, {"color", "blue"}})
	assert.Equal(t, ".x:focus-visible { background-color: red !important; color: blue !important; }", css)
}

func TestResolveSplitsUtilitiesAndPlainClasses(t *testing.T) {
	result := Resolve(Input{
		ClassName:   "p-4 my-card hover:bg-gray-100 md:px-2 lg:hover:shadow-lg",
		BaseClasses: []string{"brutal-button"},
		Scope:       "brutal-u-test",
	})

	assert.Equal(t, "brutal-button my-card brutal-u-test", result.ClassName)
	assert.Equal(t, Style{"padding": "1rem"}, result.Style)
	assert.Equal(t, []string{"my-card"}, result.Passthrough)
	assert.Equal(t, []string{"p-4", "hover:bg-gray-100", "md:px-2", "lg:hover:shadow-lg"}, result.Utilities)

	lines := strings.Split(result.CSS, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "@media (min-width: 768px) { .brutal-u-test { padding-left: 0.5rem; padding-right: 0.5rem; } }", lines[0])
	assert.Equal(t, ".brutal-u-test:hover { background-color: var(--brutal-gray-100) !important; }", lines[1])
	assert.Equal(t, "@media (min-width: 1024px) { .brutal-u-test:hover { box-shadow: 6px 6px 0 var(--brutal-black) !important; } }", lines[2])
}

func TestResolveWithoutModifiersAddsNoScope(t *testing.T) {
	result := Resolve(Input{ClassName: "p-2 custom", Scope: "brutal-u-test"})

	assert.Equal(t, "custom", result.ClassName)
	assert.Empty(t, result.CSS)
	assert.Equal(t, Style{"padding": "0.5rem"}, result.Style)
}

func TestResolveExplicitStyleWins(t *testing.T) {
	result := Resolve(Input{
		ClassName: "p-4 bg-black",
		Style:     Style{"padding": "3px", "color": "red"},
	})

	assert.Equal(t, Style{"padding": "3px", "backgroundColor": "var(--brutal-black)", "color": "red"}, result.Style)
}

func TestResolveMergesTransformsWithinStateGroup(t *testing.T) {
	result := Resolve(Input{
		ClassName: "hover:translate-x-1 hover:-translate-y-1 hover:bg-accent",
		Scope:     "s",
	})

	assert.Equal(t, ".s:hover { transform: translateX(0.25rem) translateY(-0.25rem) !important; background-color: var(--brutal-accent) !important; }", result.CSS)
}

func TestResolveOrdersBreakpointsAscending(t *testing.T) {
	result := Resolve(Input{ClassName: "xl:p-1 sm:p-2 md:p-3", Scope: "s"})

	lines := strings.Split(result.CSS, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "640px")
	assert.Contains(t, lines[1], "768px")
	assert.Contains(t, lines[2], "1280px")
}

func TestResolveIsDeterministic(t *testing.T) {
	in := Input{ClassName: "sm:p-2 hover:rotate-3 focus:bg-white md:focus:text-black", Scope: "s"}
	first := Resolve(in)
	for range 10 {
		assert.Equal(t, first, Resolve(in))
	}
}

func TestResolveUsesDefaultScope(t *testing.T) {
	result := Resolve(Input{ClassName: "hover:p-2"})

	assert.Equal(t, DefaultScope, result.ClassName)
	assert.True(t, strings.HasPrefix(result.CSS, "."+DefaultScope+":hover"))
}

func TestResolveLossyTokenDropsModifiers(t *testing.T) {
	result := Resolve(Input{ClassName: "sm:hover:focus:p-2", Scope: "s"})

	assert.Empty(t, result.CSS)
	assert.Equal(t, Style{"padding": "0.5rem"}, result.Style)
}

func TestStyleString(t *testing.T) {
	style := Style{"paddingTop": "1rem", "color": "red", "backgroundColor": "blue"}
	assert.Equal(t, "background-color: blue; color: red; padding-top: 1rem;", style.String())
	assert.Empty(t, Style{}.String())
}

func TestParseStyleAssignments(t *testing.T) {
	style, ok := ParseStyleAssignments([]string{"background-color=red", "padding = 2px"})
	require.True(t, ok)
	assert.Equal(t, Style{"backgroundColor": "red", "padding": "2px"}, style)

	_, ok = ParseStyleAssignments([]string{"nonsense"})
	assert.False(t, ok)
}
