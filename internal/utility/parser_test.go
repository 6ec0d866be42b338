package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModifiedUtility(t *testing.T) {
	tests := []struct {
		token string
		want  ModifiedUtility
	}{
		{token: "px-4", want: ModifiedUtility{Utility: "px-4"}},
		{token: "hover:bg-gray-100", want: ModifiedUtility{State: StateHover, Utility: "bg-gray-100"}},
		{token: "md:p-2", want: ModifiedUtility{Breakpoint: BreakpointMD, Utility: "p-2"}},
		{token: "2xl:p-2", want: ModifiedUtility{Breakpoint: Breakpoint2XL, Utility: "p-2"}},
		{token: "focus-visible:shadow-lg", want: ModifiedUtility{State: StateFocusVisible, Utility: "shadow-lg"}},
		{token: "md:hover:bg-gray-100", want: ModifiedUtility{Breakpoint: BreakpointMD, State: StateHover, Utility: "bg-gray-100"}},
		{token: "dark:p-2", want: ModifiedUtility{Utility: "p-2"}},
		{token: "hover:md:p-2", want: ModifiedUtility{Utility: "p-2"}},
		{token: "sm:nope:p-2", want: ModifiedUtility{Breakpoint: BreakpointSM, Utility: "p-2"}},
		{token: "sm:hover:focus:p-2", want: ModifiedUtility{Utility: "p-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseModifiedUtility(tt.token))
		})
	}
}

func TestModifierNames(t *testing.T) {
	for _, bp := range Breakpoints() {
		parsed, ok := ParseBreakpoint(bp.String())
		assert.True(t, ok)
		assert.Equal(t, bp, parsed)
	}
	for _, state := range States() {
		parsed, ok := ParseState(state.String())
		assert.True(t, ok)
		assert.Equal(t, state, parsed)
	}

	assert.Equal(t, 640, BreakpointSM.MinWidth())
	assert.Equal(t, 1536, Breakpoint2XL.MinWidth())
	assert.Equal(t, "focus-within", StateFocusWithin.Pseudo())
	assert.Equal(t, "lg:hover", ResponsiveStateKey(BreakpointLG, StateHover))
}

func TestGroupUtilitiesByModifiers(t *testing.T) {
	group := GroupUtilitiesByModifiers([]string{"p-4", "sm:px-2", "hover:bg-gray-100", "lg:hover:shadow-lg"})

	assert.Equal(t, []string{"p-4"}, group.Base)
	assert.Equal(t, []string{"px-2"}, group.Responsive[BreakpointSM])
	assert.Equal(t, []string{"bg-gray-100"}, group.States[StateHover])
	assert.Equal(t, []string{"shadow-lg"}, group.ResponsiveStates["lg:hover"])
	assert.Len(t, group.Responsive, 1)
	assert.Len(t, group.States, 1)
	assert.Len(t, group.ResponsiveStates, 1)
}
