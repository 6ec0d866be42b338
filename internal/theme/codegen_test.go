package theme

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCSSVariables(t *testing.T) {
	neon, _ := GetThemeByID("neon")
	css := GenerateCSSVariables(neon)

	lines := strings.Split(css, "\n")
	require.Len(t, lines, 18)
	assert.Equal(t, ":root {", lines[0])
	assert.Equal(t, "  --brutal-black: #0A0A0A;", lines[1])
	assert.Equal(t, "  --brutal-accent: #00FF88;", lines[3])
	assert.Equal(t, "}", lines[17])
}

func TestGenerateCSSVariablesRoundTripsKeyOrder(t *testing.T) {
	pattern := regexp.MustCompile(`(--brutal-[a-z0-9-]+):`)
	want := make([]string, 0, 16)
	for _, key := range ColorKeys() {
		want = append(want, key.CSSVariable())
	}

	for _, th := range append(BuiltinThemes(), NewRandomizer().Theme()) {
		for range 3 {
			matches := pattern.FindAllStringSubmatch(GenerateCSSVariables(th), -1)
			got := make([]string, 0, len(matches))
			for _, m := range matches {
				got = append(got, m[1])
			}
			assert.Equal(t, want, got, th.ID)
		}
	}
}

func TestGenerateThemeObject(t *testing.T) {
	classic := DefaultTheme()
	obj := GenerateThemeObject(classic)

	assert.True(t, strings.HasPrefix(obj, "export const classicTheme = {\n"))
	assert.Contains(t, obj, `  id: "classic",`)
	assert.Contains(t, obj, "  colors: {\n    black: \"#000000\",")
	assert.Contains(t, obj, `    accentDark: "#C7B300",`)
	assert.True(t, strings.HasSuffix(obj, "};\n"))
}

func TestGenerateThemeObjectEscapesStrings(t *testing.T) {
	th := DefaultTheme()
	th.Description = `Quote " and backslash \`
	assert.Contains(t, GenerateThemeObject(th), `description: "Quote \" and backslash \\",`)
}

func TestGenerateReactScaffold(t *testing.T) {
	neon, _ := GetThemeByID("neon")

	withComponent := GenerateReactScaffold(neon, "Button")
	assert.Contains(t, withComponent, "import { ThemeProvider, Button } from 'brutalist-ui';")
	assert.Contains(t, withComponent, "const neonTheme = {")
	assert.Contains(t, withComponent, "<ThemeProvider initialTheme={neonTheme}>")
	assert.Contains(t, withComponent, "<Button>Neon</Button>")

	bare := GenerateReactScaffold(neon, "")
	assert.Contains(t, bare, "import { ThemeProvider } from 'brutalist-ui';")
	assert.Contains(t, bare, "<main />")

	invalid := GenerateReactScaffold(neon, "not a component")
	assert.NotContains(t, invalid, "not a component")
}

func TestGenerateProjectFiles(t *testing.T) {
	neon, _ := GetThemeByID("neon")
	files := GenerateProjectFiles(neon, "Card")

	require.Len(t, files, 3)
	assert.Contains(t, files[ProjectThemeFile], "export const neonTheme: BrutalistTheme = {")
	assert.Contains(t, files[ProjectThemeFile], `accent: "#00FF88",`)
	assert.Contains(t, files[ProjectAppFile], "import neonTheme from './theme';")
	assert.Contains(t, files[ProjectAppFile], "<Demo />")
	assert.Contains(t, files[ProjectComponentFile], "import { Card, useBrutalTheme } from 'brutalist-ui';")

	defaults := GenerateProjectFiles(neon, "")
	assert.Contains(t, defaults[ProjectComponentFile], "<"+DefaultScaffoldComponent+">")
}

func TestThemeIdentifier(t *testing.T) {
	tests := map[string]string{
		"classic":     "classicTheme",
		"random-1700": "random1700Theme",
		"my cool-id":  "myCoolIdTheme",
		"9lives":      "theme9livesTheme",
		"---":         "theme",
	}
	for id, want := range tests {
		assert.Equal(t, want, ThemeIdentifier(Theme{ID: id}), id)
	}
}

func TestValidComponentName(t *testing.T) {
	assert.True(t, ValidComponentName("Button"))
	assert.True(t, ValidComponentName("Card2"))
	assert.False(t, ValidComponentName("button"))
	assert.False(t, ValidComponentName("<script>"))
	assert.False(t, ValidComponentName(""))
}
