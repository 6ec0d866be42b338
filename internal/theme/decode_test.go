package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	brutalerrors "github.com/alexisbeaulieu97/brutalist/pkg/errors"
)

const yamlTheme = `id: paper
name: Paper
description: Off-white stock
colors:
  black: "#111111"
  white: "#FDFDF8"
  accent: "#E4572E"
  accentDark: "#A93F20"
  accentLight: "#F29E86"
  gray50: "#FAFAF5"
  gray100: "#F1F1EA"
  gray200: "#E2E2D8"
  gray300: "#CFCFC2"
  gray500: "#8A8A7C"
  gray700: "#4F4F45"
  gray900: "#20201C"
  warning: "#F3A712"
  success: "#29BF12"
  error: "#D1495B"
  info: "#00798C"
`

const tomlTheme = `id = "paper"
name = "Paper"
description = "Off-white stock"

[colors]
black = "#111111"
white = "#FDFDF8"
accent = "#E4572E"
accentDark = "#A93F20"
accentLight = "#F29E86"
gray50 = "#FAFAF5"
gray100 = "#F1F1EA"
gray200 = "#E2E2D8"
gray300 = "#CFCFC2"
gray500 = "#8A8A7C"
gray700 = "#4F4F45"
gray900 = "#20201C"
warning = "#F3A712"
success = "#29BF12"
error = "#D1495B"
info = "#00798C"
`

func TestDecodeThemeFormats(t *testing.T) {
	fromYAML, err := DecodeTheme("paper.yaml", []byte(yamlTheme), FormatYAML)
	require.NoError(t, err)
	fromTOML, err := DecodeTheme("paper.toml", []byte(tomlTheme), FormatTOML)
	require.NoError(t, err)

	yamlParsed, err := ThemeFromRecord(fromYAML)
	require.NoError(t, err)
	tomlParsed, err := ThemeFromRecord(fromTOML)
	require.NoError(t, err)
	assert.Equal(t, yamlParsed, tomlParsed)
	assert.Equal(t, "#E4572E", yamlParsed.Colors.Accent)

	data, err := json.Marshal(yamlParsed)
	require.NoError(t, err)
	fromJSON, err := DecodeTheme("paper.json", data, FormatJSON)
	require.NoError(t, err)
	assert.True(t, IsValidTheme(fromJSON))
}

func TestDecodeThemeReportsSyntaxLine(t *testing.T) {
	_, err := DecodeTheme("bad.yaml", []byte("id: x\ncolors: [\n"), FormatYAML)
	var parseErr *brutalerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "bad.yaml", parseErr.Path)
	assert.Positive(t, parseErr.Line)

	_, err = DecodeTheme("bad.json", []byte("{\n\"id\": \"x\",\n}"), FormatJSON)
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)

	_, err = DecodeTheme("bad.toml", []byte("id = \"x\"\nname = \n"), FormatTOML)
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)

	_, err = DecodeTheme("x", []byte("null"), FormatJSON)
	require.ErrorAs(t, err, &parseErr)

	_, err = DecodeTheme("x", []byte("{}"), Format("xml"))
	require.ErrorAs(t, err, &parseErr)
}

func TestDecodeThemeLeavesStructuralChecksToValidation(t *testing.T) {
	record, err := DecodeTheme("partial.yaml", []byte("id: partial\nname: Partial\n"), FormatYAML)
	require.NoError(t, err)
	assert.False(t, IsValidTheme(record))

	_, err = ThemeFromRecord(record)
	var validationErr *brutalerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "description", validationErr.Field)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.YML"))
	assert.Equal(t, FormatYAML, FormatFromPath("theme.yaml"))
	assert.Equal(t, FormatTOML, FormatFromPath("theme.toml"))
	assert.Equal(t, FormatJSON, FormatFromPath("theme.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("theme"))
}
