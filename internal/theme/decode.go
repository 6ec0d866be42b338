package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	brutalerrors "github.com/alexisbeaulieu97/brutalist/pkg/errors"
)

// Format is a theme document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// FormatFromPath picks the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// DecodeTheme parses a theme document into a generic record. Only syntax
// problems are reported here; the record still has to pass IsValidTheme,
// which SetTheme applies.
func DecodeTheme(name string, data []byte, format Format) (map[string]any, error) {
	record := map[string]any{}

	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&record); err != nil {
			return nil, brutalerrors.NewParseError(name, jsonErrorLine(data, err), err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &record); err != nil {
			return nil, brutalerrors.NewParseError(name, extractLine(err), err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &record); err != nil {
			line := 0
			var decodeErr *toml.DecodeError
			if errors.As(err, &decodeErr) {
				line, _ = decodeErr.Position()
			}
			return nil, brutalerrors.NewParseError(name, line, err)
		}
	default:
		return nil, brutalerrors.NewParseError(name, 0, fmt.Errorf("unsupported format %q", format))
	}

	if record == nil {
		return nil, brutalerrors.NewParseError(name, 0, errors.New("document is empty"))
	}
	return record, nil
}

// ThemeFromRecord converts a decoded record into a Theme, reporting the first
// structural problem as a ValidationError.
func ThemeFromRecord(record map[string]any) (Theme, error) {
	return themeFromRecord(record)
}

func extractLine(err error) int {
	matches := yamlLinePattern.FindStringSubmatch(err.Error())
	if len(matches) == 2 {
		if line, convErr := strconv.Atoi(matches[1]); convErr == nil {
			return line
		}
	}
	return 0
}

func jsonErrorLine(data []byte, err error) int {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return 0
	}
	offset := int(syntaxErr.Offset)
	if offset > len(data) {
		offset = len(data)
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
