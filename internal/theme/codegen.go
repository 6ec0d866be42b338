package theme

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"text/template"
	"unicode"
)

// Project file names produced by GenerateProjectFiles.
const (
	ProjectThemeFile     = "theme.ts"
	ProjectAppFile       = "App.tsx"
	ProjectComponentFile = "component.tsx"
)

// DefaultScaffoldComponent is used by the project scaffold when no component is named.
const DefaultScaffoldComponent = "Button"

const packageName = "brutalist-ui"

var componentNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// ValidComponentName reports whether name can be used as a JSX element.
func ValidComponentName(name string) bool {
	return componentNamePattern.MatchString(name)
}

var (
	reactTemplate = template.Must(template.New("react").Parse(`import React from 'react';
import { ThemeProvider{{if .Component}}, {{.Component}}{{end}} } from '{{.Package}}';

const {{.Identifier}} = {{.Literal}};

export default function App() {
  return (
    <ThemeProvider initialTheme={ {{- .Identifier -}} }>
      {{if .Component}}<{{.Component}}>{{.Name}}</{{.Component}}>{{else}}<main />{{end}}
    </ThemeProvider>
  );
}
`))

	themeFileTemplate = template.Must(template.New(ProjectThemeFile).Parse(`import type { BrutalistTheme } from '{{.Package}}';

export const {{.Identifier}}: BrutalistTheme = {{.Literal}};

export default {{.Identifier}};
`))

	appFileTemplate = template.Must(template.New(ProjectAppFile).Parse(`import React from 'react';
import { ThemeProvider } from '{{.Package}}';
import {{.Identifier}} from './theme';
import Demo from './component';

export default function App() {
  return (
    <ThemeProvider initialTheme={ {{- .Identifier -}} }>
      <Demo />
    </ThemeProvider>
  );
}
`))

	componentFileTemplate = template.Must(template.New(ProjectComponentFile).Parse(`import React from 'react';
import { {{.Component}}, useBrutalTheme } from '{{.Package}}';

export default function Demo() {
  const { theme } = useBrutalTheme();
  return <{{.Component}}>{theme.name}</{{.Component}}>;
}
`))
)

type scaffoldData struct {
	Package    string
	Identifier string
	Literal    string
	Name       string
	Component  string
}

func newScaffoldData(t Theme, component string) scaffoldData {
	if !ValidComponentName(component) {
		component = ""
	}
	return scaffoldData{
		Package:    packageName,
		Identifier: ThemeIdentifier(t),
		Literal:    objectLiteral(t, ""),
		Name:       t.Name,
		Component:  component,
	}
}

// GenerateCSSVariables renders the theme as a :root block, one property per
// line, in fixed key order.
func GenerateCSSVariables(t Theme) string {
	lines := make([]string, 0, colorKeyCount+2)
	lines = append(lines, ":root {")
	for _, v := range t.CSSVariables() {
		lines = append(lines, "  "+v.Name+": "+v.Value+";")
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// GenerateThemeObject renders the theme as an exported TypeScript constant.
func GenerateThemeObject(t Theme) string {
	return "export const " + ThemeIdentifier(t) + " = " + objectLiteral(t, "") + ";\n"
}

// GenerateReactScaffold renders a provider-wrapped App component embedding
// the theme. component is rendered inside the provider when it is a valid
// JSX element name.
func GenerateReactScaffold(t Theme, component string) string {
	return render(reactTemplate, newScaffoldData(t, component))
}

// GenerateProjectFiles renders a three-file starter project keyed by relative
// file name.
func GenerateProjectFiles(t Theme, component string) map[string]string {
	data := newScaffoldData(t, component)
	if data.Component == "" {
		data.Component = DefaultScaffoldComponent
	}
	return map[string]string{
		ProjectThemeFile:     render(themeFileTemplate, data),
		ProjectAppFile:       render(appFileTemplate, data),
		ProjectComponentFile: render(componentFileTemplate, data),
	}
}

// ThemeIdentifier derives a JavaScript identifier such as "neonTheme".
func ThemeIdentifier(t Theme) string {
	var b strings.Builder
	upperNext := false
	for _, r := range t.ID {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if b.Len() == 0 {
				if unicode.IsDigit(r) {
					b.WriteString("theme")
					upperNext = false
				}
				b.WriteRune(unicode.ToLower(r))
				continue
			}
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}
			b.WriteRune(r)
		default:
			upperNext = b.Len() > 0
		}
	}
	if b.Len() == 0 {
		return "theme"
	}
	return b.String() + "Theme"
}

func objectLiteral(t Theme, indent string) string {
	var b strings.Builder
	inner := indent + "  "
	b.WriteString("{\n")
	writeField(&b, inner, "id", t.ID)
	writeField(&b, inner, "name", t.Name)
	writeField(&b, inner, "description", t.Description)
	b.WriteString(inner + "colors: {\n")
	for _, key := range ColorKeys() {
		writeField(&b, inner+"  ", key.String(), t.Colors.Get(key))
	}
	b.WriteString(inner + "},\n")
	b.WriteString(indent + "}")
	return b.String()
}

func writeField(b *strings.Builder, indent, key, value string) {
	b.WriteString(indent)
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(quote(value))
	b.WriteString(",\n")
}

func quote(value string) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return `""`
	}
	return string(encoded)
}

func render(tmpl *template.Template, data scaffoldData) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return buf.String()
}
