package components

import (
	"html"
	"strings"

	"github.com/alexisbeaulieu97/brutalist/internal/utility"
)

// Rendered is the output of a component render.
type Rendered struct {
	ClassName string
	Style     utility.Style
	CSS       string
	HTML      string
}

// render resolves utilities through inst (or statically when inst is nil)
// and wraps label in tag.
func render(inst *utility.Instance, tag, label, className string, style utility.Style, base []string, attrs ...string) Rendered {
	var res utility.Result
	if inst != nil {
		res = inst.Resolve(className, style, base...)
	} else {
		res = utility.Resolve(utility.Input{ClassName: className, Style: style, BaseClasses: base})
	}

	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	if res.ClassName != "" {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(res.ClassName))
		b.WriteString(`"`)
	}
	if inline := res.Style.String(); inline != "" {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(inline))
		b.WriteString(`"`)
	}
	for _, attr := range attrs {
		b.WriteString(" ")
		b.WriteString(attr)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(label))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")

	return Rendered{
		ClassName: res.ClassName,
		Style:     res.Style,
		CSS:       res.CSS,
		HTML:      b.String(),
	}
}

func joinClasses(groups ...[]string) string {
	var parts []string
	for _, g := range groups {
		for _, c := range g {
			if c = strings.TrimSpace(c); c != "" {
				parts = append(parts, c)
			}
		}
	}
	return strings.Join(parts, " ")
}
