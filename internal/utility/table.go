package utility

import (
	"strconv"
	"strings"
)

// Declaration is a single CSS property/value pair. Property names are camelCase.
type Declaration struct {
	Property string
	Value    string
}

// Declarations keeps the order in which a utility emits its properties.
type Declarations []Declaration

// Style collapses the declarations into an inline style map. Later entries win.
func (d Declarations) Style() Style {
	style := make(Style, len(d))
	for _, decl := range d {
		style[decl.Property] = decl.Value
	}
	return style
}

func decl(property, value string) Declarations {
	return Declarations{{Property: property, Value: value}}
}

func pair(first, second, value string) Declarations {
	return Declarations{{Property: first, Value: value}, {Property: second, Value: value}}
}

var staticUtilities = map[string]Declarations{
	"block":        decl("display", "block"),
	"inline":       decl("display", "inline"),
	"inline-block": decl("display", "inline-block"),
	"flex":         decl("display", "flex"),
	"inline-flex":  decl("display", "inline-flex"),
	"grid":         decl("display", "grid"),
	"hidden":       decl("display", "none"),

	"flex-row":  decl("flexDirection", "row"),
	"flex-col":  decl("flexDirection", "column"),
	"flex-wrap": decl("flexWrap", "wrap"),
	"flex-1":    decl("flex", "1 1 0%"),

	"items-start":     decl("alignItems", "flex-start"),
	"items-center":    decl("alignItems", "center"),
	"items-end":       decl("alignItems", "flex-end"),
	"items-stretch":   decl("alignItems", "stretch"),
	"justify-start":   decl("justifyContent", "flex-start"),
	"justify-center":  decl("justifyContent", "center"),
	"justify-end":     decl("justifyContent", "flex-end"),
	"justify-between": decl("justifyContent", "space-between"),

	"static":   decl("position", "static"),
	"relative": decl("position", "relative"),
	"absolute": decl("position", "absolute"),
	"fixed":    decl("position", "fixed"),
	"sticky":   decl("position", "sticky"),

	"text-left":    decl("textAlign", "left"),
	"text-center":  decl("textAlign", "center"),
	"text-right":   decl("textAlign", "right"),
	"uppercase":    decl("textTransform", "uppercase"),
	"lowercase":    decl("textTransform", "lowercase"),
	"italic":       decl("fontStyle", "italic"),
	"underline":    decl("textDecoration", "underline"),
	"no-underline": decl("textDecoration", "none"),

	"border": {
		{Property: "borderWidth", Value: "3px"},
		{Property: "borderStyle", Value: "solid"},
	},
	"border-solid":  decl("borderStyle", "solid"),
	"border-dashed": decl("borderStyle", "dashed"),

	"shadow": decl("boxShadow", "4px 4px 0 var(--brutal-black)"),

	"cursor-pointer":      decl("cursor", "pointer"),
	"cursor-not-allowed":  decl("cursor", "not-allowed"),
	"select-none":         decl("userSelect", "none"),
	"pointer-events-none": decl("pointerEvents", "none"),
	"overflow-hidden":     decl("overflow", "hidden"),
	"overflow-auto":       decl("overflow", "auto"),
	"transition":          decl("transition", "all 150ms ease"),
	"transition-none":     decl("transition", "none"),
}

type valueParser func(value string) (Declarations, bool)

// prefixUtilities are matched against the longest prefix ending at a dash.
var prefixUtilities = map[string]valueParser{
	"p":  spacing("padding"),
	"px": spacingPair("paddingLeft", "paddingRight"),
	"py": spacingPair("paddingTop", "paddingBottom"),
	"pt": spacing("paddingTop"),
	"pr": spacing("paddingRight"),
	"pb": spacing("paddingBottom"),
	"pl": spacing("paddingLeft"),
	"m":  spacing("margin"),
	"mx": spacingPair("marginLeft", "marginRight"),
	"my": spacingPair("marginTop", "marginBottom"),
	"mt": spacing("marginTop"),
	"mr": spacing("marginRight"),
	"mb": spacing("marginBottom"),
	"ml": spacing("marginLeft"),

	"gap":   spacing("gap"),
	"gap-x": spacing("columnGap"),
	"gap-y": spacing("rowGap"),

	"w": sizing("width", "100vw"),
	"h": sizing("height", "100vh"),

	"bg":     themeColor("backgroundColor"),
	"text":   textValue,
	"border": borderValue,

	"shadow":  shadowValue,
	"rounded": roundedValue,
	"font":    fontValue,
	"opacity": percentage("opacity"),
	"z":       integer("zIndex"),

	"translate-x": translate("translateX"),
	"translate-y": translate("translateY"),
	"rotate":      rotate,
	"scale":       scale,
}

// ParseUtilityClass resolves a bare utility token to its CSS declarations.
// The boolean is false for tokens that are not utilities.
func ParseUtilityClass(token string) (Declarations, bool) {
	if token == "" {
		return nil, false
	}
	if decls, ok := staticUtilities[token]; ok {
		return append(Declarations(nil), decls...), true
	}

	negative := false
	name := token
	if strings.HasPrefix(name, "-") {
		negative = true
		name = name[1:]
	}

	for idx := strings.LastIndex(name, "-"); idx > 0; idx = strings.LastIndex(name[:idx], "-") {
		prefix, value := name[:idx], name[idx+1:]
		parse, ok := prefixUtilities[prefix]
		if !ok || value == "" {
			continue
		}
		if negative {
			if !acceptsNegative(prefix) {
				return nil, false
			}
			value = "-" + value
		}
		return parse(value)
	}
	return nil, false
}

func acceptsNegative(prefix string) bool {
	switch prefix {
	case "translate-x", "translate-y", "rotate", "m", "mx", "my", "mt", "mr", "mb", "ml":
		return true
	default:
		return false
	}
}

// spacingValue maps the quarter-rem scale: 4 → 1rem, 0.5 → 0.125rem, px → 1px.
func spacingValue(raw string) (string, bool) {
	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}
	switch raw {
	case "0":
		return "0", true
	case "px":
		return sign + "1px", true
	case "auto":
		if sign != "" {
			return "", false
		}
		return "auto", true
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || n < 0 || n*2 != float64(int(n*2)) {
		return "", false
	}
	return sign + formatNumber(n*0.25) + "rem", true
}

func spacing(property string) valueParser {
	return func(value string) (Declarations, bool) {
		v, ok := spacingValue(value)
		if !ok {
			return nil, false
		}
		return decl(property, v), true
	}
}

func spacingPair(first, second string) valueParser {
	return func(value string) (Declarations, bool) {
		v, ok := spacingValue(value)
		if !ok {
			return nil, false
		}
		return pair(first, second, v), true
	}
}

func sizing(property, screen string) valueParser {
	return func(value string) (Declarations, bool) {
		switch value {
		case "full":
			return decl(property, "100%"), true
		case "screen":
			return decl(property, screen), true
		case "auto", "fit-content", "min-content", "max-content":
			return decl(property, value), true
		}
		if num, den, ok := strings.Cut(value, "/"); ok {
			n, errN := strconv.Atoi(num)
			d, errD := strconv.Atoi(den)
			if errN != nil || errD != nil || d == 0 || n < 0 || n > d {
				return nil, false
			}
			return decl(property, formatNumber(float64(n)*100/float64(d))+"%"), true
		}
		v, ok := spacingValue(value)
		if !ok {
			return nil, false
		}
		return decl(property, v), true
	}
}

// themeColors are the palette names exposed as --brutal-* custom properties.
var themeColors = map[string]struct{}{
	"black": {}, "white": {},
	"accent": {}, "accent-dark": {}, "accent-light": {},
	"gray-50": {}, "gray-100": {}, "gray-200": {}, "gray-300": {},
	"gray-500": {}, "gray-700": {}, "gray-900": {},
	"warning": {}, "success": {}, "error": {}, "info": {},
}

func colorValue(name string) (string, bool) {
	switch name {
	case "transparent":
		return "transparent", true
	case "current":
		return "currentColor", true
	}
	if _, ok := themeColors[name]; !ok {
		return "", false
	}
	return "var(--brutal-" + name + ")", true
}

func themeColor(property string) valueParser {
	return func(value string) (Declarations, bool) {
		v, ok := colorValue(value)
		if !ok {
			return nil, false
		}
		return decl(property, v), true
	}
}

var fontSizes = map[string][2]string{
	"xs":   {"0.75rem", "1rem"},
	"sm":   {"0.875rem", "1.25rem"},
	"base": {"1rem", "1.5rem"},
	"lg":   {"1.125rem", "1.75rem"},
	"xl":   {"1.25rem", "1.75rem"},
	"2xl":  {"1.5rem", "2rem"},
	"3xl":  {"1.875rem", "2.25rem"},
	"4xl":  {"2.25rem", "2.5rem"},
}

func textValue(value string) (Declarations, bool) {
	if size, ok := fontSizes[value]; ok {
		return Declarations{
			{Property: "fontSize", Value: size[0]},
			{Property: "lineHeight", Value: size[1]},
		}, true
	}
	return themeColor("color")(value)
}

func borderValue(value string) (Declarations, bool) {
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 {
			return nil, false
		}
		return Declarations{
			{Property: "borderWidth", Value: strconv.Itoa(n) + "px"},
			{Property: "borderStyle", Value: "solid"},
		}, true
	}
	return themeColor("borderColor")(value)
}

var shadows = map[string]string{
	"none":   "none",
	"sm":     "2px 2px 0 var(--brutal-black)",
	"md":     "4px 4px 0 var(--brutal-black)",
	"lg":     "6px 6px 0 var(--brutal-black)",
	"xl":     "8px 8px 0 var(--brutal-black)",
	"brutal": "8px 8px 0 var(--brutal-accent)",
}

func shadowValue(value string) (Declarations, bool) {
	v, ok := shadows[value]
	if !ok {
		return nil, false
	}
	return decl("boxShadow", v), true
}

var radii = map[string]string{
	"none": "0",
	"sm":   "2px",
	"md":   "6px",
	"lg":   "8px",
	"full": "9999px",
}

func roundedValue(value string) (Declarations, bool) {
	v, ok := radii[value]
	if !ok {
		return nil, false
	}
	return decl("borderRadius", v), true
}

var fontWeights = map[string]string{
	"thin":      "100",
	"light":     "300",
	"normal":    "400",
	"medium":    "500",
	"semibold":  "600",
	"bold":      "700",
	"extrabold": "800",
	"black":     "900",
}

func fontValue(value string) (Declarations, bool) {
	if weight, ok := fontWeights[value]; ok {
		return decl("fontWeight", weight), true
	}
	switch value {
	case "mono":
		return decl("fontFamily", "ui-monospace, SFMono-Regular, Menlo, monospace"), true
	case "sans":
		return decl("fontFamily", "ui-sans-serif, system-ui, sans-serif"), true
	}
	return nil, false
}

func percentage(property string) valueParser {
	return func(value string) (Declarations, bool) {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 100 {
			return nil, false
		}
		return decl(property, formatNumber(float64(n)/100)), true
	}
}

func integer(property string) valueParser {
	return func(value string) (Declarations, bool) {
		if value == "auto" {
			return decl(property, "auto"), true
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, false
		}
		return decl(property, strconv.Itoa(n)), true
	}
}

func translate(function string) valueParser {
	return func(value string) (Declarations, bool) {
		v, ok := spacingValue(value)
		if !ok || v == "auto" {
			return nil, false
		}
		return decl("transform", function+"("+v+")"), true
	}
}

func rotate(value string) (Declarations, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, false
	}
	return decl("transform", "rotate("+strconv.Itoa(n)+"deg)"), true
}

func scale(value string) (Declarations, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return nil, false
	}
	return decl("transform", "scale("+formatNumber(float64(n)/100)+")"), true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
