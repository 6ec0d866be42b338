package theme

// ColorKey identifies one of the sixteen semantic colors every theme defines.
type ColorKey int

const (
	ColorBlack ColorKey = iota
	ColorWhite
	ColorAccent
	ColorAccentDark
	ColorAccentLight
	ColorGray50
	ColorGray100
	ColorGray200
	ColorGray300
	ColorGray500
	ColorGray700
	ColorGray900
	ColorWarning
	ColorSuccess
	ColorError
	ColorInfo

	colorKeyCount
)

// CSSVariablePrefix prefixes every root custom property written for a theme.
const CSSVariablePrefix = "--brutal-"

// ColorKeys returns the sixteen keys in their fixed order.
func ColorKeys() []ColorKey {
	keys := make([]ColorKey, 0, colorKeyCount)
	for key := ColorBlack; key < colorKeyCount; key++ {
		keys = append(keys, key)
	}
	return keys
}

// String returns the key's name in the persisted record ("accentDark").
func (k ColorKey) String() string {
	switch k {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorAccent:
		return "accent"
	case ColorAccentDark:
		return "accentDark"
	case ColorAccentLight:
		return "accentLight"
	case ColorGray50:
		return "gray50"
	case ColorGray100:
		return "gray100"
	case ColorGray200:
		return "gray200"
	case ColorGray300:
		return "gray300"
	case ColorGray500:
		return "gray500"
	case ColorGray700:
		return "gray700"
	case ColorGray900:
		return "gray900"
	case ColorWarning:
		return "warning"
	case ColorSuccess:
		return "success"
	case ColorError:
		return "error"
	case ColorInfo:
		return "info"
	default:
		return ""
	}
}

// CSSVariable returns the root custom property name, e.g. "--brutal-accent-dark".
func (k ColorKey) CSSVariable() string {
	switch k {
	case ColorAccentDark:
		return CSSVariablePrefix + "accent-dark"
	case ColorAccentLight:
		return CSSVariablePrefix + "accent-light"
	case ColorGray50:
		return CSSVariablePrefix + "gray-50"
	case ColorGray100:
		return CSSVariablePrefix + "gray-100"
	case ColorGray200:
		return CSSVariablePrefix + "gray-200"
	case ColorGray300:
		return CSSVariablePrefix + "gray-300"
	case ColorGray500:
		return CSSVariablePrefix + "gray-500"
	case ColorGray700:
		return CSSVariablePrefix + "gray-700"
	case ColorGray900:
		return CSSVariablePrefix + "gray-900"
	default:
		if name := k.String(); name != "" {
			return CSSVariablePrefix + name
		}
		return ""
	}
}

// Colors is the fixed-shape palette of a theme.
type Colors struct {
	Black       string `json:"black" yaml:"black" toml:"black" validate:"color"`
	White       string `json:"white" yaml:"white" toml:"white" validate:"color"`
	Accent      string `json:"accent" yaml:"accent" toml:"accent" validate:"color"`
	AccentDark  string `json:"accentDark" yaml:"accentDark" toml:"accentDark" validate:"color"`
	AccentLight string `json:"accentLight" yaml:"accentLight" toml:"accentLight" validate:"color"`
	Gray50      string `json:"gray50" yaml:"gray50" toml:"gray50" validate:"color"`
	Gray100     string `json:"gray100" yaml:"gray100" toml:"gray100" validate:"color"`
	Gray200     string `json:"gray200" yaml:"gray200" toml:"gray200" validate:"color"`
	Gray300     string `json:"gray300" yaml:"gray300" toml:"gray300" validate:"color"`
	Gray500     string `json:"gray500" yaml:"gray500" toml:"gray500" validate:"color"`
	Gray700     string `json:"gray700" yaml:"gray700" toml:"gray700" validate:"color"`
	Gray900     string `json:"gray900" yaml:"gray900" toml:"gray900" validate:"color"`
	Warning     string `json:"warning" yaml:"warning" toml:"warning" validate:"color"`
	Success     string `json:"success" yaml:"success" toml:"success" validate:"color"`
	Error       string `json:"error" yaml:"error" toml:"error" validate:"color"`
	Info        string `json:"info" yaml:"info" toml:"info" validate:"color"`
}

// Get returns the value stored under key.
func (c Colors) Get(key ColorKey) string {
	if field := c.field(key); field != nil {
		return *field
	}
	return ""
}

// With returns a copy of c with key set to value.
func (c Colors) With(key ColorKey, value string) Colors {
	if field := c.field(key); field != nil {
		*field = value
	}
	return c
}

func (c *Colors) field(key ColorKey) *string {
	switch key {
	case ColorBlack:
		return &c.Black
	case ColorWhite:
		return &c.White
	case ColorAccent:
		return &c.Accent
	case ColorAccentDark:
		return &c.AccentDark
	case ColorAccentLight:
		return &c.AccentLight
	case ColorGray50:
		return &c.Gray50
	case ColorGray100:
		return &c.Gray100
	case ColorGray200:
		return &c.Gray200
	case ColorGray300:
		return &c.Gray300
	case ColorGray500:
		return &c.Gray500
	case ColorGray700:
		return &c.Gray700
	case ColorGray900:
		return &c.Gray900
	case ColorWarning:
		return &c.Warning
	case ColorSuccess:
		return &c.Success
	case ColorError:
		return &c.Error
	case ColorInfo:
		return &c.Info
	default:
		return nil
	}
}
