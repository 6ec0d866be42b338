package theme

// DefaultThemeID is the theme used when nothing else resolves.
const DefaultThemeID = "classic"

var builtinThemes = []Theme{
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "Black ink on white paper with a hazard-yellow accent",
		Colors: Colors{
			Black: "#000000", White: "#FFFFFF",
			Accent: "#FFE500", AccentDark: "#C7B300", AccentLight: "#FFF38A",
			Gray50: "#FAFAFA", Gray100: "#F4F4F5", Gray200: "#E4E4E7", Gray300: "#D4D4D8",
			Gray500: "#71717A", Gray700: "#3F3F46", Gray900: "#18181B",
			Warning: "#FF9500", Success: "#00C853", Error: "#FF1744", Info: "#2979FF",
		},
	},
	{
		ID:          "neon",
		Name:        "Neon",
		Description: "Electric green on near-black",
		Colors: Colors{
			Black: "#0A0A0A", White: "#F5F5F5",
			Accent: "#00FF88", AccentDark: "#00CC6A", AccentLight: "#7DFFC0",
			Gray50: "#1A1A1A", Gray100: "#222222", Gray200: "#2E2E2E", Gray300: "#3D3D3D",
			Gray500: "#6B6B6B", Gray700: "#A3A3A3", Gray900: "#E5E5E5",
			Warning: "#FFEA00", Success: "#00FF88", Error: "#FF0055", Info: "#00E5FF",
		},
	},
	{
		ID:          "ocean",
		Name:        "Ocean",
		Description: "Deep navy outlines with a bright cyan accent",
		Colors: Colors{
			Black: "#0B1D33", White: "#F0F8FF",
			Accent: "#00B4D8", AccentDark: "#0077B6", AccentLight: "#90E0EF",
			Gray50: "#F5FAFD", Gray100: "#E6F1F8", Gray200: "#CFE2EE", Gray300: "#B0CCDD",
			Gray500: "#5E7F95", Gray700: "#2F4A5E", Gray900: "#102233",
			Warning: "#F4A261", Success: "#2A9D8F", Error: "#E63946", Info: "#48CAE4",
		},
	},
	{
		ID:          "sunset",
		Name:        "Sunset",
		Description: "Warm orange and magenta on cream",
		Colors: Colors{
			Black: "#2B0F0E", White: "#FFF8F0",
			Accent: "#FF5F1F", AccentDark: "#C43D0B", AccentLight: "#FFA27A",
			Gray50: "#FFF4EA", Gray100: "#FBE7D6", Gray200: "#F2CFB3", Gray300: "#E4B08E",
			Gray500: "#A06B4F", Gray700: "#5C3323", Gray900: "#2E1710",
			Warning: "#FFB703", Success: "#6A994E", Error: "#D00000", Info: "#B5179E",
		},
	},
	{
		ID:          "forest",
		Name:        "Forest",
		Description: "Moss green on raw linen",
		Colors: Colors{
			Black: "#1B2414", White: "#F7F5EC",
			Accent: "#4F7942", AccentDark: "#2F4A27", AccentLight: "#A3C293",
			Gray50: "#F4F2E8", Gray100: "#E9E6D6", Gray200: "#D6D1BA", Gray300: "#BDB698",
			Gray500: "#7D765A", Gray700: "#4A4533", Gray900: "#23201A",
			Warning: "#E9C46A", Success: "#52B788", Error: "#BC4749", Info: "#457B9D",
		},
	},
	{
		ID:          "midnight",
		Name:        "Midnight",
		Description: "Violet accent on a dark slate page",
		Colors: Colors{
			Black: "#050510", White: "#E6E6FA",
			Accent: "#8B5CF6", AccentDark: "#6D28D9", AccentLight: "#C4B5FD",
			Gray50: "#111127", Gray100: "#1A1A35", Gray200: "#26264A", Gray300: "#35355F",
			Gray500: "#6B6B9A", Gray700: "#A5A5C8", Gray900: "#E0E0F0",
			Warning: "#FBBF24", Success: "#34D399", Error: "#F87171", Info: "#60A5FA",
		},
	},
	{
		ID:          "candy",
		Name:        "Candy",
		Description: "Bubblegum pink with loud primaries",
		Colors: Colors{
			Black: "#1F1235", White: "#FFFFFF",
			Accent: "#FF4FA3", AccentDark: "#D1207A", AccentLight: "#FFA6D1",
			Gray50: "#FFF5FB", Gray100: "#FFE8F4", Gray200: "#FBD0E6", Gray300: "#F1B3D3",
			Gray500: "#A26C8C", Gray700: "#5E3A55", Gray900: "#2B1A2A",
			Warning: "#FFD23F", Success: "#3BCEAC", Error: "#EE4266", Info: "#540D6E",
		},
	},
	{
		ID:          "monochrome",
		Name:        "Monochrome",
		Description: "Pure grayscale, no accent hue",
		Colors: Colors{
			Black: "#000000", White: "#FFFFFF",
			Accent: "#404040", AccentDark: "#1F1F1F", AccentLight: "#808080",
			Gray50: "#FAFAFA", Gray100: "#F0F0F0", Gray200: "#E0E0E0", Gray300: "#C8C8C8",
			Gray500: "#8A8A8A", Gray700: "#4D4D4D", Gray900: "#1A1A1A",
			Warning: "#B3B3B3", Success: "#666666", Error: "#000000", Info: "#999999",
		},
	},
}

// BuiltinThemes returns the built-in registry in declaration order.
func BuiltinThemes() []Theme {
	out := make([]Theme, len(builtinThemes))
	copy(out, builtinThemes)
	return out
}

// GetThemeByID returns the first built-in theme whose ID matches.
func GetThemeByID(id string) (Theme, bool) {
	for _, t := range builtinThemes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// DefaultTheme returns the built-in default.
func DefaultTheme() Theme {
	t, _ := GetThemeByID(DefaultThemeID)
	return t
}
