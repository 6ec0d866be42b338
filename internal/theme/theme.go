package theme

// Theme is an immutable named palette. Changing a theme means building a new value.
type Theme struct {
	ID          string `json:"id" yaml:"id" toml:"id" validate:"required"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Colors      Colors `json:"colors" yaml:"colors" toml:"colors"`
}

// Equal reports value equality.
func (t Theme) Equal(other Theme) bool {
	return t == other
}

// CSSVariables lists the root custom properties for t in key order.
func (t Theme) CSSVariables() []Variable {
	vars := make([]Variable, 0, colorKeyCount)
	for _, key := range ColorKeys() {
		vars = append(vars, Variable{Key: key, Name: key.CSSVariable(), Value: t.Colors.Get(key)})
	}
	return vars
}

// Variable is one root custom property derived from a theme.
type Variable struct {
	Key   ColorKey
	Name  string
	Value string
}
