package components

import "strings"

// Variant represents a component color variant.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantSuccess
	VariantWarning
	VariantError
	VariantInfo
	VariantGhost
)

var variantNames = [...]string{
	VariantPrimary:   "primary",
	VariantSecondary: "secondary",
	VariantSuccess:   "success",
	VariantWarning:   "warning",
	VariantError:     "error",
	VariantInfo:      "info",
	VariantGhost:     "ghost",
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range variantNames {
		out[i] = Variant(i)
	}
	return out
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "unknown"
	}
	return variantNames[v]
}

// ParseVariant maps a variant name to its value.
func ParseVariant(name string) (Variant, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range variantNames {
		if n == name {
			return Variant(i), true
		}
	}
	return VariantPrimary, false
}

// Size represents a component size.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "sm"
	case SizeMedium:
		return "md"
	case SizeLarge:
		return "lg"
	default:
		return "unknown"
	}
}

// ParseSize maps "sm", "md" or "lg" to a size.
func ParseSize(name string) (Size, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sm", "small":
		return SizeSmall, true
	case "md", "medium":
		return SizeMedium, true
	case "lg", "large":
		return SizeLarge, true
	default:
		return SizeMedium, false
	}
}

// variantColors returns the background and foreground utilities for a variant.
func variantColors(variant Variant) []string {
	switch variant {
	case VariantPrimary:
		return []string{"bg-accent", "text-black", "hover:bg-accent-dark"}
	case VariantSecondary:
		return []string{"bg-white", "text-black", "hover:bg-gray-100"}
	case VariantSuccess:
		return []string{"bg-success", "text-black"}
	case VariantWarning:
		return []string{"bg-warning", "text-black"}
	case VariantError:
		return []string{"bg-error", "text-white"}
	case VariantInfo:
		return []string{"bg-info", "text-white"}
	case VariantGhost:
		return []string{"bg-transparent", "text-black", "hover:bg-gray-50"}
	default:
		return variantColors(VariantPrimary)
	}
}
