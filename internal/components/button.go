package components

import (
	"github.com/alexisbeaulieu97/brutalist/internal/utility"
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant   Variant
	Size      Size
	Disabled  bool
	FullWidth bool
	// ClassName holds caller utilities and plain classes layered after the defaults.
	ClassName string
	Style     utility.Style
}

// Button represents a clickable button component
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// SimpleButton creates a button with sensible defaults
func SimpleButton(label string) *Button {
	return NewButton(label, ButtonOptions{
		Variant: VariantPrimary,
		Size:    SizeMedium,
	})
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant Variant) *Button {
	b.options.Variant = variant
	return b
}

// WithSize sets the button size
func (b *Button) WithSize(size Size) *Button {
	b.options.Size = size
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFullWidth stretches the button to its container
func (b *Button) WithFullWidth(full bool) *Button {
	b.options.FullWidth = full
	return b
}

// WithClassName appends caller classes
func (b *Button) WithClassName(className string) *Button {
	b.options.ClassName = className
	return b
}

// BaseClasses returns the component's own CSS classes.
func (b *Button) BaseClasses() []string {
	classes := []string{
		"brutal-button",
		"brutal-button--" + b.options.Variant.String(),
		"brutal-button--" + b.options.Size.String(),
	}
	if b.options.Disabled {
		classes = append(classes, "brutal-button--disabled")
	}
	return classes
}

// Utilities returns the utility classes the button resolves, caller classes last.
func (b *Button) Utilities() string {
	structure := []string{"inline-flex", "items-center", "justify-center", "border", "border-black", "font-bold", "uppercase", "shadow-brutal", "transition"}
	interaction := []string{"cursor-pointer", "hover:translate-x-1", "hover:translate-y-1", "hover:shadow-none", "focus-visible:border-accent"}
	if b.options.Disabled {
		interaction = []string{"cursor-not-allowed", "opacity-50"}
	}
	var width []string
	if b.options.FullWidth {
		width = []string{"w-full"}
	}
	return joinClasses(structure, variantColors(b.options.Variant), buttonSize(b.options.Size), interaction, width, []string{b.options.ClassName})
}

// Render resolves the button's classes through inst and returns its markup.
// A nil inst resolves without a style sink.
func (b *Button) Render(inst *utility.Instance) Rendered {
	var attrs []string
	if b.options.Disabled {
		attrs = append(attrs, "disabled")
	}
	return render(inst, "button", b.label, b.Utilities(), b.options.Style, b.BaseClasses(), attrs...)
}

func buttonSize(size Size) []string {
	switch size {
	case SizeSmall:
		return []string{"px-2", "py-1", "text-sm"}
	case SizeLarge:
		return []string{"px-6", "py-3", "text-lg"}
	case SizeMedium:
		return []string{"px-4", "py-2", "text-base"}
	default:
		return buttonSize(SizeMedium)
	}
}
