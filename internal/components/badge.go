package components

import (
	"github.com/alexisbeaulieu97/brutalist/internal/utility"
)

// BadgeOptions configures a badge.
type BadgeOptions struct {
	Variant   Variant
	Size      Size
	ClassName string
	Style     utility.Style
}

// Badge is a small inline label.
type Badge struct {
	text    string
	options BadgeOptions
}

// NewBadge creates a badge.
func NewBadge(text string, opts BadgeOptions) *Badge {
	return &Badge{text: text, options: opts}
}

func (b *Badge) BaseClasses() []string {
	return []string{"brutal-badge", "brutal-badge--" + b.options.Variant.String()}
}

func (b *Badge) Utilities() string {
	structure := []string{"inline-block", "border", "border-black", "font-bold", "uppercase"}
	return joinClasses(structure, variantColors(b.options.Variant), badgeSize(b.options.Size), []string{b.options.ClassName})
}

// Render resolves the badge through inst and returns its markup.
func (b *Badge) Render(inst *utility.Instance) Rendered {
	return render(inst, "span", b.text, b.Utilities(), b.options.Style, b.BaseClasses())
}

func badgeSize(size Size) []string {
	switch size {
	case SizeSmall:
		return []string{"px-1", "text-xs"}
	case SizeLarge:
		return []string{"px-3", "py-1", "text-base"}
	case SizeMedium:
		return []string{"px-2", "text-sm"}
	default:
		return badgeSize(SizeMedium)
	}
}
