package radial

import "strings"

// Item is one navigation entry. Order in the menu is significant.
type Item struct {
	Value string // unique key reported on selection
	Label string
	Icon  string // glyph, image reference, or empty
}

// IconKind describes how an item's icon should be presented.
type IconKind int

const (
	IconNone IconKind = iota
	IconGlyph
	IconImage
)

// IconKind classifies the icon: paths and URLs are images, anything else
// non-empty is a glyph drawn as text.
func (it Item) IconKind() IconKind {
	icon := strings.TrimSpace(it.Icon)
	switch {
	case icon == "":
		return IconNone
	case strings.HasPrefix(icon, "/"), strings.HasPrefix(icon, "http"):
		return IconImage
	default:
		return IconGlyph
	}
}

// Text returns what a text-only surface should draw for the item. Images
// cannot be drawn there, so they fall back to the label like a missing icon.
func (it Item) Text() string {
	if it.IconKind() == IconGlyph {
		return strings.TrimSpace(it.Icon)
	}
	if it.Label != "" {
		return it.Label
	}
	return it.Value
}
