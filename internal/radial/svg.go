package radial

import (
	"html"
	"strings"
)

// SVG renders the layout as a standalone SVG document. Each wedge is a
// group carrying the item value so a browser consumer can map clicks back
// to navigation targets.
func (g Geometry) SVG(slices []Slice) string {
	size := formatCoord(2 * g.Center)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 ` + size + ` ` + size + `" class="pie-svg">` + "\n")
	for _, s := range slices {
		b.WriteString(`  <g class="pie-slice-group" data-value="` + html.EscapeString(s.Item.Value) + `">` + "\n")
		b.WriteString(`    <path d="` + s.Path + `" class="pie-slice"/>` + "\n")
		b.WriteString(`    <text x="` + formatCoord(s.Label.X) + `" y="` + formatCoord(s.Label.Y) +
			`" class="pie-label" text-anchor="middle" dominant-baseline="middle">` +
			html.EscapeString(s.Item.Text()) + `</text>` + "\n")
		b.WriteString("  </g>\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}
