// Package radial lays out a pie menu.
//
// Layout turns an ordered list of items into wedges that tile the circle,
// starting at 12 o'clock and running clockwise. Each slice carries its angle
// range, SVG path data and a label point at 60% of the radius along the
// wedge bisector. The layout is a pure function of its input: selection is
// reported through HitTest/Select and never stored.
//
// Rasterize samples a layout onto a character grid so the same geometry can
// be drawn in a terminal, and SVG renders it for a browser.
package radial
