package radial

import "math"

// HitTest reports which slice contains p. Points outside the circle, or on
// an empty layout, hit nothing.
func (g Geometry) HitTest(slices []Slice, p Point) (int, bool) {
	n := len(slices)
	if n == 0 {
		return -1, false
	}
	dx := p.X - g.Center
	dy := p.Y - g.Center
	if math.Hypot(dx, dy) > g.Radius {
		return -1, false
	}

	// Normalize into [-π/2, 3π/2), the range the slices partition.
	angle := math.Atan2(dy, dx)
	if angle < -math.Pi/2 {
		angle += 2 * math.Pi
	}
	step := 2 * math.Pi / float64(n)
	idx := int((angle + math.Pi/2) / step)
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx, true
}

// Select returns the value of the item whose wedge contains p.
func (g Geometry) Select(slices []Slice, p Point) (string, bool) {
	idx, ok := g.HitTest(slices, p)
	if !ok {
		return "", false
	}
	return slices[idx].Item.Value, true
}
