package radial

import (
	"math"
	"strconv"
	"strings"
)

// Geometry fixes the coordinate space a menu is laid out in.
type Geometry struct {
	Center float64 // x and y of the menu center
	Radius float64
}

// DefaultGeometry is a 100x100 viewport with a radius of 48, leaving a thin
// margin around the circle.
var DefaultGeometry = Geometry{Center: 50, Radius: 48}

// labelInset pulls labels toward the center so they sit inside the wedge.
const labelInset = 0.6

// Point is a position in the geometry's coordinate space.
type Point struct {
	X float64
	Y float64
}

// Slice is one drawable wedge of the menu.
type Slice struct {
	Index      int
	Item       Item
	StartAngle float64 // radians, 0 points right, positive is clockwise on screen
	EndAngle   float64
	Start      Point // boundary point at StartAngle
	End        Point // boundary point at EndAngle
	LargeArc   bool
	Path       string // SVG path data for the closed wedge
	Label      Point
}

// Span returns the angular width of the slice.
func (s Slice) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// Layout arranges items with DefaultGeometry.
func Layout(items []Item) []Slice {
	return DefaultGeometry.Layout(items)
}

// Layout converts an ordered item list into wedges. The first wedge starts
// at 12 o'clock and the wedges proceed clockwise, tiling the whole circle.
// An empty list yields no slices.
func (g Geometry) Layout(items []Item) []Slice {
	n := len(items)
	if n == 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)

	slices := make([]Slice, n)
	for i, item := range items {
		// Both ends derive from the index so neighbouring wedges share the
		// exact same boundary angle.
		start := float64(i)*step - math.Pi/2
		end := float64(i+1)*step - math.Pi/2
		s := Slice{
			Index:      i,
			Item:       item,
			StartAngle: start,
			EndAngle:   end,
			Start:      g.pointAt(start, g.Radius),
			End:        g.pointAt(end, g.Radius),
			LargeArc:   step > math.Pi,
			Label:      g.pointAt(float64(i)*step+step/2-math.Pi/2, g.Radius*labelInset),
		}
		s.Path = g.wedgePath(s)
		slices[i] = s
	}
	return slices
}

func (g Geometry) pointAt(angle, r float64) Point {
	return Point{
		X: g.Center + r*math.Cos(angle),
		Y: g.Center + r*math.Sin(angle),
	}
}

// wedgePath renders the slice outline as SVG path data: center, line to the
// start boundary, clockwise arc to the end boundary, close.
func (g Geometry) wedgePath(s Slice) string {
	var b strings.Builder
	r := formatCoord(g.Radius)
	arcTo := func(large bool, p Point) {
		flag := "0"
		if large {
			flag = "1"
		}
		b.WriteString(" A" + r + "," + r + " 0 " + flag + ",1 " + formatPoint(p))
	}

	b.WriteString("M" + formatPoint(Point{X: g.Center, Y: g.Center}))
	b.WriteString(" L" + formatPoint(s.Start))
	if s.Index == 0 && s.Span() >= 2*math.Pi-1e-9 {
		// A single arc whose endpoints coincide draws nothing, so the full
		// circle goes through the opposite point.
		arcTo(true, g.pointAt(s.StartAngle+math.Pi, g.Radius))
	}
	arcTo(s.LargeArc, s.End)
	b.WriteString(" Z")
	return b.String()
}

func formatPoint(p Point) string {
	return formatCoord(p.X) + "," + formatCoord(p.Y)
}

func formatCoord(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
