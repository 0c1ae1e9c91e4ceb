package radial

import (
	"math"
	"strings"
	"testing"
)

const eps = 1e-9

func items(values ...string) []Item {
	out := make([]Item, len(values))
	for i, v := range values {
		out[i] = Item{Value: v, Label: strings.ToUpper(v)}
	}
	return out
}

func TestLayout_EmptyYieldsNoSlices(t *testing.T) {
	if got := Layout(nil); len(got) != 0 {
		t.Fatalf("Layout(nil) returned %d slices, want 0", len(got))
	}
	if got := Layout([]Item{}); len(got) != 0 {
		t.Fatalf("Layout(empty) returned %d slices, want 0", len(got))
	}
}

func TestLayout_SlicesTileTheCircle(t *testing.T) {
	for n := 1; n <= 12; n++ {
		values := make([]string, n)
		for i := range values {
			values[i] = string(rune('a' + i))
		}
		slices := Layout(items(values...))
		if len(slices) != n {
			t.Fatalf("n=%d: got %d slices", n, len(slices))
		}
		if math.Abs(slices[0].StartAngle+math.Pi/2) > eps {
			t.Fatalf("n=%d: first start = %v, want -π/2", n, slices[0].StartAngle)
		}
		if math.Abs(slices[n-1].EndAngle-3*math.Pi/2) > eps {
			t.Fatalf("n=%d: last end = %v, want 3π/2", n, slices[n-1].EndAngle)
		}
		total := 0.0
		for i, s := range slices {
			if s.Index != i {
				t.Fatalf("n=%d: slice %d has Index %d", n, i, s.Index)
			}
			total += s.Span()
			if i+1 < n && s.EndAngle != slices[i+1].StartAngle {
				t.Fatalf("n=%d: slice %d ends at %v but next starts at %v", n, i, s.EndAngle, slices[i+1].StartAngle)
			}
		}
		if math.Abs(total-2*math.Pi) > eps {
			t.Fatalf("n=%d: spans sum to %v, want 2π", n, total)
		}
	}
}

func TestLayout_LargeArcOnlyForSingleItem(t *testing.T) {
	if s := Layout(items("only")); !s[0].LargeArc {
		t.Fatalf("n=1: LargeArc = false, want true")
	}
	for n := 2; n <= 8; n++ {
		values := make([]string, n)
		for i := range values {
			values[i] = string(rune('a' + i))
		}
		for _, s := range Layout(items(values...)) {
			if s.LargeArc {
				t.Fatalf("n=%d: slice %d LargeArc = true, want false", n, s.Index)
			}
			if !strings.Contains(s.Path, " 0 0,1 ") {
				t.Fatalf("n=%d: path %q missing small clockwise arc flags", n, s.Path)
			}
		}
	}
}

func TestLayout_LabelsSitInsideTheirWedge(t *testing.T) {
	g := DefaultGeometry
	for n := 1; n <= 9; n++ {
		values := make([]string, n)
		for i := range values {
			values[i] = string(rune('a' + i))
		}
		for _, s := range g.Layout(items(values...)) {
			dist := math.Hypot(s.Label.X-g.Center, s.Label.Y-g.Center)
			if math.Abs(dist-0.6*g.Radius) > 1e-6 {
				t.Fatalf("n=%d slice %d: label distance %v, want %v", n, s.Index, dist, 0.6*g.Radius)
			}
			if dist >= g.Radius {
				t.Fatalf("n=%d slice %d: label on or outside rim", n, s.Index)
			}
			idx, ok := g.HitTest(g.Layout(items(values...)), s.Label)
			if !ok || idx != s.Index {
				t.Fatalf("n=%d slice %d: label hit slice %d (ok=%v)", n, s.Index, idx, ok)
			}
		}
	}
}

func TestLayout_FourItemsQuarterTurns(t *testing.T) {
	slices := Layout(items("status", "network", "moto", "settings"))
	want := [][2]float64{
		{-math.Pi / 2, 0},
		{0, math.Pi / 2},
		{math.Pi / 2, math.Pi},
		{math.Pi, 3 * math.Pi / 2},
	}
	for i, s := range slices {
		if math.Abs(s.StartAngle-want[i][0]) > eps || math.Abs(s.EndAngle-want[i][1]) > eps {
			t.Fatalf("slice %d spans [%v, %v), want [%v, %v)", i, s.StartAngle, s.EndAngle, want[i][0], want[i][1])
		}
		if s.LargeArc {
			t.Fatalf("slice %d LargeArc = true, want false", i)
		}
	}
	if got, want := slices[0].Path, "M50,50 L50,2 A48,48 0 0,1 98,50 Z"; got != want {
		t.Fatalf("slice 0 path = %q, want %q", got, want)
	}
	if got, want := slices[1].Path, "M50,50 L98,50 A48,48 0 0,1 50,98 Z"; got != want {
		t.Fatalf("slice 1 path = %q, want %q", got, want)
	}
}

func TestLayout_SingleItemPathIsDrawable(t *testing.T) {
	s := Layout(items("only"))[0]
	want := "M50,50 L50,2 A48,48 0 1,1 50,98 A48,48 0 1,1 50,2 Z"
	if s.Path != want {
		t.Fatalf("path = %q, want %q", s.Path, want)
	}
}

func TestLayout_PreservesItems(t *testing.T) {
	in := []Item{{Value: "a", Label: "A", Icon: "*"}, {Value: "b", Label: "B"}}
	slices := Layout(in)
	for i, s := range slices {
		if s.Item != in[i] {
			t.Fatalf("slice %d item = %#v, want %#v", i, s.Item, in[i])
		}
	}
}

func TestHitTest(t *testing.T) {
	g := DefaultGeometry
	slices := g.Layout(items("status", "network", "moto", "settings"))

	cases := []struct {
		name string
		p    Point
		want string
		ok   bool
	}{
		{"top right", Point{X: 60, Y: 20}, "status", true},
		{"bottom right", Point{X: 70, Y: 80}, "network", true},
		{"bottom left", Point{X: 30, Y: 80}, "moto", true},
		{"top left", Point{X: 30, Y: 20}, "settings", true},
		{"straight left", Point{X: 10, Y: 50}, "settings", true},
		{"outside", Point{X: 1, Y: 1}, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.Select(slices, tc.p)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Select(%v) = %q, %v; want %q, %v", tc.p, got, ok, tc.want, tc.ok)
			}
		})
	}

	if _, ok := g.HitTest(nil, Point{X: 50, Y: 50}); ok {
		t.Fatalf("HitTest on empty layout reported a hit")
	}
}

func TestRasterize(t *testing.T) {
	g := DefaultGeometry
	slices := g.Layout(items("a", "b", "c", "d"))
	grid := g.Rasterize(slices, 40, 20)

	if grid.At(0, 0) != -1 {
		t.Fatalf("corner cell = %d, want -1", grid.At(0, 0))
	}
	if got := grid.At(30, 4); got != 0 {
		t.Fatalf("upper right cell = %d, want 0", got)
	}
	if got := grid.At(9, 15); got != 2 {
		t.Fatalf("lower left cell = %d, want 2", got)
	}
	if grid.At(-1, 0) != -1 || grid.At(40, 0) != -1 {
		t.Fatalf("out-of-range cells should be -1")
	}

	col, row := grid.Cell(slices[1].Label)
	if grid.At(col, row) != 1 {
		t.Fatalf("label cell for slice 1 holds %d", grid.At(col, row))
	}
}

func TestItemText(t *testing.T) {
	cases := []struct {
		item Item
		kind IconKind
		text string
	}{
		{Item{Value: "s", Label: "Status", Icon: "★"}, IconGlyph, "★"},
		{Item{Value: "s", Label: "Status", Icon: "/icons/s.png"}, IconImage, "Status"},
		{Item{Value: "s", Label: "Status", Icon: "https://x/s.png"}, IconImage, "Status"},
		{Item{Value: "s", Label: "Status"}, IconNone, "Status"},
		{Item{Value: "s"}, IconNone, "s"},
	}
	for _, tc := range cases {
		if got := tc.item.IconKind(); got != tc.kind {
			t.Fatalf("IconKind(%#v) = %v, want %v", tc.item, got, tc.kind)
		}
		if got := tc.item.Text(); got != tc.text {
			t.Fatalf("Text(%#v) = %q, want %q", tc.item, got, tc.text)
		}
	}
}

func TestSVG(t *testing.T) {
	g := DefaultGeometry
	out := g.SVG(g.Layout([]Item{{Value: "a&b", Label: "A"}, {Value: "c", Label: "C"}}))
	if !strings.Contains(out, `viewBox="0 0 100 100"`) {
		t.Fatalf("SVG missing viewBox: %s", out)
	}
	if !strings.Contains(out, `data-value="a&amp;b"`) {
		t.Fatalf("SVG did not escape value: %s", out)
	}
	if strings.Count(out, "<path ") != 2 {
		t.Fatalf("SVG path count = %d, want 2", strings.Count(out, "<path "))
	}
}
