package entity

// HiddenOffset is where hidden panes are parked, well outside the window.
const HiddenOffset = -1000.0

// PlaceholderSize is the size given to freshly created panes before the first layout pass.
const PlaceholderSize = 100.0

// Point is a position in logical window coordinates.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in logical window coordinates.
type Size struct {
	W, H float64
}

// Rect is a pane's position and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rect dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Area returns W*H, zero for degenerate rects.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Intersects reports whether two rects overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// ComputeQuadrants lays out the four content panes in a 2x2 grid to the right
// of the sidebar. Content width is clamped at zero when the sidebar is wider
// than the window, so panes never get a negative size.
func ComputeQuadrants(window Size, sidebarWidth float64) [4]Rect {
	height := max(window.H, 0)
	contentWidth := max(window.W-sidebarWidth, 0)

	halfW := contentWidth / 2
	halfH := height / 2

	return [4]Rect{
		{X: sidebarWidth, Y: 0, W: halfW, H: halfH},
		{X: sidebarWidth + halfW, Y: 0, W: halfW, H: halfH},
		{X: sidebarWidth, Y: halfH, W: halfW, H: halfH},
		{X: sidebarWidth + halfW, Y: halfH, W: halfW, H: halfH},
	}
}

// QuadrantRect returns the rect for a single quadrant role.
func QuadrantRect(role PaneRole, window Size, sidebarWidth float64) (Rect, bool) {
	idx, ok := role.QuadrantIndex()
	if !ok {
		return Rect{}, false
	}
	return ComputeQuadrants(window, sidebarWidth)[idx], true
}

// HiddenRect parks a pane off-screen with zero size.
func HiddenRect() Rect {
	return Rect{X: HiddenOffset, Y: HiddenOffset}
}

// PlaceholderRect is the initial geometry of a new visible pane.
func PlaceholderRect() Rect {
	return Rect{W: PlaceholderSize, H: PlaceholderSize}
}

// FullRect covers the whole window.
func FullRect(window Size) Rect {
	return Rect{W: window.W, H: window.H}
}

// SidebarRect is the control pane column along the left edge.
func SidebarRect(window Size, sidebarWidth float64) Rect {
	return Rect{W: sidebarWidth, H: window.H}
}
