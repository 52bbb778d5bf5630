package tilestead

import "math"

// Color represents an RGBA color. Components are usually in [0, 1] but may
// exceed 1 to brighten a tinted sprite (the hover tint does).
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the neutral tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Mul returns the component-wise product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Pad returns r grown by d on every side.
func (r Rect) Pad(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// BoundingRect returns the smallest rectangle containing every point.
func BoundingRect(pts ...Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return Rect{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// SurfaceID identifies a render target (a window or an offscreen image).
// Pointers and cameras are matched by surface.
type SurfaceID uint32

// PrimarySurface is the main window.
const PrimarySurface SurfaceID = 0

// PointerID identifies a pointer. Pointer 0 is the mouse.
type PointerID int

// MousePointer is the pointer id used for the mouse.
const MousePointer PointerID = 0

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// InteractionState is the per-entity result of pointer resolution.
type InteractionState uint8

const (
	InteractionNone    InteractionState = iota // not under any pointer
	InteractionHovered                         // topmost hit under a pointer
	InteractionPressed                         // hovered while the primary button is held
)

func (s InteractionState) String() string {
	switch s {
	case InteractionHovered:
		return "hovered"
	case InteractionPressed:
		return "pressed"
	default:
		return "none"
	}
}
