package tilestead

import (
	"fmt"
	"math"
	"strings"
)

// CellCoord addresses one cell of a tilemap.
type CellCoord struct {
	X, Y int
}

// MapSize is the size of a tilemap in cells.
type MapSize struct {
	W, H int
}

// Count returns the number of cells.
func (s MapSize) Count() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}

// Contains reports whether c lies inside the map.
func (s MapSize) Contains(c CellCoord) bool {
	return c.X >= 0 && c.X < s.W && c.Y >= 0 && c.Y < s.H
}

// GridType selects how cell coordinates map to local positions.
type GridType uint8

const (
	GridSquare  GridType = iota // axis-aligned square/rectangular cells
	GridDiamond                 // isometric diamond cells
)

// ParseGridType maps a config name to a GridType.
func ParseGridType(name string) (GridType, error) {
	switch strings.ToLower(name) {
	case "", "square":
		return GridSquare, nil
	case "diamond", "iso", "isometric":
		return GridDiamond, nil
	}
	return GridSquare, fmt.Errorf("unknown grid type %q", name)
}

// Anchor selects which point of the map's bounding box sits at the tilemap's
// local origin. World Y grows downward, so "top" is the minimum Y.
type Anchor uint8

const (
	AnchorNone Anchor = iota // cell (0,0) is centered on the origin
	AnchorCenter
	AnchorTopLeft
	AnchorTopCenter
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

var anchorNames = map[string]Anchor{
	"none":         AnchorNone,
	"center":       AnchorCenter,
	"topleft":      AnchorTopLeft,
	"topcenter":    AnchorTopCenter,
	"topright":     AnchorTopRight,
	"centerleft":   AnchorCenterLeft,
	"centerright":  AnchorCenterRight,
	"bottomleft":   AnchorBottomLeft,
	"bottomcenter": AnchorBottomCenter,
	"bottomright":  AnchorBottomRight,
}

// ParseAnchor maps a config name such as "center" or "top-left" to an Anchor.
func ParseAnchor(name string) (Anchor, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	if key == "" {
		return AnchorNone, nil
	}
	a, ok := anchorNames[key]
	if !ok {
		return AnchorNone, fmt.Errorf("unknown anchor %q", name)
	}
	return a, nil
}

// GridLayout describes the geometry of a tilemap in its local space.
type GridLayout struct {
	Size     MapSize
	GridSize Vec2 // distance between neighboring cell centers
	TileSize Vec2 // size of one tile's image
	Type     GridType
	Anchor   Anchor
}

// rawCenter returns a cell center before the anchor offset is applied.
func (g GridLayout) rawCenter(x, y float64) Vec2 {
	switch g.Type {
	case GridDiamond:
		return Vec2{0.5 * g.GridSize.X * (x + y), 0.5 * g.GridSize.Y * (y - x)}
	default:
		return Vec2{x * g.GridSize.X, y * g.GridSize.Y}
	}
}

// bounds returns the unanchored local bounding box of every tile.
func (g GridLayout) bounds() (lo, hi Vec2) {
	mx := float64(max(g.Size.W-1, 0))
	my := float64(max(g.Size.H-1, 0))
	corners := [4]Vec2{
		g.rawCenter(0, 0),
		g.rawCenter(mx, 0),
		g.rawCenter(0, my),
		g.rawCenter(mx, my),
	}
	lo, hi = corners[0], corners[0]
	for _, c := range corners[1:] {
		lo.X = math.Min(lo.X, c.X)
		lo.Y = math.Min(lo.Y, c.Y)
		hi.X = math.Max(hi.X, c.X)
		hi.Y = math.Max(hi.Y, c.Y)
	}
	half := g.TileSize.Scale(0.5)
	return lo.Sub(half), hi.Add(half)
}

// AnchorOffset returns the translation applied to every cell center so that
// the anchor point lands on the local origin.
func (g GridLayout) AnchorOffset() Vec2 {
	if g.Anchor == AnchorNone {
		return Vec2{}
	}
	lo, hi := g.bounds()
	mid := lo.Add(hi).Scale(0.5)
	var p Vec2
	switch g.Anchor {
	case AnchorCenter:
		p = mid
	case AnchorTopLeft:
		p = Vec2{lo.X, lo.Y}
	case AnchorTopCenter:
		p = Vec2{mid.X, lo.Y}
	case AnchorTopRight:
		p = Vec2{hi.X, lo.Y}
	case AnchorCenterLeft:
		p = Vec2{lo.X, mid.Y}
	case AnchorCenterRight:
		p = Vec2{hi.X, mid.Y}
	case AnchorBottomLeft:
		p = Vec2{lo.X, hi.Y}
	case AnchorBottomCenter:
		p = Vec2{mid.X, hi.Y}
	case AnchorBottomRight:
		p = Vec2{hi.X, hi.Y}
	}
	return p.Scale(-1)
}

// CellCenterLocal returns the center of cell c in the tilemap's local space.
func (g GridLayout) CellCenterLocal(c CellCoord) Vec2 {
	return g.rawCenter(float64(c.X), float64(c.Y)).Add(g.AnchorOffset())
}

// LocalToCell returns the cell containing a local-space position. ok is
// false when the position is outside the grid or the grid is degenerate.
func (g GridLayout) LocalToCell(local Vec2) (c CellCoord, ok bool) {
	if g.GridSize.X == 0 || g.GridSize.Y == 0 {
		return CellCoord{}, false
	}
	p := local.Sub(g.AnchorOffset())
	u := p.X / g.GridSize.X
	v := p.Y / g.GridSize.Y

	var fx, fy float64
	switch g.Type {
	case GridDiamond:
		fx, fy = u-v, u+v
	default:
		fx, fy = u, v
	}
	c = CellCoord{int(math.Floor(fx + 0.5)), int(math.Floor(fy + 0.5))}
	if math.IsNaN(fx) || math.IsNaN(fy) || !g.Size.Contains(c) {
		return CellCoord{}, false
	}
	return c, true
}

// WorldToLocal maps a world position into the space described by the affine
// matrix m (a tilemap's world transform) using its inverse.
func WorldToLocal(m [6]float64, p Vec2) (Vec2, error) {
	inv, ok := invertAffine(m)
	if !ok {
		return Vec2{}, ErrSingularTransform
	}
	x, y := transformPoint(inv, p.X, p.Y)
	return Vec2{x, y}, nil
}

// LocalToWorld maps a local position through the affine matrix m.
func LocalToWorld(m [6]float64, p Vec2) Vec2 {
	x, y := transformPoint(m, p.X, p.Y)
	return Vec2{x, y}
}

// WorldToCell chains WorldToLocal and LocalToCell for a tilemap at world
// transform t.
func (g GridLayout) WorldToCell(t Transform, world Vec2) (CellCoord, bool) {
	local, err := WorldToLocal(t.Matrix(), world)
	if err != nil {
		return CellCoord{}, false
	}
	return g.LocalToCell(local)
}

// CellToWorldCenter returns the world-space center of cell c for a tilemap
// at world transform t.
func (g GridLayout) CellToWorldCenter(t Transform, c CellCoord) Vec2 {
	return LocalToWorld(t.Matrix(), g.CellCenterLocal(c))
}

// WorldBounds returns the world-space box covering every tile of a tilemap
// at world transform t.
func (g GridLayout) WorldBounds(t Transform) Rect {
	lo, hi := g.bounds()
	off := g.AnchorOffset()
	lo, hi = lo.Add(off), hi.Add(off)
	m := t.Matrix()
	return BoundingRect(
		LocalToWorld(m, lo),
		LocalToWorld(m, Vec2{hi.X, lo.Y}),
		LocalToWorld(m, hi),
		LocalToWorld(m, Vec2{lo.X, hi.Y}),
	)
}

// Snap moves a world position to the center of the cell containing it. ok is
// false, and p is returned unchanged, when p is outside the grid.
func (g GridLayout) Snap(t Transform, p Vec2) (Vec2, bool) {
	c, ok := g.WorldToCell(t, p)
	if !ok {
		return p, false
	}
	return g.CellToWorldCenter(t, c), true
}
