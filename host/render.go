package host

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/tilestead"
)

// maxBatchVertices keeps index values within uint16.
const maxBatchVertices = 65532

// tilePalette colors tiles by texture index until real textures are loaded.
var tilePalette = []tilestead.Color{
	tilestead.RGB(0.36, 0.55, 0.30),
	tilestead.RGB(0.42, 0.60, 0.33),
	tilestead.RGB(0.52, 0.46, 0.32),
	tilestead.RGB(0.31, 0.50, 0.46),
}

var tilemapQuery = donburi.NewQuery(filter.Contains(tilestead.TilemapComponent, tilestead.TransformComponent))

// Renderer draws tiles and buildings as flat colored quads through one
// camera, batching them into DrawTriangles calls.
type Renderer struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
	op       ebiten.DrawTrianglesOptions
}

// NewRenderer allocates the 1x1 source image quads are filled from.
func NewRenderer() *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Renderer{
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw renders the scene's world through cam.
func (r *Renderer) Draw(screen *ebiten.Image, s *tilestead.Scene, cam *tilestead.Camera) {
	w := s.World()
	view := cam.VisibleBounds()
	tilemapQuery.Each(w, func(e *donburi.Entry) {
		if !visible(e) {
			return
		}
		r.drawTilemap(screen, w, e, cam, view)
	})

	// Buildings draw in ascending Z so the highest sits on top.
	for _, b := range sortedByZ(w, s.Buildings()) {
		bounds, ok := s.BuildingBounds(b)
		if !ok || !bounds.Intersects(view) {
			continue
		}
		entry := w.Entry(b)
		if !visible(entry) {
			continue
		}
		sp := tilestead.SpriteComponent.Get(entry)
		corners := [4]tilestead.Vec2{
			{X: bounds.X, Y: bounds.Y},
			{X: bounds.X + bounds.Width, Y: bounds.Y},
			{X: bounds.X + bounds.Width, Y: bounds.Y + bounds.Height},
			{X: bounds.X, Y: bounds.Y + bounds.Height},
		}
		for i := range corners {
			corners[i] = cam.WorldToScreen(corners[i])
		}
		r.appendQuad(screen, corners, sp.Base.Mul(sp.Color))
	}
	r.flush(screen)
}

// drawTilemap draws the tiles of one tilemap whose world box meets view.
func (r *Renderer) drawTilemap(screen *ebiten.Image, w donburi.World, e *donburi.Entry, cam *tilestead.Camera, view tilestead.Rect) {
	tm := tilestead.TilemapComponent.Get(e)
	tr := tilestead.TransformComponent.Get(e)
	if !tm.Layout.WorldBounds(*tr).Intersects(view) {
		return
	}
	m := tr.Matrix()
	size := tm.Storage.Size()
	half := tm.Layout.TileSize.Scale(0.5)

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			te, ok := tm.Storage.Get(tilestead.CellCoord{X: x, Y: y})
			if !ok || !w.Valid(te) {
				continue
			}
			tile := tilestead.TileComponent.Get(w.Entry(te))
			if !tile.Visible {
				continue
			}
			c := tm.Layout.CellCenterLocal(tile.Pos)
			var corners [4]tilestead.Vec2
			if tm.Layout.Type == tilestead.GridDiamond {
				corners = [4]tilestead.Vec2{
					{X: c.X, Y: c.Y - half.Y},
					{X: c.X + half.X, Y: c.Y},
					{X: c.X, Y: c.Y + half.Y},
					{X: c.X - half.X, Y: c.Y},
				}
			} else {
				corners = [4]tilestead.Vec2{
					{X: c.X - half.X, Y: c.Y - half.Y},
					{X: c.X + half.X, Y: c.Y - half.Y},
					{X: c.X + half.X, Y: c.Y + half.Y},
					{X: c.X - half.X, Y: c.Y + half.Y},
				}
			}
			for i := range corners {
				corners[i] = tilestead.LocalToWorld(m, corners[i])
			}
			if !tilestead.BoundingRect(corners[:]...).Intersects(view) {
				continue
			}
			for i := range corners {
				corners[i] = cam.WorldToScreen(corners[i])
			}
			base := tilePalette[int(tile.TextureIndex)%len(tilePalette)]
			r.appendQuad(screen, corners, base.Mul(tile.Color))
		}
	}
}

// appendQuad adds a filled quad with corners in winding order.
func (r *Renderer) appendQuad(screen *ebiten.Image, corners [4]tilestead.Vec2, c tilestead.Color) {
	if len(r.vertices)+4 > maxBatchVertices {
		r.flush(screen)
	}
	base := uint16(len(r.vertices))
	cr, cg, cb, ca := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	for _, p := range corners {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	r.indices = append(r.indices, base, base+1, base+2, base, base+2, base+3)
}

func (r *Renderer) flush(screen *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, r.white, &r.op)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

// drawHUD prints the hovered entity and camera state in the bottom-left
// corner.
func drawHUD(screen *ebiten.Image, s *tilestead.Scene, cam *tilestead.Camera, screenH int) {
	line := fmt.Sprintf("fps %.0f  tick %d  zoom %.2f  camera (%.0f,%.0f)",
		ebiten.ActualFPS(), s.Tick(), cam.Zoom, cam.X, cam.Y)
	if p, ok := s.CursorWorld(); ok {
		line += fmt.Sprintf("  cursor (%.0f,%.0f)", p.X, p.Y)
	}
	if h, ok := s.Tracker().Hovered(tilestead.MousePointer); ok {
		line += "  hover " + s.Describe(h.Entity)
	}
	if n := s.Drag().Count(); n > 0 {
		line += fmt.Sprintf("  dragging %d", n)
	}
	ebitenutil.DebugPrintAt(screen, line, 4, screenH-16)
}

func visible(e *donburi.Entry) bool {
	return !e.HasComponent(tilestead.VisibilityComponent) || tilestead.VisibilityComponent.Get(e).Visible
}

// sortedByZ orders buildings by ascending Z, keeping iteration order on
// ties.
func sortedByZ(w donburi.World, buildings []donburi.Entity) []donburi.Entity {
	sort.SliceStable(buildings, func(i, j int) bool {
		zi := tilestead.TransformComponent.Get(w.Entry(buildings[i])).Z
		zj := tilestead.TransformComponent.Get(w.Entry(buildings[j])).Z
		return zi < zj
	})
	return buildings
}
