package host

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/tilestead"
)

const (
	menuPad     = 8
	menuWidth   = 200
	menuTitleH  = 20
	menuRowH    = 28
	menuButtonW = 56
)

var (
	menuBackground = color.NRGBA{R: 24, G: 24, B: 32, A: 220}
	menuButton     = color.NRGBA{R: 60, G: 90, B: 120, A: 255}
	menuButtonHot  = color.NRGBA{R: 90, G: 130, B: 170, A: 255}
	menuBorder     = color.NRGBA{R: 110, G: 110, B: 140, A: 255}
	menuText       = color.White
)

// Menu is the debug spawn panel: one row per building kind with a Spawn
// button that queues a placement request.
type Menu struct {
	X, Y    int
	Visible bool

	kinds []string
}

// NewMenu lists kinds in order at the top-left corner of the window.
func NewMenu(kinds []tilestead.BuildingKind) *Menu {
	m := &Menu{X: menuPad, Y: menuPad, Visible: true}
	for _, k := range kinds {
		m.kinds = append(m.kinds, k.Name)
	}
	return m
}

// Bounds returns the panel rectangle in screen pixels.
func (m *Menu) Bounds() image.Rectangle {
	h := menuTitleH + len(m.kinds)*menuRowH + menuPad
	return image.Rect(m.X, m.Y, m.X+menuWidth, m.Y+h)
}

// Contains reports whether the screen point (x, y) is over the visible panel.
func (m *Menu) Contains(x, y int) bool {
	return m.Visible && image.Pt(x, y).In(m.Bounds())
}

// button returns the Spawn button rectangle of row i.
func (m *Menu) button(i int) image.Rectangle {
	x0 := m.X + menuWidth - menuPad - menuButtonW
	y0 := m.Y + menuTitleH + i*menuRowH + 2
	return image.Rect(x0, y0, x0+menuButtonW, y0+menuRowH-4)
}

// buttonAt returns the row whose Spawn button is under (x, y).
func (m *Menu) buttonAt(x, y int) (int, bool) {
	if !m.Contains(x, y) {
		return 0, false
	}
	p := image.Pt(x, y)
	for i := range m.kinds {
		if p.In(m.button(i)) {
			return i, true
		}
	}
	return 0, false
}

// Update handles a click on a Spawn button.
func (m *Menu) Update(s *tilestead.Scene) {
	if !m.Visible || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if i, ok := m.buttonAt(ebiten.CursorPosition()); ok {
		s.RequestSpawn(m.kinds[i])
	}
}

// Draw renders the panel.
func (m *Menu) Draw(screen *ebiten.Image) {
	if !m.Visible {
		return
	}
	b := m.Bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), menuBackground, false)
	vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 1, menuBorder, false)
	text.Draw(screen, "Buildings", basicfont.Face7x13, m.X+menuPad, m.Y+14, menuText)

	hot, hasHot := m.buttonAt(ebiten.CursorPosition())
	for i, name := range m.kinds {
		rowY := m.Y + menuTitleH + i*menuRowH
		text.Draw(screen, name, basicfont.Face7x13, m.X+menuPad, rowY+18, menuText)

		btn := m.button(i)
		fill := menuButton
		if hasHot && hot == i {
			fill = menuButtonHot
		}
		vector.DrawFilledRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), fill, false)
		text.Draw(screen, "Spawn", basicfont.Face7x13, btn.Min.X+10, btn.Min.Y+16, menuText)
	}
}
