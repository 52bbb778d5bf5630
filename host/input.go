package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tilestead"
)

// Input reports the Ebitengine mouse as the scene's mouse pointer on the
// primary surface.
type Input struct {
	// Blocked hides the cursor from the scene while it returns true for the
	// cursor position, so clicks on the menu panel never reach the world.
	Blocked func(x, y int) bool

	width, height int
}

// NewInput returns an Input for a window of the given logical size.
func NewInput(width, height int) *Input {
	return &Input{width: width, height: height}
}

// Pointers implements tilestead.InputSource.
func (in *Input) Pointers() []tilestead.Pointer {
	mx, my := ebiten.CursorPosition()
	p := tilestead.Pointer{ID: tilestead.MousePointer}
	p.Pressed[tilestead.MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.Pressed[tilestead.MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	p.Pressed[tilestead.MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if in.located(mx, my) {
		p.Location = &tilestead.Location{
			Position: tilestead.Vec2{X: float64(mx), Y: float64(my)},
			Target:   tilestead.PrimarySurface,
		}
	}
	return []tilestead.Pointer{p}
}

// located reports whether the cursor at (x, y) belongs to the world view.
func (in *Input) located(x, y int) bool {
	if x < 0 || y < 0 || x >= in.width || y >= in.height {
		return false
	}
	if in.Blocked != nil && in.Blocked(x, y) {
		return false
	}
	return true
}
