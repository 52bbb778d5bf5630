package host

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/tilestead"
)

// CameraRig moves a camera from the keyboard and mouse: WASD or arrows pan,
// the wheel zooms about the cursor, a middle-button drag grabs the view and
// Home scrolls back to where the camera started. B toggles clamping the view
// to the map.
type CameraRig struct {
	cfg  tilestead.CameraConfig
	home tilestead.Vec2

	// clamp is the padded map rectangle; nil when there is no map.
	clamp *tilestead.Rect

	grabbing     bool
	grabX, grabY int
}

// NewCameraRig returns a rig whose Home position is the camera's current
// position. It applies the configured zoom limits and, when mapBounds is
// non-nil and ClampToMap is set, clamps the view to the padded map.
func NewCameraRig(cfg tilestead.CameraConfig, cam *tilestead.Camera, mapBounds *tilestead.Rect) *CameraRig {
	cam.SetZoomLimits(cfg.MinZoom, cfg.MaxZoom)
	r := &CameraRig{cfg: cfg, home: tilestead.Vec2{X: cam.X, Y: cam.Y}}
	if mapBounds != nil {
		padded := mapBounds.Pad(cfg.BoundsPadding)
		r.clamp = &padded
		r.setClamped(cam, cfg.ClampToMap)
	}
	return r
}

// setClamped turns map clamping on or off. It is a no-op without a map.
func (r *CameraRig) setClamped(cam *tilestead.Camera, on bool) {
	switch {
	case r.clamp == nil:
	case on:
		cam.SetBounds(*r.clamp)
	default:
		cam.ClearBounds()
	}
}

// Update applies one tick of input to cam. dt is the tick length in seconds.
func (r *CameraRig) Update(cam *tilestead.Camera, dt float64) {
	d := panDelta(
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		r.cfg.PanSpeed, dt,
	)
	cam.Pan(d.X, d.Y)

	mx, my := ebiten.CursorPosition()
	if _, wy := ebiten.Wheel(); wy != 0 {
		cam.ZoomAt(float64(mx), float64(my), zoomFactor(r.cfg.ZoomStep, wy))
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		r.grabbing = true
		r.grabX, r.grabY = mx, my
	case r.grabbing && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		cam.Pan(float64(mx-r.grabX), float64(my-r.grabY))
		r.grabX, r.grabY = mx, my
	default:
		r.grabbing = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		r.setClamped(cam, !cam.BoundsEnabled)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		cam.ScrollTo(r.home.X, r.home.Y, r.cfg.ScrollDuration, ease.OutCubic)
	}
}

// panDelta converts held direction keys into a screen-space pan. The view
// content moves opposite to the key so the camera travels toward it.
func panDelta(left, right, up, down bool, speed, dt float64) tilestead.Vec2 {
	var dx, dy float64
	if left {
		dx++
	}
	if right {
		dx--
	}
	if up {
		dy++
	}
	if down {
		dy--
	}
	if dx != 0 && dy != 0 {
		dx *= math.Sqrt2 / 2
		dy *= math.Sqrt2 / 2
	}
	return tilestead.Vec2{X: dx * speed * dt, Y: dy * speed * dt}
}

// zoomFactor turns wheel notches into a multiplicative zoom. Positive
// notches zoom in.
func zoomFactor(step, notches float64) float64 {
	if step <= 0 {
		return 1
	}
	return math.Pow(step, notches)
}
