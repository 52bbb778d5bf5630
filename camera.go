package tilestead

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the world: position, zoom, rotation, and the
// screen rectangle it renders into. Cameras are stored as entities; see
// Scene.NewCamera.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// Active cameras take part in picking and rendering.
	Active bool
	// Order ranks cameras sharing a surface; higher renders on top.
	Order int
	// Target is the surface this camera renders to.
	Target SurfaceID

	// MinZoom and MaxZoom clamp Zoom in ZoomAt. Zero disables the limit.
	MinZoom, MaxZoom float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	invOK         bool
	dirty         bool
	lastState     [4]float64
	lastViewport  Rect

	scrollTween *scrollAnim
}

// NewCamera creates an active Camera on the primary surface with the given
// viewport.
func NewCamera(viewport Rect) Camera {
	return Camera{
		Zoom:     1.0,
		Viewport: viewport,
		Active:   true,
		Target:   PrimarySurface,
		dirty:    true,
	}
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.X, c.Y = x, y
		c.scrollTween = nil
		c.dirty = true
		return
	}
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Pan moves the camera by a screen-space delta, so that content follows the
// cursor at any zoom. A pan cancels any running scroll animation.
func (c *Camera) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	z := c.Zoom
	if z == 0 {
		z = 1
	}
	sin, cos := math.Sincos(c.Rotation)
	wx := (dx*cos - dy*sin) / z
	wy := (dx*sin + dy*cos) / z
	c.X -= wx
	c.Y -= wy
	c.scrollTween = nil
	c.dirty = true
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// the screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	if factor <= 0 {
		return
	}
	before, err := c.ScreenToWorld(Vec2{sx, sy})
	if err != nil {
		return
	}
	z := c.Zoom * factor
	if c.MinZoom > 0 && z < c.MinZoom {
		z = c.MinZoom
	}
	if c.MaxZoom > 0 && z > c.MaxZoom {
		z = c.MaxZoom
	}
	c.Zoom = z
	c.dirty = true
	after, err := c.ScreenToWorld(Vec2{sx, sy})
	if err != nil {
		return
	}
	c.X += before.X - after.X
	c.Y += before.Y - after.Y
	c.dirty = true
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// SetZoomLimits sets the range ZoomAt clamps to. Zero disables a limit.
func (c *Camera) SetZoomLimits(min, max float64) {
	c.MinZoom, c.MaxZoom = min, max
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// update advances scroll animation and bounds clamping. Called once per tick.
func (c *Camera) update(dt float32) {
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	if c.Zoom <= 0 {
		return
	}
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix when any input changed.
// Fields are public, so the cache is keyed on their values rather than on a
// dirty flag alone.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	state := [4]float64{c.X, c.Y, c.Zoom, c.Rotation}
	if !c.dirty && state == c.lastState && c.Viewport == c.lastViewport {
		return c.viewMatrix
	}
	c.dirty = false
	c.lastState = state
	c.lastViewport = c.Viewport

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix, c.invOK = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// ViewMatrix returns the world-to-screen affine matrix.
func (c *Camera) ViewMatrix() [6]float64 {
	return c.computeViewMatrix()
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	c.computeViewMatrix()
	sx, sy := transformPoint(c.viewMatrix, p.X, p.Y)
	return Vec2{sx, sy}
}

// ScreenToWorld converts a screen position to world coordinates. It fails
// when the viewport has no area or the view transform is degenerate
// (zero zoom).
func (c *Camera) ScreenToWorld(p Vec2) (Vec2, error) {
	if c.Viewport.Empty() {
		return Vec2{}, ErrEmptyViewport
	}
	c.computeViewMatrix()
	if !c.invOK {
		return Vec2{}, ErrSingularTransform
	}
	wx, wy := transformPoint(c.invViewMatrix, p.X, p.Y)
	return Vec2{wx, wy}, nil
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)
	return BoundingRect(Vec2{x0, y0}, Vec2{x1, y1}, Vec2{x2, y2}, Vec2{x3, y3})
}
