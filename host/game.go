package host

import (
	"fmt"
	"image/color"
	"os"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/tilestead"
)

var clearColor = color.NRGBA{R: 30, G: 30, B: 40, A: 255}

// ScreenshotDir is where F12 captures are written.
var ScreenshotDir = "screenshots"

// Game runs a Scene in an Ebitengine window. F1 toggles debug tracing, F2
// copies the hit report to the clipboard, F12 saves a screenshot and Tab
// hides the spawn menu. Camera keys are handled by CameraRig.
type Game struct {
	scene    *tilestead.Scene
	camera   donburi.Entity
	input    *Input
	rig      *CameraRig
	menu     *Menu
	renderer *Renderer
	shots    screenshotter

	width, height int
	tps           int

	status      string
	statusTicks int
}

// NewGame wires input, rig, menu and renderer around scene. camera is the
// entity the window is viewed through.
func NewGame(cfg tilestead.Config, scene *tilestead.Scene, camera donburi.Entity) (*Game, error) {
	cam := scene.Camera(camera)
	if cam == nil {
		return nil, fmt.Errorf("new game: entity %d has no camera", camera)
	}
	var mapBounds *tilestead.Rect
	if b, ok := scene.MapBounds(); ok {
		mapBounds = &b
	}
	g := &Game{
		scene:    scene,
		camera:   camera,
		input:    NewInput(cfg.Window.Width, cfg.Window.Height),
		rig:      NewCameraRig(cfg.Camera, cam, mapBounds),
		menu:     NewMenu(scene.Kinds()),
		renderer: NewRenderer(),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		tps:      cfg.TicksPerSecond,
		shots:    screenshotter{dir: ScreenshotDir},
	}
	g.input.Blocked = g.menu.Contains
	scene.SetInput(g.input)
	return g, nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.scene.SetDebugMode(!g.scene.DebugMode())
		g.setStatus(fmt.Sprintf("debug tracing %v", g.scene.DebugMode()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if err := clipboard.WriteAll(g.scene.HitReport()); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[tilestead] copy hit report: %v\n", err)
			g.setStatus("clipboard unavailable")
		} else {
			g.setStatus("hit report copied to clipboard")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.request()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.menu.Visible = !g.menu.Visible
	}

	g.menu.Update(g.scene)
	if cam := g.scene.Camera(g.camera); cam != nil {
		g.rig.Update(cam, 1/float64(g.tps))
	}
	g.scene.Update()

	if g.statusTicks > 0 {
		g.statusTicks--
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	cam := g.scene.Camera(g.camera)
	if cam == nil {
		return
	}
	g.renderer.Draw(screen, g.scene, cam)
	g.menu.Draw(screen)
	drawHUD(screen, g.scene, cam, g.height)
	if path, err := g.shots.flush(screen, g.scene.Tick()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[tilestead] %v\n", err)
		g.setStatus("screenshot failed")
	} else if path != "" {
		g.setStatus("saved " + path)
	}
	if g.statusTicks > 0 {
		text.Draw(screen, g.status, basicfont.Face7x13, g.width-8-7*len(g.status), 20, color.White)
	}
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = 2 * g.tps
}

// Run opens the window and blocks until it is closed.
func Run(cfg tilestead.Config, g *Game) error {
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.TicksPerSecond)
	return ebiten.RunGame(g)
}
