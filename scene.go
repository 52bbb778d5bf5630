package tilestead

import (
	"fmt"
	"time"

	"github.com/yohamta/donburi"
)

// Scene owns the entity world and runs the per-tick pipeline:
//
//	placement -> pointer sync -> cameras -> picking -> interaction -> drag -> feedback
//
// Every stage runs to completion before the next reads its output, so drag
// and feedback always see hit lists from the current tick. Scene is not safe
// for concurrent use.
type Scene struct {
	world donburi.World
	input InputSource
	debug bool

	defaultSize  Vec2
	cameraPolicy CameraPolicy
	tints        Tints
	kinds        map[string]BuildingKind
	kindOrder    []BuildingKind
	dt           float32
	mapSpec      TilemapSpec

	tracker *InteractionTracker
	drag    *DragController

	pointerEntities map[PointerID]donburi.Entity
	lastHits        map[PointerID]PointerHits
	spawned         []donburi.Entity
	tick            uint64
	stats           debugStats
	testRunner      *TestRunner
}

// NewScene creates an empty scene configured by cfg.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	policy, _ := parseCameraPolicy(cfg.Picking.CameraPolicy)

	w := donburi.NewWorld()
	s := &Scene{
		world:           w,
		defaultSize:     Vec2{cfg.Picking.DefaultSize[0], cfg.Picking.DefaultSize[1]},
		cameraPolicy:    policy,
		tints:           cfg.TintSet(),
		kinds:           make(map[string]BuildingKind),
		dt:              float32(1.0 / float64(cfg.TicksPerSecond)),
		mapSpec:         cfg.TilemapSpec(),
		tracker:         NewInteractionTracker(w),
		drag:            NewDragController(),
		pointerEntities: make(map[PointerID]donburi.Entity),
		lastHits:        make(map[PointerID]PointerHits),
	}
	for _, k := range cfg.BuildingKinds() {
		s.kinds[k.Name] = k
		s.kindOrder = append(s.kindOrder, k)
	}
	PointerHitsEvent.Subscribe(w, s.recordHits)
	SpawnRequestEvent.Subscribe(w, s.handleSpawn)
	return s, nil
}

// World returns the scene's entity world.
func (s *Scene) World() donburi.World {
	return s.world
}

// SetInput sets the pointer source read at the start of every tick.
func (s *Scene) SetInput(src InputSource) {
	s.input = src
}

// SetCameraPolicy overrides the configured camera selection policy.
func (s *Scene) SetCameraPolicy(p CameraPolicy) {
	s.cameraPolicy = p
}

// Tick returns the number of completed updates.
func (s *Scene) Tick() uint64 {
	return s.tick
}

// SpawnTilemap generates the configured tilemap.
func (s *Scene) SpawnTilemap() donburi.Entity {
	return SpawnTilemap(s.world, s.mapSpec)
}

// NewCamera creates an active camera entity on the primary surface.
func (s *Scene) NewCamera(viewport Rect) donburi.Entity {
	e := s.world.Create(CameraComponent)
	CameraComponent.SetValue(s.world.Entry(e), NewCamera(viewport))
	return e
}

// Camera returns the camera stored on entity e, or nil.
func (s *Scene) Camera(e donburi.Entity) *Camera {
	if !s.world.Valid(e) {
		return nil
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(CameraComponent) {
		return nil
	}
	return CameraComponent.Get(entry)
}

// Cameras returns every camera entity in iteration order.
func (s *Scene) Cameras() []donburi.Entity {
	var out []donburi.Entity
	cameraQuery.Each(s.world, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}

// Buildings returns every building entity in iteration order.
func (s *Scene) Buildings() []donburi.Entity {
	var out []donburi.Entity
	buildingQuery.Each(s.world, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}

// Despawn removes entity e. Drag state pointing at it is dropped on the next
// tick.
func (s *Scene) Despawn(e donburi.Entity) {
	if s.world.Valid(e) {
		s.world.Remove(e)
	}
}

// Drag returns the scene's drag controller.
func (s *Scene) Drag() *DragController {
	return s.drag
}

// Tracker returns the scene's interaction tracker.
func (s *Scene) Tracker() *InteractionTracker {
	return s.tracker
}

// Tints returns the interaction tints in use.
func (s *Scene) Tints() Tints {
	return s.tints
}

// LastHits returns the hit list published for pointer id in the last tick.
func (s *Scene) LastHits(id PointerID) (PointerHits, bool) {
	ph, ok := s.lastHits[id]
	return ph, ok
}

// CursorWorld returns the world position of the first pointer that resolves
// through a camera this tick.
func (s *Scene) CursorWorld() (Vec2, bool) {
	var (
		pos   Vec2
		found bool
	)
	s.eachPointer(func(p *Pointer) {
		if found {
			return
		}
		if w, _, ok := pointerWorld(s.world, p, s.cameraPolicy); ok {
			pos, found = w, true
		}
	})
	return pos, found
}

// Update advances the scene by one tick.
func (s *Scene) Update() {
	s.stats = debugStats{}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	SpawnRequestEvent.ProcessEvents(s.world)
	s.syncPointers()

	cameraQuery.Each(s.world, func(e *donburi.Entry) {
		CameraComponent.Get(e).update(s.dt)
	})

	t0 := time.Now()
	clear(s.lastHits)
	s.pickingBackend()
	PointerHitsEvent.ProcessEvents(s.world)
	s.stats.pickTime = time.Since(t0)

	t0 = time.Now()
	pointers := make(map[PointerID]Pointer, len(s.pointerEntities))
	s.eachPointer(func(p *Pointer) { pointers[p.ID] = *p })
	s.tracker.update(s.world, pointers)
	s.stats.hoverCount = len(s.tracker.hovered)
	s.stats.trackTime = time.Since(t0)

	t0 = time.Now()
	cursor, held := s.dragPointer()
	before := s.drag.Count()
	s.drag.Update(s.world, cursor, held)
	if n := s.drag.Count(); n != before {
		s.debugf("dragging %d -> %d entities", before, n)
	}
	s.stats.dragging = s.drag.Count()
	s.stats.dragTime = time.Since(t0)

	s.applyFeedback()

	s.tick++
	s.debugLog()
}

func (s *Scene) recordHits(_ donburi.World, ph PointerHits) {
	s.lastHits[ph.Pointer] = ph
}

// Describe names an entity for reports: tiles by cell, others by name.
func (s *Scene) Describe(e donburi.Entity) string {
	if !s.world.Valid(e) {
		return "<gone>"
	}
	entry := s.world.Entry(e)
	if entry.HasComponent(TileComponent) {
		p := TileComponent.Get(entry).Pos
		return fmt.Sprintf("tile(%d,%d)", p.X, p.Y)
	}
	if n := entityName(entry); n != "" {
		return n
	}
	return fmt.Sprintf("entity(%d)", e)
}
