package tilestead

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// DefaultBuildingSize is the bounding size used for placeable entities that
// do not declare one.
var DefaultBuildingSize = Vec2{192, 192}

// HitData describes one hit. Lower depth is closer to the viewer: tile hits
// carry the tilemap's world Z, building hits carry the negated building Z, so
// buildings (drawn at high Z) sort in front of tiles.
type HitData struct {
	Camera donburi.Entity
	Depth  float64
}

// Hit pairs a hit entity with its hit data.
type Hit struct {
	Entity donburi.Entity
	Data   HitData
}

// PointerHits is the hit list produced for one pointer in one tick. Hits are
// in discovery order (tiles first, then buildings); ranking is left to the
// consumer. Order is the render order of the camera that produced the list.
type PointerHits struct {
	Pointer PointerID
	Hits    []Hit
	Order   float64
}

// PointerHitsEvent is the typed queue hit lists are published on. Producers
// publish during the picking stage; the interaction tracker drains it once
// per tick.
var PointerHitsEvent = events.NewEventType[PointerHits]()

// CameraPolicy chooses among several active cameras targeting the same
// surface as a pointer.
type CameraPolicy uint8

const (
	// CameraHighestOrder picks the camera with the highest Order; equal
	// orders keep iteration order.
	CameraHighestOrder CameraPolicy = iota
	// CameraFirstMatch picks the first matching camera in iteration order.
	CameraFirstMatch
)

var (
	cameraQuery   = donburi.NewQuery(filter.Contains(CameraComponent))
	tilemapQuery  = donburi.NewQuery(filter.Contains(TilemapComponent, TransformComponent))
	buildingQuery = donburi.NewQuery(filter.Contains(BuildingTag, PickableTag, TransformComponent, SpriteComponent))
)

// resolveCamera returns the camera a pointer at loc maps through.
func resolveCamera(w donburi.World, loc Location, policy CameraPolicy) (*donburi.Entry, bool) {
	var best *donburi.Entry
	cameraQuery.Each(w, func(e *donburi.Entry) {
		cam := CameraComponent.Get(e)
		if !cam.Active || cam.Target != loc.Target {
			return
		}
		switch {
		case best == nil:
			best = e
		case policy == CameraHighestOrder && cam.Order > CameraComponent.Get(best).Order:
			best = e
		}
	})
	return best, best != nil
}

// pointerWorld maps a pointer's location to world space. ok is false when the
// pointer has no location, no camera matches, or the mapping fails.
func pointerWorld(w donburi.World, p *Pointer, policy CameraPolicy) (world Vec2, cam *donburi.Entry, ok bool) {
	if p.Location == nil {
		return Vec2{}, nil, false
	}
	cam, ok = resolveCamera(w, *p.Location, policy)
	if !ok {
		return Vec2{}, nil, false
	}
	world, err := CameraComponent.Get(cam).ScreenToWorld(p.Location.Position)
	if err != nil {
		return Vec2{}, nil, false
	}
	return world, cam, true
}

// HitTester tests world points against tilemaps and placeable entities.
type HitTester struct {
	// DefaultSize is the bounding size for sprites without CustomSize.
	DefaultSize Vec2
}

// Test returns every visible tile and building under world point p, tiles
// first. camera is recorded in each hit's data.
func (h HitTester) Test(w donburi.World, camera donburi.Entity, p Vec2) []Hit {
	var hits []Hit

	tilemapQuery.Each(w, func(e *donburi.Entry) {
		if !isVisible(e) {
			return
		}
		tm := TilemapComponent.Get(e)
		tr := TransformComponent.Get(e)
		cell, ok := tm.Layout.WorldToCell(*tr, p)
		if !ok {
			return
		}
		tileEntity, ok := tm.Storage.Get(cell)
		if !ok || !w.Valid(tileEntity) {
			return
		}
		tileEntry := w.Entry(tileEntity)
		if !tileEntry.HasComponent(TileComponent) || !TileComponent.Get(tileEntry).Visible {
			return
		}
		hits = append(hits, Hit{
			Entity: tileEntity,
			Data:   HitData{Camera: camera, Depth: tr.Z},
		})
	})

	buildingQuery.Each(w, func(e *donburi.Entry) {
		if !isVisible(e) {
			return
		}
		tr := TransformComponent.Get(e)
		rel := p.Sub(tr.Position()).Abs()
		half := h.size(e).Scale(0.5)
		if rel.X <= half.X && rel.Y <= half.Y {
			hits = append(hits, Hit{
				Entity: e.Entity(),
				Data:   HitData{Camera: camera, Depth: -tr.Z},
			})
		}
	})

	return hits
}

func (h HitTester) size(e *donburi.Entry) Vec2 {
	if cs := SpriteComponent.Get(e).CustomSize; cs != nil {
		return *cs
	}
	return h.DefaultSize
}

// BuildingBounds returns the world-space box building e is picked by,
// centered on its position.
func (s *Scene) BuildingBounds(e donburi.Entity) (Rect, bool) {
	if !s.world.Valid(e) {
		return Rect{}, false
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(SpriteComponent) || !entry.HasComponent(TransformComponent) {
		return Rect{}, false
	}
	size := HitTester{DefaultSize: s.defaultSize}.size(entry)
	pos := TransformComponent.Get(entry).Position()
	return Rect{X: pos.X - size.X/2, Y: pos.Y - size.Y/2, Width: size.X, Height: size.Y}, true
}

// pickingBackend hit-tests every located pointer and publishes one
// PointerHits per pointer. Pointers that cannot be resolved publish nothing.
func (s *Scene) pickingBackend() {
	tester := HitTester{DefaultSize: s.defaultSize}
	s.eachPointer(func(p *Pointer) {
		world, cam, ok := pointerWorld(s.world, p, s.cameraPolicy)
		if !ok {
			return
		}
		hits := tester.Test(s.world, cam.Entity(), world)
		PointerHitsEvent.Publish(s.world, PointerHits{
			Pointer: p.ID,
			Hits:    hits,
			Order:   float64(CameraComponent.Get(cam).Order),
		})
		s.stats.hits += len(hits)
	})
}
