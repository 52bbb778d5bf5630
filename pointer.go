package tilestead

import (
	"github.com/yohamta/donburi"
)

// Location is where a pointer is: a screen position on a surface.
type Location struct {
	Position Vec2
	Target   SurfaceID
}

// Pointer is the per-tick state of one pointer. Location is nil while the
// pointer is off every surface.
type Pointer struct {
	ID       PointerID
	Location *Location
	Pressed  [3]bool // indexed by MouseButton
}

// IsPressed reports whether button b is held.
func (p Pointer) IsPressed(b MouseButton) bool {
	return int(b) < len(p.Pressed) && p.Pressed[b]
}

// InputSource supplies a snapshot of every pointer once per tick. The host
// window implements it with real devices; ScriptedInput replays queued events.
type InputSource interface {
	Pointers() []Pointer
}

// syncPointers copies the input snapshot into pointer entities, creating
// entities for new pointers and removing those that disappeared.
func (s *Scene) syncPointers() {
	var snapshot []Pointer
	if s.input != nil {
		snapshot = s.input.Pointers()
	}

	seen := make(map[PointerID]bool, len(snapshot))
	for _, p := range snapshot {
		seen[p.ID] = true
		e, ok := s.pointerEntities[p.ID]
		if !ok || !s.world.Valid(e) {
			e = s.world.Create(PointerComponent)
			s.pointerEntities[p.ID] = e
		}
		PointerComponent.SetValue(s.world.Entry(e), p)
	}
	for id, e := range s.pointerEntities {
		if seen[id] {
			continue
		}
		if s.world.Valid(e) {
			s.world.Remove(e)
		}
		delete(s.pointerEntities, id)
	}
}

// eachPointer calls fn for every pointer entity in iteration order.
func (s *Scene) eachPointer(fn func(p *Pointer)) {
	PointerComponent.Each(s.world, func(e *donburi.Entry) {
		fn(PointerComponent.Get(e))
	})
}

// dragPointer returns the state of the pointer that drives dragging: the
// first one holding the primary button. cursor is that pointer's world
// position, or nil when it does not resolve; held is false when no pointer
// holds the button.
func (s *Scene) dragPointer() (cursor *Vec2, held bool) {
	s.eachPointer(func(p *Pointer) {
		if held || !p.IsPressed(MouseButtonLeft) {
			return
		}
		held = true
		if w, _, ok := pointerWorld(s.world, p, s.cameraPolicy); ok {
			cursor = &w
		}
	})
	return cursor, held
}
