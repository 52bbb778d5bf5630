package tilestead

import (
	"testing"

	"github.com/yohamta/donburi"
)

func position(s *Scene, e donburi.Entity) Vec2 {
	return TransformComponent.Get(s.world.Entry(e)).Position()
}

func cellCenter(t *testing.T, s *Scene, p Vec2) Vec2 {
	t.Helper()
	entry, ok := firstTilemap(s.world)
	if !ok {
		t.Fatal("no tilemap")
	}
	tm := TilemapComponent.Get(entry)
	tr := *TransformComponent.Get(entry)
	c, ok := tm.Layout.WorldToCell(tr, p)
	if !ok {
		t.Fatalf("%v is outside the map", p)
	}
	return tm.Layout.CellToWorldCenter(tr, c)
}

func TestDragStartRecordsOffset(t *testing.T) {
	s, in, _ := newTestScene(t, true)
	b := spawnDefault(t, s)

	in.mouseAt(10, 12, true)
	s.Update()

	st, ok := s.Drag().State(b)
	if !ok {
		t.Fatal("building should be dragging after a press over it")
	}
	if st.Offset != (Vec2{10, 12}) {
		t.Errorf("Offset = %v, want (10,12)", st.Offset)
	}
	// The transition tick does not move the entity.
	if p := position(s, b); p != (Vec2{0, 0}) {
		t.Errorf("position on press tick = %v, want (0,0)", p)
	}
}

func TestDragNoInitialJump(t *testing.T) {
	s, in, _ := newTestScene(t, true)
	b := spawnDefault(t, s)
	start := position(s, b)

	in.mouseAt(37, -41, true)
	s.Update()
	s.Update() // pointer has not moved

	want := cellCenter(t, s, start)
	if p := position(s, b); !approxEqual(p.X, want.X, epsilon) || !approxEqual(p.Y, want.Y, epsilon) {
		t.Errorf("position after still tick = %v, want start cell center %v", p, want)
	}
}

func TestDragFollowsAndSnaps(t *testing.T) {
	s, in, _ := newTestScene(t, true)
	b := spawnDefault(t, s)

	in.mouseAt(10, 10, true)
	s.Update()
	in.mouseAt(80, 10, true)
	s.Update()

	// Desired (70,0) lies in cell (18,16) whose center is (80,16).
	if p := position(s, b); !approxEqual(p.X, 80, epsilon) || !approxEqual(p.Y, 16, epsilon) {
		t.Errorf("position = %v, want (80,16)", p)
	}
	if z := TransformComponent.Get(s.world.Entry(b)).Z; z != SpawnZ {
		t.Errorf("Z = %v, want %v untouched", z, SpawnZ)
	}

	// Small moves inside the same cell do not change the snapped position.
	in.mouseAt(85, 14, true)
	s.Update()
	if p := position(s, b); !approxEqual(p.X, 80, epsilon) || !approxEqual(p.Y, 16, epsilon) {
		t.Errorf("position after in-cell move = %v, want (80,16)", p)
	}
}

func TestDragOffGridIsUnsnapped(t *testing.T) {
	s, in, _ := newTestScene(t, true)
	b := spawnDefault(t, s)

	in.mouseAt(0, 0, true)
	s.Update()
	in.mouseAt(700.25, 3.5, true)
	s.Update()
	if p := position(s, b); p != (Vec2{700.25, 3.5}) {
		t.Errorf("position = %v, want unsnapped (700.25,3.5)", p)
	}
}

func TestDragWithoutTilemapIsUnsnapped(t *testing.T) {
	s, in, _ := newTestScene(t, false)
	b := spawnDefault(t, s)

	in.mouseAt(5, 5, true)
	s.Update()
	in.mouseAt(22.5, -3, true)
	s.Update()
	if p := position(s, b); p != (Vec2{17.5, -8}) {
		t.Errorf("position = %v, want (17.5,-8)", p)
	}
}

func TestDragReleaseStopsSameTick(t *testing.T) {
	s, in, _ := newTestScene(t, true)
	b := spawnDefault(t, s)

	in.mouseAt(0, 0, true)
	s.Update()
	in.mouseAt(100, 0, true)
	s.Update()
	moved := position(s, b)

	in.mouseAt(200, 0, false)
	s.Update()
	if s.Drag().Dragging(b) {
		t.Error("release should end the drag in the same tick")
	}
	if p := position(s, b); p != moved {
		t.Errorf("position after release = %v, want %v", p, moved)
	}
}

func TestDragMissedReleaseEvent(t *testing.T) {
	s, in, _ := newTestScene(t, true)
	b := spawnDefault(t, s)

	in.mouseAt(0, 0, true)
	s.Update()
	// The button comes up while the pointer is off the window: no release
	// is ever observed over the world.
	in.mouseGone(false)
	s.Update()
	if s.Drag().Dragging(b) {
		t.Error("drag should stop whenever the button is not held")
	}
}

func TestDragSurvivesLostPointer(t *testing.T) {
	s, in, _ := newTestScene(t, true)
	b := spawnDefault(t, s)

	in.mouseAt(0, 0, true)
	s.Update()
	in.mouseAt(64, 0, true)
	s.Update()
	moved := position(s, b)

	in.mouseGone(true)
	s.Update()
	if !s.Drag().Dragging(b) {
		t.Error("drag should persist while the button is held")
	}
	if p := position(s, b); p != moved {
		t.Errorf("position with no cursor = %v, want %v", p, moved)
	}
}

func TestDragDespawnedEntityStops(t *testing.T) {
	s, in, _ := newTestScene(t, true)
	b := spawnDefault(t, s)

	in.mouseAt(0, 0, true)
	s.Update()
	s.Despawn(b)
	in.mouseAt(50, 50, true)
	s.Update()
	if s.Drag().Dragging(b) || s.Drag().Count() != 0 {
		t.Error("drag state for a removed entity should be dropped")
	}
}

func TestDragRequiresDraggableTag(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Create(TransformComponent, InteractionComponent)
	entry := w.Entry(e)
	TransformComponent.SetValue(entry, NewTransform(0, 0, 1))
	InteractionComponent.SetValue(entry, Interaction{State: InteractionPressed})

	d := NewDragController()
	cursor := Vec2{3, 3}
	d.Update(w, &cursor, true)
	if d.Dragging(e) {
		t.Error("entity without DraggableTag should not drag")
	}
}

func TestDragControllerStateMachine(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Create(TransformComponent, InteractionComponent, DraggableTag)
	entry := w.Entry(e)
	TransformComponent.SetValue(entry, NewTransform(4, 4, 1))

	d := NewDragController()
	cursor := Vec2{6, 7}

	// Hovered is not enough.
	InteractionComponent.SetValue(entry, Interaction{State: InteractionHovered})
	d.Update(w, &cursor, true)
	if d.Dragging(e) {
		t.Fatal("hovered entity should not start dragging")
	}

	// Pressed without the button held does not start.
	InteractionComponent.SetValue(entry, Interaction{State: InteractionPressed})
	d.Update(w, &cursor, false)
	if d.Dragging(e) {
		t.Fatal("pressed without held button should not start dragging")
	}

	// Pressed without a cursor does not start.
	d.Update(w, nil, true)
	if d.Dragging(e) {
		t.Fatal("pressed without cursor should not start dragging")
	}

	d.Update(w, &cursor, true)
	st, ok := d.State(e)
	if !ok || st.Offset != (Vec2{2, 3}) {
		t.Fatalf("State = %+v,%v, want offset (2,3)", st, ok)
	}

	// Staying pressed keeps the original offset.
	cursor = Vec2{10, 10}
	d.Update(w, &cursor, true)
	if st, _ := d.State(e); st.Offset != (Vec2{2, 3}) {
		t.Errorf("offset changed mid-drag: %v", st.Offset)
	}
	if p := TransformComponent.Get(entry).Position(); p != (Vec2{8, 7}) {
		t.Errorf("position = %v, want (8,7)", p)
	}

	// Interaction dropping to None mid-drag does not stop the drag.
	InteractionComponent.SetValue(entry, Interaction{State: InteractionNone})
	d.Update(w, &cursor, true)
	if !d.Dragging(e) {
		t.Error("drag should continue while held even when no longer hovered")
	}

	d.Update(w, &cursor, false)
	if d.Dragging(e) {
		t.Error("drag should stop when the button is released")
	}
}

func TestDragFollowsHoldingPointer(t *testing.T) {
	s, in, _ := newTestScene(t, true)
	b := spawnDefault(t, s)

	at := func(id PointerID, wx, wy float64, pressed bool) Pointer {
		p := Pointer{ID: id, Location: &Location{
			Position: Vec2{wx + testScreenW/2, wy + testScreenH/2},
			Target:   PrimarySurface,
		}}
		p.Pressed[MouseButtonLeft] = pressed
		return p
	}

	// Pointer 0 hovers far from the building while pointer 1 presses on it.
	in.pointers = []Pointer{at(MousePointer, 300, 300, false), at(1, 10, 12, true)}
	s.Update()
	st, ok := s.Drag().State(b)
	if !ok {
		t.Fatal("building should be dragging")
	}
	if st.Offset != (Vec2{10, 12}) {
		t.Errorf("Offset = %v, want (10,12) from the pressing pointer", st.Offset)
	}

	in.pointers = []Pointer{at(MousePointer, 300, 300, false), at(1, 90, 12, true)}
	s.Update()
	if p := position(s, b); p != (Vec2{80, 16}) {
		t.Errorf("position = %v, want (80,16) following the pressing pointer", p)
	}

	in.pointers = []Pointer{at(MousePointer, 300, 300, false), at(1, 90, 12, false)}
	s.Update()
	if s.Drag().Dragging(b) {
		t.Error("drag should end when the pressing pointer releases")
	}
}
