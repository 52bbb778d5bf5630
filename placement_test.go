package tilestead

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestSpawnRequestPlacesBuildingAtOrigin(t *testing.T) {
	s, _, _ := newTestScene(t, true)
	s.RequestSpawn("Basic Chapel")
	if len(s.Buildings()) != 0 {
		t.Fatal("request must not spawn before the next Update")
	}
	s.Update()

	b := s.Buildings()
	if len(b) != 1 {
		t.Fatalf("buildings = %d, want 1", len(b))
	}
	entry := s.world.Entry(b[0])
	tr := TransformComponent.Get(entry)
	if tr.X != 0 || tr.Y != 0 || tr.Z != SpawnZ {
		t.Errorf("position = (%v,%v,%v), want (0,0,%v)", tr.X, tr.Y, tr.Z, SpawnZ)
	}
	if !entry.HasComponent(PickableTag) || !entry.HasComponent(DraggableTag) {
		t.Error("building should be pickable and draggable")
	}
	if !entry.HasComponent(InteractionComponent) {
		t.Error("building missing interaction state")
	}
	if got := SpriteComponent.Get(entry).Color; got != ColorWhite {
		t.Errorf("initial tint = %v, want white", got)
	}
	if got := entityName(entry); got != "Basic Chapel" {
		t.Errorf("name = %q", got)
	}
}

func TestSpawnRequestsStack(t *testing.T) {
	s, _, _ := newTestScene(t, false)
	s.RequestSpawn("Basic Chapel")
	s.RequestSpawn("Basic Chapel")
	s.Update()
	if n := len(s.Buildings()); n != 2 {
		t.Errorf("buildings = %d, want 2", n)
	}
}

func TestSpawnRequestUnknownKindIgnored(t *testing.T) {
	s, _, _ := newTestScene(t, false)
	s.RequestSpawn("Cathedral")
	s.Update()
	if n := len(s.Buildings()); n != 0 {
		t.Errorf("buildings = %d, want 0", n)
	}
}

func TestSpawnBuildingCopiesKind(t *testing.T) {
	w := donburi.NewWorld()
	size := Vec2{40, 20}
	kind := BuildingKind{Name: "Hut", Size: &size, Color: Color{0.2, 0.4, 0.6, 1}}
	e := SpawnBuilding(w, kind)
	size.X = 999

	sp := SpriteComponent.Get(w.Entry(e))
	if sp.CustomSize == nil || *sp.CustomSize != (Vec2{40, 20}) {
		t.Errorf("CustomSize = %v, want (40,20) independent of the kind", sp.CustomSize)
	}
	if sp.Base != kind.Color {
		t.Errorf("Base = %v, want %v", sp.Base, kind.Color)
	}

	plain := SpawnBuilding(w, BuildingKind{Name: "Plain"})
	if got := SpriteComponent.Get(w.Entry(plain)).Base; got != ColorWhite {
		t.Errorf("zero color base = %v, want white", got)
	}
}

func TestSceneKindsInConfigOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Buildings = []BuildingEntry{{Name: "B"}, {Name: "A"}}
	s, err := NewScene(cfg)
	if err != nil {
		t.Fatal(err)
	}
	kinds := s.Kinds()
	if len(kinds) != 2 || kinds[0].Name != "B" || kinds[1].Name != "A" {
		t.Errorf("Kinds() = %+v", kinds)
	}
}
