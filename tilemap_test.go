package tilestead

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestTileStorage(t *testing.T) {
	s := NewTileStorage(MapSize{W: 3, H: 2})
	if _, ok := s.Get(CellCoord{0, 0}); ok {
		t.Error("new storage should be empty")
	}

	s.Set(CellCoord{2, 1}, donburi.Entity(7))
	if e, ok := s.Get(CellCoord{2, 1}); !ok || e != donburi.Entity(7) {
		t.Errorf("Get = %v,%v, want 7,true", e, ok)
	}

	// Out of range is ignored.
	s.Set(CellCoord{3, 0}, donburi.Entity(9))
	if _, ok := s.Get(CellCoord{3, 0}); ok {
		t.Error("out-of-range Get should fail")
	}

	if e, ok := s.Remove(CellCoord{2, 1}); !ok || e != donburi.Entity(7) {
		t.Errorf("Remove = %v,%v, want 7,true", e, ok)
	}
	if _, ok := s.Get(CellCoord{2, 1}); ok {
		t.Error("cell should be empty after Remove")
	}
}

func TestSpawnTilemap(t *testing.T) {
	w := donburi.NewWorld()
	spec := TilemapSpec{
		Layout:       GridLayout{Size: MapSize{W: 4, H: 3}, GridSize: Vec2{32, 32}, TileSize: Vec2{32, 32}},
		Transform:    NewTransform(0, 0, 0),
		TextureCount: 4,
		Seed:         1,
	}
	me := SpawnTilemap(w, spec)

	tm := TilemapComponent.Get(w.Entry(me))
	seen := map[donburi.Entity]bool{}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			e, ok := tm.Storage.Get(CellCoord{x, y})
			if !ok {
				t.Fatalf("cell (%d,%d) not occupied", x, y)
			}
			if seen[e] {
				t.Fatalf("entity %v occupies two cells", e)
			}
			seen[e] = true
			tile := TileComponent.Get(w.Entry(e))
			if tile.Pos != (CellCoord{x, y}) || tile.Tilemap != me {
				t.Errorf("tile at (%d,%d) = %+v", x, y, tile)
			}
			if tile.TextureIndex >= 4 {
				t.Errorf("TextureIndex = %d, want < 4", tile.TextureIndex)
			}
		}
	}
}

func TestSpawnTilemapDeterministic(t *testing.T) {
	spec := TilemapSpec{
		Layout:       GridLayout{Size: MapSize{W: 8, H: 8}, GridSize: Vec2{1, 1}, TileSize: Vec2{1, 1}},
		TextureCount: 4,
		Seed:         99,
	}
	indices := func() []uint32 {
		w := donburi.NewWorld()
		me := SpawnTilemap(w, spec)
		tm := TilemapComponent.Get(w.Entry(me))
		var out []uint32
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				e, _ := tm.Storage.Get(CellCoord{x, y})
				out = append(out, TileComponent.Get(w.Entry(e)).TextureIndex)
			}
		}
		return out
	}
	a, b := indices(), indices()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}
