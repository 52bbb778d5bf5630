package tilestead

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// TileStorage is a dense, row-major lookup from cell to occupying tile
// entity. A cell holds at most one entity; donburi.Null marks an empty cell.
type TileStorage struct {
	size  MapSize
	cells []donburi.Entity
}

// NewTileStorage creates empty storage for a map of the given size.
func NewTileStorage(size MapSize) TileStorage {
	cells := make([]donburi.Entity, size.Count())
	for i := range cells {
		cells[i] = donburi.Null
	}
	return TileStorage{size: size, cells: cells}
}

// Size returns the map size the storage was created for.
func (s *TileStorage) Size() MapSize {
	return s.size
}

// Get returns the entity occupying c.
func (s *TileStorage) Get(c CellCoord) (donburi.Entity, bool) {
	if !s.size.Contains(c) {
		return donburi.Null, false
	}
	e := s.cells[c.Y*s.size.W+c.X]
	return e, e != donburi.Null
}

// Set stores e at c, replacing any previous occupant. Out-of-range cells are
// ignored.
func (s *TileStorage) Set(c CellCoord, e donburi.Entity) {
	if !s.size.Contains(c) {
		return
	}
	s.cells[c.Y*s.size.W+c.X] = e
}

// Remove clears c and returns its previous occupant.
func (s *TileStorage) Remove(c CellCoord) (donburi.Entity, bool) {
	e, ok := s.Get(c)
	if ok {
		s.cells[c.Y*s.size.W+c.X] = donburi.Null
	}
	return e, ok
}

// Tilemap is the grid component of a tilemap entity. Its world transform is
// the entity's TransformComponent.
type Tilemap struct {
	Layout  GridLayout
	Storage TileStorage
}

// Tile is the component of one grid cell's entity.
type Tile struct {
	Pos          CellCoord
	Tilemap      donburi.Entity
	TextureIndex uint32
	Visible      bool
	Color        Color
}

// TilemapSpec describes a tilemap to generate.
type TilemapSpec struct {
	Layout       GridLayout
	Transform    Transform
	TextureCount int
	Seed         uint64
}

// SpawnTilemap creates a tilemap entity and one tile entity per cell, each
// with a random texture index in [0, TextureCount). The same seed yields the
// same map.
func SpawnTilemap(w donburi.World, spec TilemapSpec) donburi.Entity {
	rng := rand.New(rand.NewPCG(spec.Seed, spec.Seed^0x9e3779b97f4a7c15))
	textures := spec.TextureCount
	if textures <= 0 {
		textures = 1
	}

	mapEntity := w.Create(TilemapComponent, TransformComponent, VisibilityComponent)
	storage := NewTileStorage(spec.Layout.Size)

	for x := 0; x < spec.Layout.Size.W; x++ {
		for y := 0; y < spec.Layout.Size.H; y++ {
			pos := CellCoord{x, y}
			tile := w.Create(TileComponent, PickableTag, InteractionComponent)
			TileComponent.SetValue(w.Entry(tile), Tile{
				Pos:          pos,
				Tilemap:      mapEntity,
				TextureIndex: uint32(rng.IntN(textures)),
				Visible:      true,
				Color:        ColorWhite,
			})
			storage.Set(pos, tile)
		}
	}

	entry := w.Entry(mapEntity)
	TilemapComponent.SetValue(entry, Tilemap{Layout: spec.Layout, Storage: storage})
	TransformComponent.SetValue(entry, spec.Transform)
	VisibilityComponent.SetValue(entry, Visibility{Visible: true})
	return mapEntity
}

// firstTilemap returns the first tilemap entry in iteration order. Drag
// snapping uses it as the placement grid.
func firstTilemap(w donburi.World) (*donburi.Entry, bool) {
	return tilemapQuery.First(w)
}

// MapBounds returns the world bounds of the first tilemap, the one buildings
// snap to.
func (s *Scene) MapBounds() (Rect, bool) {
	e, ok := firstTilemap(s.world)
	if !ok {
		return Rect{}, false
	}
	return TilemapComponent.Get(e).Layout.WorldBounds(*TransformComponent.Get(e)), true
}
