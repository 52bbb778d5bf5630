package tilestead

import (
	"github.com/yohamta/donburi"
)

// Visibility is the resolved visibility of an entity. Invisible entities are
// skipped by picking and rendering.
type Visibility struct {
	Visible bool
}

// Sprite is the display data of a placeable entity.
type Sprite struct {
	// Kind names the building kind the sprite was spawned from.
	Kind string
	// CustomSize is the declared bounding size. When nil, picking falls back
	// to Config.Picking.DefaultSize.
	CustomSize *Vec2
	// Base is the color the kind is drawn with before tinting.
	Base Color
	// Color is the current tint, rewritten every tick by visual feedback.
	Color Color
}

// Interaction is the per-entity pointer state written by the interaction
// tracker and read by drag and feedback.
type Interaction struct {
	State InteractionState
}

// Component tables. Each archetype query below mirrors one filter the
// picking and drag systems need (visible, active, tagged).
var (
	TransformComponent   = donburi.NewComponentType[Transform]()
	VisibilityComponent  = donburi.NewComponentType[Visibility]()
	TilemapComponent     = donburi.NewComponentType[Tilemap]()
	TileComponent        = donburi.NewComponentType[Tile]()
	SpriteComponent      = donburi.NewComponentType[Sprite]()
	CameraComponent      = donburi.NewComponentType[Camera]()
	PointerComponent     = donburi.NewComponentType[Pointer]()
	InteractionComponent = donburi.NewComponentType[Interaction]()
	NameComponent        = donburi.NewComponentType[string]()

	// BuildingTag marks placeable entities.
	BuildingTag = donburi.NewTag().SetName("Building")
	// PickableTag marks entities the picking backend may report.
	PickableTag = donburi.NewTag().SetName("Pickable")
	// DraggableTag marks entities the drag controller may move.
	DraggableTag = donburi.NewTag().SetName("Draggable")
)

// isVisible reports an entry's visibility. Entries without a Visibility
// component are visible.
func isVisible(e *donburi.Entry) bool {
	if !e.HasComponent(VisibilityComponent) {
		return true
	}
	return VisibilityComponent.Get(e).Visible
}

// entityName returns the entry's Name component, or "".
func entityName(e *donburi.Entry) string {
	if !e.HasComponent(NameComponent) {
		return ""
	}
	return *NameComponent.Get(e)
}
