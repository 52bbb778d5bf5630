package tilestead

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SpawnZ is the Z new buildings are placed at, above the tile layer.
const SpawnZ = 100

// BuildingKind is a placeable building type offered by the debug menu.
type BuildingKind struct {
	Name  string
	Size  *Vec2 // nil uses the default bounding size
	Color Color
}

// SpawnRequest asks the scene to place a new building of Kind at the origin.
type SpawnRequest struct {
	Kind string
}

// SpawnRequestEvent queues placement requests; the scene drains it at the
// start of every tick.
var SpawnRequestEvent = events.NewEventType[SpawnRequest]()

// SpawnBuilding creates a pickable, draggable building of kind at (0, 0,
// SpawnZ) with a neutral tint.
func SpawnBuilding(w donburi.World, kind BuildingKind) donburi.Entity {
	e := w.Create(
		TransformComponent, VisibilityComponent, SpriteComponent, InteractionComponent, NameComponent,
		BuildingTag, PickableTag, DraggableTag,
	)
	entry := w.Entry(e)
	TransformComponent.SetValue(entry, NewTransform(0, 0, SpawnZ))
	VisibilityComponent.SetValue(entry, Visibility{Visible: true})

	var size *Vec2
	if kind.Size != nil {
		sz := *kind.Size
		size = &sz
	}
	base := kind.Color
	if base == (Color{}) {
		base = ColorWhite
	}
	SpriteComponent.SetValue(entry, Sprite{Kind: kind.Name, CustomSize: size, Base: base, Color: ColorWhite})
	NameComponent.SetValue(entry, kind.Name)
	return e
}

// RequestSpawn queues a placement request for kind. It is handled at the
// start of the next Update.
func (s *Scene) RequestSpawn(kind string) {
	SpawnRequestEvent.Publish(s.world, SpawnRequest{Kind: kind})
}

// handleSpawn places one building per request. Unknown kinds are logged and
// dropped.
func (s *Scene) handleSpawn(w donburi.World, req SpawnRequest) {
	kind, ok := s.kinds[req.Kind]
	if !ok {
		logf("spawn request for unknown building kind %q ignored", req.Kind)
		return
	}
	logf("spawning building: %s", kind.Name)
	e := SpawnBuilding(w, kind)
	s.spawned = append(s.spawned, e)
}

// Kinds returns the building kinds known to the scene in config order.
func (s *Scene) Kinds() []BuildingKind {
	return s.kindOrder
}
