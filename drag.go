package tilestead

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// DragState is attached to an entity while it is being dragged. Offset is the
// pointer's world position minus the entity's position at drag start, so the
// entity keeps its grip point instead of centering under the cursor.
type DragState struct {
	Offset Vec2
}

var draggableQuery = donburi.NewQuery(filter.Contains(DraggableTag, TransformComponent, InteractionComponent))

// DragController moves draggable entities with the pointer and snaps them to
// the first tilemap's cell centers. States live in a sparse map keyed by
// entity; an entity is dragging exactly when it has an entry.
type DragController struct {
	states map[donburi.Entity]DragState
}

// NewDragController returns a controller with nothing dragging.
func NewDragController() *DragController {
	return &DragController{states: make(map[donburi.Entity]DragState)}
}

// Dragging reports whether e is being dragged.
func (d *DragController) Dragging(e donburi.Entity) bool {
	_, ok := d.states[e]
	return ok
}

// State returns e's drag state.
func (d *DragController) State(e donburi.Entity) (DragState, bool) {
	s, ok := d.states[e]
	return s, ok
}

// Count returns the number of dragging entities.
func (d *DragController) Count() int {
	return len(d.states)
}

// Update runs one tick of the drag state machine. cursor is the world
// position of the pointer holding the primary button, or nil when it cannot
// be resolved this tick; held reports whether any pointer holds it. The
// scene passes the first holding pointer, so every drag follows that one
// pointer.
//
// Releasing is keyed on the button state rather than on a release event, so a
// missed release can never leave an entity dragging.
func (d *DragController) Update(w donburi.World, cursor *Vec2, held bool) {
	if !held {
		clear(d.states)
	}

	if cursor != nil {
		d.follow(w, *cursor)
	}

	draggableQuery.Each(w, func(e *donburi.Entry) {
		if interactionOf(e) != InteractionPressed || !held || cursor == nil {
			return
		}
		if _, dragging := d.states[e.Entity()]; dragging {
			return
		}
		pos := TransformComponent.Get(e).Position()
		d.states[e.Entity()] = DragState{Offset: cursor.Sub(pos)}
	})
}

// follow moves every dragging entity to cursor-offset, snapped when a
// tilemap exists and the position lands on it.
func (d *DragController) follow(w donburi.World, cursor Vec2) {
	grid, hasGrid := firstTilemap(w)

	for ent, st := range d.states {
		if !w.Valid(ent) {
			delete(d.states, ent)
			continue
		}
		entry := w.Entry(ent)
		if !entry.HasComponent(TransformComponent) {
			delete(d.states, ent)
			continue
		}

		pos := cursor.Sub(st.Offset)
		if hasGrid {
			tm := TilemapComponent.Get(grid)
			pos, _ = tm.Layout.Snap(*TransformComponent.Get(grid), pos)
		}

		tr := TransformComponent.Get(entry)
		tr.X, tr.Y = pos.X, pos.Y
	}
}
