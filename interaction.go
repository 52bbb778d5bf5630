package tilestead

import (
	"sort"

	"github.com/yohamta/donburi"
)

// InteractionTracker turns the tick's hit lists into per-entity interaction
// state. Each pointer hovers at most one entity: the hit from the highest
// camera order with the lowest depth, earlier hits winning ties.
type InteractionTracker struct {
	pending map[PointerID][]PointerHits
	hovered map[PointerID]Hit
	marked  map[donburi.Entity]struct{}
}

// NewInteractionTracker subscribes a tracker to w's hit queue.
func NewInteractionTracker(w donburi.World) *InteractionTracker {
	t := &InteractionTracker{
		pending: make(map[PointerID][]PointerHits),
		hovered: make(map[PointerID]Hit),
		marked:  make(map[donburi.Entity]struct{}),
	}
	PointerHitsEvent.Subscribe(w, t.collect)
	return t
}

func (t *InteractionTracker) collect(_ donburi.World, ph PointerHits) {
	t.pending[ph.Pointer] = append(t.pending[ph.Pointer], ph)
}

// Hovered returns the entity pointer id resolved to in the last update.
func (t *InteractionTracker) Hovered(id PointerID) (Hit, bool) {
	h, ok := t.hovered[id]
	return h, ok
}

// pickWinner ranks every hit across the pointer's lists.
func pickWinner(lists []PointerHits) (Hit, bool) {
	type ranked struct {
		hit   Hit
		order float64
	}
	var all []ranked
	for _, l := range lists {
		for _, h := range l.Hits {
			all = append(all, ranked{h, l.Order})
		}
	}
	if len(all) == 0 {
		return Hit{}, false
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].order != all[j].order {
			return all[i].order > all[j].order
		}
		return all[i].hit.Data.Depth < all[j].hit.Data.Depth
	})
	return all[0].hit, true
}

// update drains the collected hit lists and rewrites Interaction for every
// entity that changed state. Pointers that published nothing this tick hover
// nothing.
func (t *InteractionTracker) update(w donburi.World, pointers map[PointerID]Pointer) {
	next := make(map[donburi.Entity]InteractionState)
	clear(t.hovered)
	for id, lists := range t.pending {
		winner, ok := pickWinner(lists)
		if !ok {
			continue
		}
		t.hovered[id] = winner
		state := InteractionHovered
		if p, ok := pointers[id]; ok && p.IsPressed(MouseButtonLeft) {
			state = InteractionPressed
		}
		if state > next[winner.Entity] {
			next[winner.Entity] = state
		}
	}
	clear(t.pending)

	for e := range t.marked {
		if _, still := next[e]; still {
			continue
		}
		setInteraction(w, e, InteractionNone)
		delete(t.marked, e)
	}
	for e, state := range next {
		setInteraction(w, e, state)
		t.marked[e] = struct{}{}
	}
}

func setInteraction(w donburi.World, e donburi.Entity, state InteractionState) {
	if !w.Valid(e) {
		return
	}
	entry := w.Entry(e)
	if !entry.HasComponent(InteractionComponent) {
		return
	}
	InteractionComponent.SetValue(entry, Interaction{State: state})
}

// interactionOf returns an entry's interaction state; entries without the
// component are never interacted with.
func interactionOf(e *donburi.Entry) InteractionState {
	if !e.HasComponent(InteractionComponent) {
		return InteractionNone
	}
	return InteractionComponent.Get(e).State
}
