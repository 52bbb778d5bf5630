package tilestead

import "github.com/yohamta/donburi"

// Tints maps interaction state to a tint color.
type Tints struct {
	Pressed Color
	Hovered Color
	Neutral Color
}

// DefaultTints returns reddish for pressed, bright yellow for hovered, and
// white otherwise.
func DefaultTints() Tints {
	return Tints{
		Pressed: RGB(1.0, 0.5, 0.5),
		Hovered: RGB(1.3, 1.3, 1.0),
		Neutral: ColorWhite,
	}
}

// For returns the tint for state. A dragging entity always shows the pressed
// tint.
func (t Tints) For(state InteractionState, dragging bool) Color {
	if dragging {
		return t.Pressed
	}
	switch state {
	case InteractionPressed:
		return t.Pressed
	case InteractionHovered:
		return t.Hovered
	default:
		return t.Neutral
	}
}

// applyFeedback rewrites tile and building tints from this tick's
// interaction state.
func (s *Scene) applyFeedback() {
	TileComponent.Each(s.world, func(e *donburi.Entry) {
		TileComponent.Get(e).Color = s.tints.For(interactionOf(e), false)
	})
	buildingQuery.Each(s.world, func(e *donburi.Entry) {
		SpriteComponent.Get(e).Color = s.tints.For(interactionOf(e), s.drag.Dragging(e.Entity()))
	})
}
