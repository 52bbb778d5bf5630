package tilestead

import "testing"

func TestTintsFor(t *testing.T) {
	tints := DefaultTints()
	tests := []struct {
		name     string
		state    InteractionState
		dragging bool
		want     Color
	}{
		{"none", InteractionNone, false, ColorWhite},
		{"hovered", InteractionHovered, false, RGB(1.3, 1.3, 1.0)},
		{"pressed", InteractionPressed, false, RGB(1.0, 0.5, 0.5)},
		{"dragging none", InteractionNone, true, RGB(1.0, 0.5, 0.5)},
		{"dragging hovered", InteractionHovered, true, RGB(1.0, 0.5, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tints.For(tt.state, tt.dragging); got != tt.want {
				t.Errorf("For(%v, %v) = %v, want %v", tt.state, tt.dragging, got, tt.want)
			}
		})
	}
}

func TestFeedbackTintsTilesAndBuildings(t *testing.T) {
	s, in, _ := newTestScene(t, true)
	b := spawnDefault(t, s)
	tints := s.Tints()

	tmEntry, _ := firstTilemap(s.world)
	tile, _ := TilemapComponent.Get(tmEntry).Storage.Get(CellCoord{0, 0})
	far := TilemapComponent.Get(tmEntry).Layout.CellToWorldCenter(*TransformComponent.Get(tmEntry), CellCoord{0, 0})

	in.mouseAt(far.X, far.Y, false)
	s.Update()
	if c := TileComponent.Get(s.world.Entry(tile)).Color; c != tints.Hovered {
		t.Errorf("hovered tile color = %v, want %v", c, tints.Hovered)
	}
	if c := SpriteComponent.Get(s.world.Entry(b)).Color; c != tints.Neutral {
		t.Errorf("idle building color = %v, want %v", c, tints.Neutral)
	}

	// Start dragging, then move the pointer off the building quickly; the
	// building keeps the pressed tint.
	in.mouseAt(0, 0, true)
	s.Update()
	if c := SpriteComponent.Get(s.world.Entry(b)).Color; c != tints.Pressed {
		t.Errorf("pressed building color = %v, want %v", c, tints.Pressed)
	}
	if c := TileComponent.Get(s.world.Entry(tile)).Color; c != tints.Neutral {
		t.Errorf("tile color after pointer left = %v, want %v", c, tints.Neutral)
	}

	in.mouseGone(true)
	s.Update()
	if c := SpriteComponent.Get(s.world.Entry(b)).Color; c != tints.Pressed {
		t.Errorf("dragging building color = %v, want %v", c, tints.Pressed)
	}
}
