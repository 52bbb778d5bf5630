package tilestead

// syntheticPointerEvent is one queued pointer state. Screen coordinates are
// used and converted to world coordinates through the pointer's camera,
// identical to real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	located          bool
	pressed          bool
}

// ScriptedInput is an InputSource that replays queued events, one per tick,
// for the mouse pointer on the primary surface. When the queue is empty the
// last state repeats.
type ScriptedInput struct {
	queue []syntheticPointerEvent
	last  syntheticPointerEvent
}

// NewScriptedInput returns an input with the pointer off-surface and no
// button held.
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{}
}

// Pending returns the number of queued events.
func (in *ScriptedInput) Pending() int {
	return len(in.queue)
}

// Press queues a primary button press at screen (x, y).
func (in *ScriptedInput) Press(x, y float64) {
	in.queue = append(in.queue, syntheticPointerEvent{screenX: x, screenY: y, located: true, pressed: true})
}

// Move queues a pointer move to (x, y) keeping the current button state.
func (in *ScriptedInput) Move(x, y float64) {
	pressed := in.last.pressed
	if n := len(in.queue); n > 0 {
		pressed = in.queue[n-1].pressed
	}
	in.queue = append(in.queue, syntheticPointerEvent{screenX: x, screenY: y, located: true, pressed: pressed})
}

// Release queues a primary button release at (x, y).
func (in *ScriptedInput) Release(x, y float64) {
	in.queue = append(in.queue, syntheticPointerEvent{screenX: x, screenY: y, located: true})
}

// Leave queues the pointer leaving every surface. The button state is kept,
// so a drag can lose its pointer without a release.
func (in *ScriptedInput) Leave() {
	pressed := in.last.pressed
	if n := len(in.queue); n > 0 {
		pressed = in.queue[n-1].pressed
	}
	in.queue = append(in.queue, syntheticPointerEvent{pressed: pressed})
}

// Click queues a press followed by a release at the same screen coordinates.
// Consumes two ticks.
func (in *ScriptedInput) Click(x, y float64) {
	in.Press(x, y)
	in.Release(x, y)
}

// Drag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (in *ScriptedInput) Drag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.Press(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.Release(toX, toY)
}

// Pointers pops one queued event and reports it as the mouse pointer.
func (in *ScriptedInput) Pointers() []Pointer {
	if len(in.queue) > 0 {
		in.last = in.queue[0]
		copy(in.queue, in.queue[1:])
		in.queue = in.queue[:len(in.queue)-1]
	}
	p := Pointer{ID: MousePointer}
	if in.last.located {
		p.Location = &Location{Position: Vec2{in.last.screenX, in.last.screenY}, Target: PrimarySurface}
	}
	p.Pressed[MouseButtonLeft] = in.last.pressed
	return []Pointer{p}
}
