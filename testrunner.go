package tilestead

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Kind   string  `json:"kind,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "leave": true,
	"click": true, "drag": true, "spawn": true, "wait": true,
}

// TestRunner sequences scripted pointer input and placement requests across
// ticks for headless scenario runs. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	input     *ScriptedInput
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, input: NewScriptedInput()}, nil
}

// SetTestRunner attaches a TestRunner to the scene and makes its scripted
// input the scene's input source. The runner's step method is called at the
// start of every Update.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
	if runner != nil {
		s.input = runner.input
	}
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending input to drain before advancing. The queue is
	// popped later this tick, so one event left means this is its tick.
	if r.input.Pending() > 1 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		r.input.Press(st.X, st.Y)
	case "move":
		r.input.Move(st.X, st.Y)
	case "release":
		r.input.Release(st.X, st.Y)
	case "leave":
		r.input.Leave()
	case "click":
		r.input.Click(st.X, st.Y)
	case "drag":
		r.input.Drag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "spawn":
		s.RequestSpawn(st.Kind)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.input.Pending() <= 1 {
		r.done = true
	}
}
