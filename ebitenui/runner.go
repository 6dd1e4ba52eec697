package ebitenui

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// testStep represents a single action in a test script.
type testStep struct {
	action string
	label  string
	x, y   float64
	fromX  float64
	fromY  float64
	toX    float64
	toY    float64
	frames int
	index  int
}

// TestRunner sequences injected input and navigation across frames for
// automated testing. Attach it to a Game with SetTestRunner.
//
// Supported actions: "press", "move", "release", "click" (x, y), "drag"
// (fromX, fromY, toX, toY, frames), "goto" (index), "wait" (frames) and
// "screenshot" (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadTestScript parses a JSON test script of the form {"steps": [...]}.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	if !gjson.ValidBytes(jsonData) {
		return nil, fmt.Errorf("parse test script: malformed JSON")
	}
	steps := gjson.GetBytes(jsonData, "steps")
	if !steps.IsArray() || len(steps.Array()) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}

	r := &TestRunner{}
	for i, s := range steps.Array() {
		st := testStep{
			action: s.Get("action").String(),
			label:  s.Get("label").String(),
			x:      s.Get("x").Float(),
			y:      s.Get("y").Float(),
			fromX:  s.Get("fromX").Float(),
			fromY:  s.Get("fromY").Float(),
			toX:    s.Get("toX").Float(),
			toY:    s.Get("toY").Float(),
			frames: int(s.Get("frames").Int()),
			index:  int(s.Get("index").Int()),
		}
		switch st.action {
		case "press", "move", "release", "click", "drag", "goto", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.action)
		}
		r.steps = append(r.steps, st)
	}
	return r, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the first error a step produced, such as a goto out of range.
func (r *TestRunner) Err() error {
	return r.err
}

// step advances the runner by one frame. Called from Game.Update before input
// is polled.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if g.Input.Pending() > 0 {
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

	switch st.action {
	case "press":
		g.Input.InjectPress(st.x, st.y)
	case "move":
		g.Input.InjectMove(st.x, st.y)
	case "release":
		g.Input.InjectRelease(st.x, st.y)
	case "click":
		g.Input.InjectClick(st.x, st.y)
	case "drag":
		g.Input.InjectDrag(st.fromX, st.fromY, st.toX, st.toY, max(st.frames, 2))
	case "goto":
		if err := g.Gallery.GoTo(st.index); err != nil && r.err == nil {
			r.err = fmt.Errorf("test script step %d: %w", r.cursor-1, err)
		}
	case "screenshot":
		g.Screenshot(st.label)
	case "wait":
		if st.frames > 0 {
			r.waitCount = st.frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && g.Input.Pending() == 0 {
		r.done = true
	}
}
