package canvas

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoSteps is returned by LoadTestScript for a script without steps.
var ErrNoSteps = errors.New("test script has no steps")

// testStep is one action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner plays a scripted sequence of clicks, drags, typing, key
// presses, waits and screenshots, one step per frame once earlier input has
// drained.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script:
//
//	{"steps": [
//		{"action": "click", "x": 200, "y": 60},
//		{"action": "type", "text": "renamed"},
//		{"action": "key", "key": "enter"},
//		{"action": "drag", "fromX": 200, "fromY": 60, "toX": 340, "toY": 60, "frames": 10},
//		{"action": "wait", "frames": 5},
//		{"action": "screenshot", "label": "after"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrNoSteps)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "click", "drag", "wait", "type":
		case "key":
			if _, ok := parseKey(st.Key); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner; it advances from Update each frame.
func (c *Canvas[T]) SetTestRunner(runner *TestRunner) {
	c.runner = runner
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(c stepTarget) {
	if r.done || c.pending() {
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
	case "screenshot":
		c.Screenshot(st.Label)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "type":
		c.InjectText(st.Text)
	case "key":
		c.InjectKey(st.Key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !c.pending() {
		r.done = true
	}
}

// stepTarget is the part of a Canvas a TestRunner drives.
type stepTarget interface {
	pending() bool
	Screenshot(label string)
	InjectClick(x, y float64)
	InjectDrag(fromX, fromY, toX, toY float64, frames int)
	InjectText(s string)
	InjectKey(name string)
}

// pending reports queued input the runner must wait for.
func (c *Canvas[T]) pending() bool {
	return len(c.injectQueue) > 0 || len(c.keyQueue) > 0
}
