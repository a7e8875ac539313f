package flamerush

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep is one scripted action. Coordinates are playfield pixels.
type testStep struct {
	Action string  `json:"action"`
	Name   string  `json:"name,omitempty"`  // select
	Label  string  `json:"label,omitempty"` // screenshot
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

var knownActions = map[string]bool{
	"move": true, "click": true, "drag": true, "wait": true,
	"shop": true, "select": true, "close": true, "screenshot": true,
}

// TestRunner plays a JSON input script, one step per frame once the input
// queued by the previous step has been consumed. A script looks like:
//
//	{"steps": [
//		{"action": "shop"},
//		{"action": "select", "name": "blue"},
//		{"action": "close"},
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "blue-trail"}
//	]}
//
// move, click and drag inject raw pointer input; shop, select and close
// click the matching on-screen control.
type TestRunner struct {
	steps []testStep
	next  int
	wait  int
	done  bool
}

// LoadTestScript parses and validates a script.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script struct {
		Steps []testStep `json:"steps"`
	}
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	if !knownActions[st.Action] {
		return fmt.Errorf("unknown action %q", st.Action)
	}
	if st.Action == "select" {
		if _, ok := LookupCosmetic(st.Name); !ok {
			return fmt.Errorf("unknown cosmetic %q", st.Name)
		}
	}
	return nil
}

// SetTestRunner makes runner drive g from Update. With exitOnDone, Update
// returns ebiten.Termination after the last step's input is consumed.
func (g *Game) SetTestRunner(runner *TestRunner, exitOnDone bool) {
	g.testRunner = runner
	g.exitOnDone = exitOnDone
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool { return r.done }

// step is called once per frame before input is polled.
func (r *TestRunner) step(g *Game) {
	switch {
	case r.done, g.input.pending() > 0:
		return
	case r.wait > 0:
		r.wait--
		return
	case r.next == len(r.steps):
		r.done = true
		return
	}

	st := r.steps[r.next]
	r.next++
	r.perform(g, st)

	if r.next == len(r.steps) && r.wait == 0 && g.input.pending() == 0 {
		r.done = true
	}
}

func (r *TestRunner) perform(g *Game, st testStep) {
	switch st.Action {
	case "move":
		g.InjectMove(st.X, st.Y)
	case "click":
		g.InjectClick(st.X, st.Y)
	case "drag":
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		// The current frame is the first one waited.
		r.wait = max(st.Frames-1, 0)
	case "shop":
		g.clickRect(shopButton)
	case "select":
		if i := catalogIndex(st.Name); i >= 0 {
			g.clickRect(g.shopView.rowRect(i))
		}
	case "close":
		g.clickRect(g.shopView.closeRect())
	case "screenshot":
		g.Screenshot(st.Label)
	}
}

func (g *Game) clickRect(r Rect) {
	g.InjectClick(r.X+r.Width/2, r.Y+r.Height/2)
}

func catalogIndex(name string) int {
	for i, c := range catalog {
		if c.Name == name {
			return i
		}
	}
	return -1
}
