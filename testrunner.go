package partsrun

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected key events and screenshots across frames for
// automated play-throughs. Attach to a Game via SetTestRunner.
//
// Supported actions: "keydown" and "keyup" (with "key"), "wait" (with
// "frames") and "screenshot" (with "label").
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Game via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "keydown", "keyup":
			if st.Key == "" {
				return nil, fmt.Errorf("parse test script: step %d: %s without key", i, st.Action)
			}
		case "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the game. The runner's step method
// is called at the start of every Update, before input is sampled.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Game.Update.
// Key steps run back to back within a frame; wait and screenshot end it.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}

frame:
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++

		switch st.Action {
		case "keydown":
			g.InjectKeyDown(st.Key)
		case "keyup":
			g.InjectKeyUp(st.Key)
		case "screenshot":
			g.Screenshot(st.Label)
			break frame
		case "wait":
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
			break frame
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
