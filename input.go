package partsrun

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a logical movement input.
type Action uint8

const (
	ActionUp    Action = iota // move toward -Y
	ActionDown                // move toward +Y
	ActionLeft                // move toward -X
	ActionRight               // move toward +X
)

// actionKeys lists the lower-cased key identifiers bound to each action.
var actionKeys = [...][2]string{
	ActionUp:    {"arrowup", "w"},
	ActionDown:  {"arrowdown", "s"},
	ActionLeft:  {"arrowleft", "a"},
	ActionRight: {"arrowright", "d"},
}

// String returns the action's name.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return "unknown"
	}
}

// KeyState tracks which keys are currently held. Keys are normalized to lower
// case on write and read. Keys with no action binding are stored and ignored.
type KeyState struct {
	held map[string]bool
}

// NewKeyState returns an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{held: make(map[string]bool)}
}

// Press marks key as held.
func (k *KeyState) Press(key string) {
	k.held[strings.ToLower(key)] = true
}

// Release marks key as no longer held.
func (k *KeyState) Release(key string) {
	k.held[strings.ToLower(key)] = false
}

// Held reports whether key is currently held.
func (k *KeyState) Held(key string) bool {
	return k.held[strings.ToLower(key)]
}

// Active reports whether any key bound to a is held.
func (k *KeyState) Active(a Action) bool {
	if int(a) >= len(actionKeys) {
		return false
	}
	for _, key := range actionKeys[a] {
		if k.held[key] {
			return true
		}
	}
	return false
}

// Reset releases every key.
func (k *KeyState) Reset() {
	clear(k.held)
}

// KeyName returns the normalized identifier for an Ebitengine key, matching
// browser key names in lower case ("arrowup", "w").
func KeyName(key ebiten.Key) string {
	return strings.ToLower(key.String())
}

// --- Ebitengine polling ---

// keyPoller reads this frame's key transitions from Ebitengine into a
// KeyState. The buffer is reused across frames.
type keyPoller struct {
	buf []ebiten.Key
}

// poll applies presses before releases, so a key tapped within a single tick
// ends the tick released.
func (p *keyPoller) poll(ks *KeyState) {
	p.buf = inpututil.AppendJustPressedKeys(p.buf[:0])
	for _, key := range p.buf {
		ks.Press(KeyName(key))
	}
	p.buf = inpututil.AppendJustReleasedKeys(p.buf[:0])
	for _, key := range p.buf {
		ks.Release(KeyName(key))
	}
}
