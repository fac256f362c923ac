// Package input provides per-frame input snapshots, polled from SDL2 or
// supplied statically for headless runs.
package input

import "github.com/Faultbox/physics-scene/pkg/math"

// Key identifies a keyboard key the level reacts to.
type Key int

// Keys the level reacts to.
const (
	KeyLShift Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyZ
	KeyC
	KeySpace
	KeyEscape
	keyCount
)

var keyNames = [...]string{"LShift", "W", "A", "S", "D", "Q", "E", "Z", "C", "Space", "Escape"}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Snapshot is the input state for one frame.
type Snapshot struct {
	keys         [keyCount]bool
	MouseDelta   math.Vec2 // Pixels moved since last frame, Y up
	LeftButton   bool
	MiddleButton bool
	RightButton  bool
	WheelUp      bool
	WheelDown    bool
}

// Pressed reports whether k is held.
func (s Snapshot) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.keys[k]
}

// WithKeys returns a copy of s with the given keys held.
func (s Snapshot) WithKeys(keys ...Key) Snapshot {
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			s.keys[k] = true
		}
	}
	return s
}

// Buttons returns the left, middle and right mouse button states.
func (s Snapshot) Buttons() (left, middle, right bool) {
	return s.LeftButton, s.MiddleButton, s.RightButton
}

// Static is a backend that always returns the same snapshot.
type Static struct {
	State Snapshot
}

// Snapshot returns the fixed state.
func (s *Static) Snapshot() Snapshot {
	return s.State
}
