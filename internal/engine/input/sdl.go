package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/physics-scene/pkg/math"
)

var scancodes = [keyCount]sdl.Scancode{
	KeyLShift: sdl.SCANCODE_LSHIFT,
	KeyW:      sdl.SCANCODE_W,
	KeyA:      sdl.SCANCODE_A,
	KeyS:      sdl.SCANCODE_S,
	KeyD:      sdl.SCANCODE_D,
	KeyQ:      sdl.SCANCODE_Q,
	KeyE:      sdl.SCANCODE_E,
	KeyZ:      sdl.SCANCODE_Z,
	KeyC:      sdl.SCANCODE_C,
	KeySpace:  sdl.SCANCODE_SPACE,
	KeyEscape: sdl.SCANCODE_ESCAPE,
}

// SDL polls SDL2 events once per frame and exposes the resulting snapshot.
type SDL struct {
	state   Snapshot
	resized bool
	width   int
	height  int
}

// NewSDL creates an SDL input backend. SDL must already be initialized.
func NewSDL() *SDL {
	return &SDL{}
}

// Poll drains pending SDL events and refreshes the snapshot.
// Returns true if the application should quit.
func (i *SDL) Poll() bool {
	var dx, dy int32
	var wheelUp, wheelDown bool
	i.resized = false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.resized = true
				i.width = int(e.Data1)
				i.height = int(e.Data2)
			}

		case *sdl.MouseMotionEvent:
			dx += e.XRel
			dy += e.YRel

		case *sdl.MouseWheelEvent:
			if e.Y > 0 {
				wheelUp = true
			} else if e.Y < 0 {
				wheelDown = true
			}
		}
	}

	var s Snapshot
	keyboard := sdl.GetKeyboardState()
	for k, code := range scancodes {
		if int(code) < len(keyboard) && keyboard[code] != 0 {
			s.keys[k] = true
		}
	}

	_, _, buttons := sdl.GetMouseState()
	s.LeftButton = buttons&sdl.ButtonLMask() != 0
	s.MiddleButton = buttons&sdl.ButtonMMask() != 0
	s.RightButton = buttons&sdl.ButtonRMask() != 0

	// SDL reports Y growing downward; the camera expects Y up.
	s.MouseDelta = math.Vec2{X: float32(dx), Y: float32(-dy)}
	s.WheelUp = wheelUp
	s.WheelDown = wheelDown

	i.state = s
	return false
}

// Snapshot returns the state captured by the last Poll.
func (i *SDL) Snapshot() Snapshot {
	return i.state
}

// Resized reports whether the window was resized during the last Poll,
// and the new size.
func (i *SDL) Resized() (bool, int, int) {
	return i.resized, i.width, i.height
}
