package level

import (
	"github.com/Faultbox/physics-scene/internal/engine/input"
	"github.com/Faultbox/physics-scene/internal/engine/scene"
)

// boost multiplies move and pan speed while left shift is held.
const boost = 4

// ApplyCameraInput moves cam according to one frame of input.
//
// Both side buttons or the middle button pan; a single side button looks
// around. WASD and the wheel fly, Q and E rise and sink, Z and C roll.
// Space restores the recorded start pose.
func ApplyCameraInput(cam *scene.Camera, in input.Snapshot, dt float64) {
	t := cam.Transform
	d := float32(dt)

	move := cam.MoveSpeed * d
	pan := cam.PanSpeed * d
	if in.Pressed(input.KeyLShift) {
		move *= boost
		pan *= boost
	}

	dx, dy := in.MouseDelta.X, in.MouseDelta.Y
	left, middle, right := in.Buttons()
	switch {
	case (left && right) || middle:
		t.MoveLeft(-dx * pan)
		t.MoveUp(-dy * pan)
	case left || right:
		t.RotatePitch(dy * cam.RotationSpeed)
		t.RotateYaw(-dx * cam.RotationSpeed)
	}

	if in.Pressed(input.KeyZ) {
		t.RotateRoll(-cam.RotationSpeed * d)
	} else if in.Pressed(input.KeyC) {
		t.RotateRoll(cam.RotationSpeed * d)
	}

	if in.Pressed(input.KeyW) || in.WheelUp {
		t.MoveFront(-move)
	} else if in.Pressed(input.KeyS) || in.WheelDown {
		t.MoveFront(move)
	}

	if in.Pressed(input.KeyA) {
		t.MoveLeft(-move)
	} else if in.Pressed(input.KeyD) {
		t.MoveLeft(move)
	}

	if in.Pressed(input.KeyQ) {
		t.MoveUp(move)
	} else if in.Pressed(input.KeyE) {
		t.MoveUp(-move)
	}

	if in.Pressed(input.KeySpace) {
		t.ResetTransform()
	}
}
