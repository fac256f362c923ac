package physics

import "errors"

var (
	// ErrNotConnected is returned by calls on a disconnected world.
	ErrNotConnected = errors.New("physics: not connected")

	// ErrUnknownBody is returned for a handle the world never issued.
	ErrUnknownBody = errors.New("physics: unknown body")

	// ErrModeUnsupported is returned by Connect for modes other than Direct.
	ErrModeUnsupported = errors.New("physics: connection mode not supported")

	// ErrShapeNotFound is returned when a shape file is not on any search path.
	ErrShapeNotFound = errors.New("physics: shape file not found")
)
