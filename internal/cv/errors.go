package cv

import "errors"

var (
	// ErrFrameNotReady is the only retryable capture condition.
	ErrFrameNotReady = errors.New("frame not ready")

	// ErrInvalidFrame reports a buffer that cannot hold the declared geometry
	ErrInvalidFrame = errors.New("invalid frame")

	// ErrOutOfBounds reports a pixel read outside the frame
	ErrOutOfBounds = errors.New("coordinates out of bounds")
)
