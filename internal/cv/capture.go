package cv

// Capturer is a polling frame provider for the primary display.
// CaptureFrame must not block waiting for a new frame; when none is ready it
// returns ErrFrameNotReady and the caller decides how long to wait.
type Capturer interface {
	CaptureFrame() (*Frame, error)
	GetDimensions() (width, height int)
}
