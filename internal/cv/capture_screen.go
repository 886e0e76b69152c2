//go:build !windows

package cv

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// ScreenCapture grabs the primary display through the screenshot package
type ScreenCapture struct {
	rect image.Rectangle

	// Measured frame size in pixels. On HiDPI displays this is larger than
	// rect, which the backend reports in points.
	width  int
	height int
}

// NewPrimaryDisplayCapturer opens a capture session on the primary display
func NewPrimaryDisplayCapturer() (Capturer, error) {
	rect, err := screenshot.ScreenRect()
	if err != nil {
		return nil, fmt.Errorf("couldn't find primary display: %w", err)
	}
	if rect.Empty() {
		return nil, fmt.Errorf("primary display has empty bounds %v", rect)
	}

	sc := &ScreenCapture{rect: rect}
	frame, err := sc.CaptureFrame()
	if err != nil {
		return nil, fmt.Errorf("failed to measure primary display: %w", err)
	}
	sc.width, sc.height = frame.Width, frame.Height

	return sc, nil
}

// CaptureFrame grabs the whole display. The screenshot backend always
// returns a complete image, so it never reports ErrFrameNotReady.
func (sc *ScreenCapture) CaptureFrame() (*Frame, error) {
	img, err := screenshot.CaptureRect(sc.rect)
	if err != nil {
		return nil, err
	}

	return FrameFromRGBA(img)
}

// GetDimensions returns the display size in pixels, measured from a frame
func (sc *ScreenCapture) GetDimensions() (width, height int) {
	return sc.width, sc.height
}
