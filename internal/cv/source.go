package cv

import (
	"errors"
	"fmt"
	"time"
)

// DefaultRetryDelay is one frame at 60 Hz
const DefaultRetryDelay = time.Second / 60

// Source hands out complete frames from a Capturer. It spins on
// ErrFrameNotReady and treats any other capture error as fatal.
type Source struct {
	capturer   Capturer
	retryDelay time.Duration
	sleep      func(time.Duration)
}

// NewSource creates a frame source polling at DefaultRetryDelay
func NewSource(capturer Capturer) *Source {
	return &Source{
		capturer:   capturer,
		retryDelay: DefaultRetryDelay,
		sleep:      time.Sleep,
	}
}

// WithRetryDelay overrides the wait between not-ready polls
func (s *Source) WithRetryDelay(d time.Duration) *Source {
	if d > 0 {
		s.retryDelay = d
	}
	return s
}

// GetDimensions returns the capture dimensions
func (s *Source) GetDimensions() (width, height int) {
	return s.capturer.GetDimensions()
}

// NextFrame blocks until the capturer produces a full frame and returns a
// copy owned by the caller.
func (s *Source) NextFrame() (*Frame, error) {
	for {
		frame, err := s.capturer.CaptureFrame()
		if errors.Is(err, ErrFrameNotReady) {
			s.sleep(s.retryDelay)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to capture frame: %w", err)
		}

		return frame.Clone(), nil
	}
}
