package cv

import "fmt"

// Frame is one captured snapshot of the screen in the capture device's
// native 32-bit layout. Each pixel is 4 bytes: blue at +0, green at +1,
// red at +2, the fourth byte is unused. Rows are Stride bytes apart and may
// carry padding past 4*Width, so indexing must always go through Stride.
type Frame struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// NewFrame wraps pix without copying. The stride is derived from the buffer
// length the way the capture device lays it out (len(pix) / height).
func NewFrame(width, height int, pix []byte) (*Frame, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidFrame, height)
	}
	return NewFrameWithStride(width, height, len(pix)/height, pix)
}

// NewFrameWithStride wraps pix using an explicit row stride.
func NewFrameWithStride(width, height, stride int, pix []byte) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFrame, width, height)
	}
	if stride < 4*width {
		return nil, fmt.Errorf("%w: stride %d shorter than row of %d pixels", ErrInvalidFrame, stride, width)
	}
	if need := stride*(height-1) + 4*width; len(pix) < need {
		return nil, fmt.Errorf("%w: buffer holds %d bytes, need %d", ErrInvalidFrame, len(pix), need)
	}

	return &Frame{Width: width, Height: height, Stride: stride, Pix: pix}, nil
}

// Clone returns a copy that shares no memory with f
func (f *Frame) Clone() *Frame {
	pix := make([]byte, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{Width: f.Width, Height: f.Height, Stride: f.Stride, Pix: pix}
}

// Contains reports whether p addresses a pixel inside the frame
func (f *Frame) Contains(p Point) bool {
	return p.X >= 0 && p.X < f.Width && p.Y >= 0 && p.Y < f.Height
}

func (f *Frame) offset(x, y int) int {
	return f.Stride*y + 4*x
}

// ColorAt reads the pixel at p. The returned color has zero tolerance.
func (f *Frame) ColorAt(p Point) (Color, error) {
	if !f.Contains(p) {
		return Color{}, fmt.Errorf("%w: %v in %dx%d frame", ErrOutOfBounds, p, f.Width, f.Height)
	}

	i := f.offset(p.X, p.Y)
	return Color{
		Red:   f.Pix[i+2],
		Green: f.Pix[i+1],
		Blue:  f.Pix[i],
	}, nil
}
