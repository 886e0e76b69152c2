package cv

import (
	"fmt"
	"image"
	"math"
)

// FrameFromRGBA converts a Go RGBA image into the capture layout
// (blue, green, red, unused).
//
// Some backends size the image in display points while filling Pix at the
// display's full pixel resolution, leaving Stride and Rect describing a
// smaller image than the buffer holds. When a row of the buffer is longer
// than Stride the real geometry is recovered from the buffer: the backing
// scale k satisfies len(Pix) >= k*k*4*Dx*Dy, and the stride is
// len(Pix) / (k*Dy) as the capture device lays it out.
func FrameFromRGBA(img *image.RGBA) (*Frame, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	stride := img.Stride

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidFrame, width, height)
	}

	if len(img.Pix)/height > stride {
		k := backingScale(len(img.Pix), width, height)
		width, height = k*width, k*height
		stride = len(img.Pix) / height
	}

	pix := make([]byte, len(img.Pix))
	for y := 0; y < height; y++ {
		row := y * stride
		for x := 0; x < width; x++ {
			i := row + 4*x
			if i+3 >= len(img.Pix) {
				return nil, fmt.Errorf("%w: pixel (%d, %d) past end of %d byte buffer", ErrInvalidFrame, x, y, len(img.Pix))
			}
			pix[i] = img.Pix[i+2]
			pix[i+1] = img.Pix[i+1]
			pix[i+2] = img.Pix[i]
			pix[i+3] = img.Pix[i+3]
		}
	}

	return NewFrameWithStride(width, height, stride, pix)
}

// backingScale is the largest whole k for which a k-times larger image of
// width x height fits in n bytes.
func backingScale(n, width, height int) int {
	k := int(math.Sqrt(float64(n) / float64(4*width*height)))
	for k > 1 && k*k*4*width*height > n {
		k--
	}
	if k < 1 {
		k = 1
	}
	return k
}
