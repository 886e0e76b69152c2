package cv

import "math"

// Scan returns every pixel of frame whose channels fall strictly inside the
// range derived from target. Results are in row-major order; an empty result
// means nothing matched.
func Scan(frame *Frame, target Color) []Point {
	r := target.Range()
	matches := []Point{}

	for y := 0; y < frame.Height; y++ {
		row := frame.offset(0, y)
		for x := 0; x < frame.Width; x++ {
			i := row + 4*x
			if r.Contains(frame.Pix[i+2], frame.Pix[i+1], frame.Pix[i]) {
				matches = append(matches, Point{X: x, Y: y})
			}
		}
	}

	return matches
}

// Nearest returns the candidate closest to reference by Euclidean distance.
// Ties keep the first candidate in iteration order. ok is false when there
// are no candidates, so a genuine match at the origin is still reported.
func Nearest(candidates []Point, reference Point) (nearest Point, ok bool) {
	best := math.Inf(1)

	for _, p := range candidates {
		d := distance(p, reference)
		if d < best {
			best = d
			nearest = p
			ok = true
		}
	}

	return nearest, ok
}

func distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
