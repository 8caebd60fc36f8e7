// Package stroke converts raw pointer samples into the compact form sent to
// the backend: quantized points, thinned strokes and bounding rectangles.
//
// Quantization is lossy and one-way. It is applied when a stroke is encoded
// for transmission; the in-memory samples a caller holds are never modified.
package stroke

import "math"

const (
	// DefaultPressure is used when the input device reports no pressure.
	DefaultPressure = 1.0

	// MinPointDistance is the thinning threshold used by Optimize. An interior
	// point survives only if it lies strictly farther than this from the raw
	// point sampled right before it.
	MinPointDistance = 2.0

	coordScale    = 100 // two decimal places
	pressureScale = 10  // one decimal place
)

// Point is a single pointer sample.
type Point struct {
	X        float64
	Y        float64
	Pressure float64
}

// NewPoint returns a sample with full pressure.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, Pressure: DefaultPressure}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Compress quantizes x and y to two decimal places and pressure to one.
// Rounding is half away from zero. Compress is idempotent.
func Compress(p Point) Point {
	return Point{
		X:        round(p.X, coordScale),
		Y:        round(p.Y, coordScale),
		Pressure: round(p.Pressure, pressureScale),
	}
}

func round(v float64, scale float64) float64 {
	return math.Round(v*scale) / scale
}

// Distance returns the Euclidean distance between a and b in the plane.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Optimize thins a stroke in a single greedy pass and compresses what it
// keeps.
//
// The first and last samples are always kept. An interior sample is kept only
// if its distance from the immediately preceding raw sample exceeds
// MinPointDistance; the comparison is never made against earlier kept points,
// so dropped samples are not re-evaluated. This is not a globally optimal
// simplification such as Douglas-Peucker.
//
// The input slice is not modified.
func Optimize(points []Point) []Point {
	n := len(points)
	switch n {
	case 0:
		return []Point{}
	case 1:
		return []Point{Compress(points[0])}
	}

	out := make([]Point, 0, n)
	out = append(out, Compress(points[0]))
	for i := 1; i < n-1; i++ {
		if Distance(points[i], points[i-1]) > MinPointDistance {
			out = append(out, Compress(points[i]))
		}
	}
	out = append(out, Compress(points[n-1]))
	return out
}

// Bounds returns the smallest rectangle covering every point.
//
// A single point gives a zero-area rectangle located at that point; an empty
// slice gives the zero Rect.
func Bounds(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
