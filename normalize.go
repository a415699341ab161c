package mandelbrot

import "fmt"

// Normalize maps pixel index p of the range [0, extent) linearly onto the
// real range starting at a (p == 0) and reaching b at p == extent:
//
//	(b - a) * (p / extent) + a
//
// The result is not clamped and a may be larger than b. Normalize(extent,
// extent, a, b) returns b exactly. It panics if extent is not positive; a
// validated Config never produces such an extent.
func Normalize(p, extent int, a, b float64) float64 {
	if extent <= 0 {
		panic(fmt.Sprintf("mandelbrot: Normalize extent must be positive, got %d", extent))
	}
	if p == extent {
		return b
	}
	return (b-a)*(float64(p)/float64(extent)) + a
}
