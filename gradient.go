package mandelbrot

import "fmt"

// Gradient is the precomputed escape-time palette: MaxIter+1 colors indexed
// by iteration count. The first ramp runs near -> mid, the second mid -> far,
// and the last entry is always far, the color of points that never escaped.
//
// A Gradient is immutable after construction and safe for concurrent reads.
type Gradient struct {
	colors []Color
}

// NewGradient builds the table for maxIter. The first ramp holds
// maxIter - maxIter/2 colors and the second maxIter/2 + 1, so the table
// always has maxIter+1 entries. For even maxIter the entry at maxIter/2 is
// mid.
func NewGradient(maxIter int, near, mid, far Color, space BlendSpace) (*Gradient, error) {
	if maxIter < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, maxIter)
	}
	var mix func(a, b Color, t float64) Color
	switch space {
	case BlendSRGB:
		mix = Color.Lerp
	case BlendLinear:
		mix = Color.LerpLinear
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlendSpace, space)
	}

	half := maxIter / 2
	colors := make([]Color, 0, maxIter+1)
	colors = appendRamp(colors, near, mid, maxIter-half, mix)
	colors = appendRamp(colors, mid, far, half+1, mix)
	colors[maxIter] = far

	return &Gradient{colors: colors}, nil
}

// NewGradientFromConfig builds the gradient described by cfg.
func NewGradientFromConfig(cfg Config) (*Gradient, error) {
	return NewGradient(cfg.MaxIter, cfg.Near, cfg.Mid, cfg.Far, cfg.Blend)
}

// appendRamp appends n colors from -> to with t_i = i/(n-1). A one-color
// ramp is just from.
func appendRamp(dst []Color, from, to Color, n int, mix func(a, b Color, t float64) Color) []Color {
	switch {
	case n <= 0:
		return dst
	case n == 1:
		return append(dst, from)
	}
	last := float64(n - 1)
	for i := 0; i < n; i++ {
		dst = append(dst, mix(from, to, float64(i)/last))
	}
	return dst
}

// Len returns the number of entries, MaxIter()+1.
func (g *Gradient) Len() int {
	return len(g.colors)
}

// MaxIter returns the iteration bound the table was built for.
func (g *Gradient) MaxIter() int {
	return len(g.colors) - 1
}

// At returns the color for an escape time. Out-of-range input is clamped
// into [0, MaxIter()].
func (g *Gradient) At(iter int) Color {
	if iter < 0 {
		iter = 0
	} else if iter >= len(g.colors) {
		iter = len(g.colors) - 1
	}
	return g.colors[iter]
}

// Colors returns a copy of the table.
func (g *Gradient) Colors() []Color {
	out := make([]Color, len(g.colors))
	copy(out, g.colors)
	return out
}
