package mandelbrot

import "fmt"

// Escape returns the escape time of c = x0 + i*y0: the number of steps of
// z = z*z + c, starting from z = 0, taken while |z|^2 <= 4 and fewer than
// maxIter steps have been taken. Points of the set return maxIter; a
// maxIter of 0 returns 0 for every point.
func Escape(x0, y0 float64, maxIter int) int {
	var x, y float64
	n := 0
	for x*x+y*y <= 4 && n < maxIter {
		xt := x*x - y*y + x0
		y = 2*x*y + y0
		x = xt
		n++
	}
	return n
}

// Evaluator computes the escape time of canvas pixels for one Config.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	width, height int
	maxIter       int
	view          View
}

// NewEvaluator returns an Evaluator for cfg, or the validation error.
func NewEvaluator(cfg Config) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{
		width:   cfg.Width,
		height:  cfg.Height,
		maxIter: cfg.MaxIter,
		view:    cfg.View,
	}, nil
}

// MaxIter returns the iteration bound; At never returns more.
func (e *Evaluator) MaxIter() int {
	return e.maxIter
}

// Point returns the complex sample for pixel (px, py).
func (e *Evaluator) Point(px, py int) (x0, y0 float64) {
	x0 = Normalize(px, e.width, e.view.XStart, e.view.XEnd)
	y0 = Normalize(py, e.height, e.view.YStart, e.view.YEnd)
	return x0, y0
}

// At returns the escape time of pixel (px, py), in [0, MaxIter()].
func (e *Evaluator) At(px, py int) int {
	x0, y0 := e.Point(px, py)
	return Escape(x0, y0, e.maxIter)
}

func (e *Evaluator) String() string {
	return fmt.Sprintf("Evaluator(%dx%d, maxIter=%d)", e.width, e.height, e.maxIter)
}
