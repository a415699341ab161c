package mandelbrot

import (
	"errors"
	"testing"
)

func TestEscapeOriginNeverEscapes(t *testing.T) {
	for _, maxIter := range []int{0, 1, 2, 100, 1000} {
		if got := Escape(0, 0, maxIter); got != maxIter {
			t.Errorf("Escape(0, 0, %d) = %d, want %d", maxIter, got, maxIter)
		}
	}
}

func TestEscapeBoundary(t *testing.T) {
	tests := []struct {
		name    string
		x0, y0  float64
		maxIter int
		want    int
	}{
		// |c| > 2: (0,0) passes the check, the first step lands on c and fails.
		{"far right", 3, 0, 100, 1},
		{"far left", -2.5, 0, 100, 1},
		{"far up", 0, 2.1, 100, 1},
		{"diagonal", 1.5, 1.5, 100, 1},
		// |c|^2 == 4 passes the <= 4 check once more.
		{"on radius", 2, 0, 100, 2},
		// -2 is in the set: z = 0, -2, 2, 2, ...
		{"tip of the set", -2, 0, 100, 100},
		{"cardioid", -0.1, 0.1, 100, 100},
		{"period-2 bulb", -1, 0, 100, 100},
		{"zero budget", 3, 0, 0, 0},
		{"one step budget", 0, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.x0, tt.y0, tt.maxIter); got != tt.want {
				t.Errorf("Escape(%v, %v, %d) = %d, want %d", tt.x0, tt.y0, tt.maxIter, got, tt.want)
			}
		})
	}
}

func TestEscapeOutsideRadiusIsZeroOrOne(t *testing.T) {
	for _, c := range [][2]float64{{2.01, 0}, {0, -2.5}, {-1.9, 1.9}, {10, 10}} {
		if c[0]*c[0]+c[1]*c[1] <= 4 {
			t.Fatalf("test point %v is inside radius 2", c)
		}
		if got := Escape(c[0], c[1], 100); got > 1 {
			t.Errorf("Escape(%v, %v, 100) = %d, want 0 or 1", c[0], c[1], got)
		}
	}
}

func TestNewEvaluatorValidates(t *testing.T) {
	_, err := NewEvaluator(DefaultConfig().WithSize(0, 0))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewEvaluator(0x0) error = %v, want %v", err, ErrInvalidDimensions)
	}
}

func TestEvaluatorCenterPixelInsideSet(t *testing.T) {
	e, err := NewEvaluator(DefaultConfig())
	if err != nil {
		t.Fatalf("NewEvaluator() error = %v", err)
	}
	if got := e.At(400, 300); got != e.MaxIter() {
		t.Errorf("At(400, 300) = %d, want %d", got, e.MaxIter())
	}
	x0, y0 := e.Point(400, 300)
	if y0 != 0 || x0 > -0.76 || x0 < -0.77 {
		t.Errorf("Point(400, 300) = (%v, %v), want about (-0.765, 0)", x0, y0)
	}
}

func TestEvaluatorPixelAtOrigin(t *testing.T) {
	cfg := DefaultConfig().WithSize(10, 10)
	cfg.View = View{XStart: 0, XEnd: 1, YStart: 0, YEnd: 1}
	e, err := NewEvaluator(cfg)
	if err != nil {
		t.Fatalf("NewEvaluator() error = %v", err)
	}
	if got := e.At(0, 0); got != cfg.MaxIter {
		t.Errorf("At(0, 0) at the origin = %d, want %d", got, cfg.MaxIter)
	}
}

func TestEvaluatorReversedXAxis(t *testing.T) {
	e, err := NewEvaluator(DefaultConfig())
	if err != nil {
		t.Fatalf("NewEvaluator() error = %v", err)
	}
	left, _ := e.Point(0, 0)
	right, _ := e.Point(799, 0)
	if left != 0.47 {
		t.Errorf("left edge x0 = %v, want 0.47", left)
	}
	if right >= left {
		t.Errorf("x0 should decrease left to right: x0(0) = %v, x0(799) = %v", left, right)
	}
}

func TestEvaluatorRange(t *testing.T) {
	cfg := DefaultConfig().WithSize(80, 60).WithMaxIter(30)
	e, err := NewEvaluator(cfg)
	if err != nil {
		t.Fatalf("NewEvaluator() error = %v", err)
	}
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if n := e.At(x, y); n < 0 || n > cfg.MaxIter {
				t.Fatalf("At(%d, %d) = %d, out of [0, %d]", x, y, n, cfg.MaxIter)
			}
		}
	}
}

func BenchmarkEscapeInterior(b *testing.B) {
	var n int
	for i := 0; i < b.N; i++ {
		n = Escape(-0.765, 0, 100)
	}
	_ = n
}
