package mandelbrot

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/mandelbrot/internal/parallel"
)

// ErrCanvasSize is returned by Render for a canvas whose size differs from
// the renderer's Config.
var ErrCanvasSize = errors.New("mandelbrot: canvas size does not match config")

// Renderer computes full frames: every pixel goes through the Evaluator and
// the Gradient and lands in a Canvas. Rows are split into bands that run on a
// worker pool; the output does not depend on the number of workers.
type Renderer struct {
	cfg       Config
	evaluator *Evaluator
	gradient  *Gradient
	pool      *parallel.WorkerPool // nil renders on the calling goroutine
}

// NewRenderer validates cfg and builds the evaluator, gradient table and
// worker pool. Call Close to stop the pool.
func NewRenderer(cfg Config) (*Renderer, error) {
	evaluator, err := NewEvaluator(cfg)
	if err != nil {
		return nil, err
	}
	gradient, err := NewGradientFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:       cfg,
		evaluator: evaluator,
		gradient:  gradient,
	}
	if cfg.Workers != 1 {
		r.pool = parallel.NewWorkerPool(cfg.Workers)
	}

	Logger().Debug("renderer created",
		"width", cfg.Width,
		"height", cfg.Height,
		"max_iter", cfg.MaxIter,
		"blend", cfg.Blend.String(),
		"workers", r.Workers())
	return r, nil
}

// Config returns the configuration the renderer was built with.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Evaluator returns the escape-time evaluator.
func (r *Renderer) Evaluator() *Evaluator {
	return r.evaluator
}

// Gradient returns the color table.
func (r *Renderer) Gradient() *Gradient {
	return r.gradient
}

// Workers returns the number of goroutines a render fans out to.
func (r *Renderer) Workers() int {
	if r.pool == nil {
		return 1
	}
	return r.pool.Workers()
}

// NewCanvas returns a canvas of the configured size.
func (r *Renderer) NewCanvas() *Canvas {
	// Dimensions were validated by NewRenderer.
	c, _ := NewCanvas(r.cfg.Width, r.cfg.Height)
	return c
}

// Render overwrites every pixel of c and returns the wall-clock time it took.
func (r *Renderer) Render(c *Canvas) (time.Duration, error) {
	if c == nil || c.Width() != r.cfg.Width || c.Height() != r.cfg.Height {
		got := "nil"
		if c != nil {
			got = fmt.Sprintf("%dx%d", c.Width(), c.Height())
		}
		return 0, fmt.Errorf("%w: canvas %s, config %dx%d", ErrCanvasSize, got, r.cfg.Width, r.cfg.Height)
	}

	start := time.Now()
	if r.pool == nil {
		r.renderBand(c, parallel.Band{Y0: 0, Y1: c.Height()})
	} else {
		rows := parallel.BandHeight(c.Height(), r.pool.Workers())
		bands := parallel.SplitRows(c.Height(), rows)
		Logger().Debug("render bands", "bands", len(bands), "rows_per_band", rows)
		tasks := make([]func(), len(bands))
		for i, band := range bands {
			tasks[i] = func() { r.renderBand(c, band) }
		}
		r.pool.ExecuteAll(tasks)
	}
	c.MarkChanged()
	elapsed := time.Since(start)

	Logger().Info("frame rendered",
		"width", c.Width(),
		"height", c.Height(),
		"max_iter", r.cfg.MaxIter,
		"workers", r.Workers(),
		"elapsed", elapsed)
	return elapsed, nil
}

// renderBand writes the rows of one band. Bands never overlap, so concurrent
// calls on the same canvas are safe.
func (r *Renderer) renderBand(c *Canvas, band parallel.Band) {
	for y := band.Y0; y < band.Y1; y++ {
		for x := 0; x < c.width; x++ {
			c.setRaw(x, y, r.gradient.At(r.evaluator.At(x, y)))
		}
	}
}

// Close stops the worker pool. The renderer keeps working afterwards,
// sequentially. Close is idempotent.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}
