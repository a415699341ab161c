package mandelbrot

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Presenter shows a finished canvas: on screen, in a terminal, in a file.
type Presenter interface {
	Present(c *Canvas) error
}

// Display is a Presenter that also paces the frame loop. ShouldContinue
// blocks until the next frame is due and reports false once the user asked
// to quit.
type Display interface {
	Presenter
	ShouldContinue() bool
}

// Session ties a Renderer to a cached Canvas. The fractal is computed on the
// first frame only; later frames present the cached canvas again. The view
// never changes, so nothing ever marks the session dirty a second time.
//
// Frame may be called from a display's draw callback (push-style drivers)
// and Run drives pull-style displays. A Session is safe for concurrent use.
type Session struct {
	renderer *Renderer
	onRender func(time.Duration)

	mu      sync.Mutex
	canvas  *Canvas
	dirty   bool
	frames  uint64
	renders int
}

// NewSession returns a session that renders with r on its first frame.
func NewSession(r *Renderer, opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	canvas := o.canvas
	if canvas == nil {
		canvas = r.NewCanvas()
	}
	return &Session{
		renderer: r,
		onRender: o.onRender,
		canvas:   canvas,
		dirty:    true,
	}
}

// Frame renders the canvas if it is dirty and hands it to p. A nil p only
// renders. A render error leaves the session dirty so the next frame tries
// again.
func (s *Session) Frame(p Presenter) error {
	s.mu.Lock()
	if s.dirty {
		elapsed, err := s.renderer.Render(s.canvas)
		if err != nil {
			s.mu.Unlock()
			return fmt.Errorf("render: %w", err)
		}
		s.dirty = false
		s.renders++
		if s.onRender != nil {
			s.onRender(elapsed)
		}
	}
	s.frames++
	canvas := s.canvas
	s.mu.Unlock()

	if p == nil {
		return nil
	}
	if err := p.Present(canvas); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Run drives d until it stops asking for frames or ctx is done. It returns
// nil after a normal quit, ctx.Err() after cancellation, and the first
// render or present error otherwise.
func (s *Session) Run(ctx context.Context, d Display) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.ShouldContinue() {
			Logger().Debug("display requested quit", "frames", s.Frames())
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Frame(d); err != nil {
			return err
		}
	}
}

// Canvas returns the cached canvas.
func (s *Session) Canvas() *Canvas {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas
}

// Dirty reports whether the next frame will compute the fractal.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Frames returns the number of frames produced so far.
func (s *Session) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Renders returns how many times the fractal was computed: 0 before the
// first frame, 1 afterwards.
func (s *Session) Renders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders
}
