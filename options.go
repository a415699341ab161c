package mandelbrot

import "time"

// SessionOption configures a Session during creation.
//
// Example:
//
//	s := mandelbrot.NewSession(r, mandelbrot.WithRenderHook(func(d time.Duration) {
//		fmt.Printf("Elapsed time: %v\n", d.Seconds())
//	}))
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	onRender func(time.Duration)
	canvas   *Canvas
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		onRender: nil, // no callback
		canvas:   nil, // Will be created by the renderer if nil
	}
}

// WithRenderHook registers fn to be called with the elapsed time after each
// fractal computation. It runs on the goroutine that called Frame.
func WithRenderHook(fn func(elapsed time.Duration)) SessionOption {
	return func(o *sessionOptions) {
		o.onRender = fn
	}
}

// WithCanvas makes the session render into c instead of a canvas of its own.
// The canvas dimensions must match the renderer's Config; a mismatch
// surfaces as ErrCanvasSize from the first Frame.
func WithCanvas(c *Canvas) SessionOption {
	return func(o *sessionOptions) {
		o.canvas = c
	}
}
