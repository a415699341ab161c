package mandelbrot

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration errors returned by Config.Validate and the constructors that
// call it.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("mandelbrot: invalid dimensions")

	// ErrInvalidIterations is returned for a negative iteration bound.
	ErrInvalidIterations = errors.New("mandelbrot: invalid iteration bound")

	// ErrInvalidFrameRate is returned when the frame rate is not positive.
	ErrInvalidFrameRate = errors.New("mandelbrot: invalid frame rate")

	// ErrInvalidBlendSpace is returned for an unknown BlendSpace.
	ErrInvalidBlendSpace = errors.New("mandelbrot: invalid blend space")
)

// BlendSpace selects how gradient ramps interpolate between endpoints.
type BlendSpace uint8

const (
	// BlendSRGB mixes the 8-bit sRGB channel values directly.
	BlendSRGB BlendSpace = iota
	// BlendLinear mixes in linear light and re-encodes to sRGB.
	BlendLinear
)

func (b BlendSpace) String() string {
	switch b {
	case BlendSRGB:
		return "srgb"
	case BlendLinear:
		return "linear"
	default:
		return fmt.Sprintf("BlendSpace(%d)", uint8(b))
	}
}

// ParseBlendSpace parses "srgb" or "linear" (case-insensitive).
func ParseBlendSpace(s string) (BlendSpace, error) {
	switch strings.ToLower(s) {
	case "srgb":
		return BlendSRGB, nil
	case "linear":
		return BlendLinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBlendSpace, s)
	}
}

// View is the rectangle of the complex plane mapped onto the canvas. XStart
// is the real coordinate of pixel column 0 and XEnd that of column Width;
// likewise for rows. Start may be larger than End.
type View struct {
	XStart, XEnd float64
	YStart, YEnd float64
}

// DefaultView maps x from 0.47 down to -2.00 and y from 1.12 down to -1.12.
// The x bounds run right-to-left, so the image is mirrored relative to the
// usual orientation.
var DefaultView = View{
	XStart: 0.47,
	XEnd:   -2.00,
	YStart: 1.12,
	YEnd:   -1.12,
}

// Config holds every constant of a rendering. It is a value: copies are
// independent and nothing in this package mutates one after construction.
type Config struct {
	// Title is the window (or terminal) title.
	Title string

	// Width and Height are the canvas size in pixels.
	Width, Height int

	// FrameRate is the presentation rate for drivers that pace themselves.
	FrameRate int

	// MaxIter bounds the escape-time loop; the gradient has MaxIter+1 colors.
	MaxIter int

	// Near, Mid and Far are the gradient endpoints: fast escape, halfway,
	// never escaped.
	Near, Mid, Far Color

	// Blend selects the interpolation space of the gradient.
	Blend BlendSpace

	View View

	// Workers is the render pool size. 0 means GOMAXPROCS, 1 renders on the
	// calling goroutine.
	Workers int
}

// DefaultConfig returns the reference configuration: an 800x600 canvas titled
// "Mandelbrot Set", 60 frames per second, 100 iterations, blue -> white ->
// black in sRGB.
func DefaultConfig() Config {
	return Config{
		Title:     "Mandelbrot Set",
		Width:     800,
		Height:    600,
		FrameRate: 60,
		MaxIter:   100,
		Near:      Blue,
		Mid:       White,
		Far:       Black,
		Blend:     BlendSRGB,
		View:      DefaultView,
	}
}

// WithTitle returns a copy of c with the title replaced.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the canvas size replaced.
func (c Config) WithSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

// WithFrameRate returns a copy of c with the frame rate replaced.
func (c Config) WithFrameRate(fps int) Config {
	c.FrameRate = fps
	return c
}

// WithMaxIter returns a copy of c with the iteration bound replaced.
func (c Config) WithMaxIter(n int) Config {
	c.MaxIter = n
	return c
}

// WithColors returns a copy of c with the three gradient endpoints replaced.
func (c Config) WithColors(near, mid, far Color) Config {
	c.Near, c.Mid, c.Far = near, mid, far
	return c
}

// WithBlend returns a copy of c with the blend space replaced.
func (c Config) WithBlend(b BlendSpace) Config {
	c.Blend = b
	return c
}

// WithWorkers returns a copy of c with the pool size replaced.
func (c Config) WithWorkers(n int) Config {
	c.Workers = n
	return c
}

// Validate reports the first problem with c, wrapped around one of the
// configuration errors.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.MaxIter < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, c.MaxIter)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameRate, c.FrameRate)
	}
	if c.Blend != BlendSRGB && c.Blend != BlendLinear {
		return fmt.Errorf("%w: %v", ErrInvalidBlendSpace, c.Blend)
	}
	return nil
}
