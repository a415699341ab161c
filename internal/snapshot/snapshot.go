// Package snapshot is a headless display for mandelbrot: the first frame is
// written as PNG and the loop ends.
package snapshot

import (
	"fmt"
	"io"

	"github.com/gogpu/mandelbrot"
)

// Driver implements mandelbrot.Display by saving one frame.
type Driver struct {
	path    string
	w       io.Writer
	written bool
}

// New returns a driver that saves the first frame to path.
func New(path string) *Driver {
	return &Driver{path: path}
}

// NewWriter returns a driver that encodes the first frame to w.
func NewWriter(w io.Writer) *Driver {
	return &Driver{w: w}
}

// ShouldContinue reports true until a frame has been written.
func (d *Driver) ShouldContinue() bool {
	return !d.written
}

// Present writes c as PNG. Later calls do nothing.
func (d *Driver) Present(c *mandelbrot.Canvas) error {
	if d.written {
		return nil
	}
	if d.w != nil {
		if err := c.EncodePNG(d.w); err != nil {
			return fmt.Errorf("snapshot: encode PNG: %w", err)
		}
	} else {
		if err := c.SavePNG(d.path); err != nil {
			return fmt.Errorf("snapshot: save %q: %w", d.path, err)
		}
		mandelbrot.Logger().Info("snapshot saved", "path", d.path, "width", c.Width(), "height", c.Height())
	}
	d.written = true
	return nil
}

// Written reports whether the frame has been written.
func (d *Driver) Written() bool {
	return d.written
}
