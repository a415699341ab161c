package mandelbrot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Canvas is the off-screen frame: a Width x Height buffer of 8-bit RGBA
// pixels, row-major with a stride of 4*Width bytes. Every pixel the renderer
// writes is opaque, so the buffer is valid both as straight and as
// premultiplied alpha.
//
// Canvas implements image.Image.
type Canvas struct {
	width   int
	height  int
	pix     []uint8 // RGBA, 4 bytes per pixel
	version uint64
}

// NewCanvas creates a canvas of the given size, cleared to transparent black.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int {
	return c.width * 4
}

// Pix returns the raw pixel data. The slice aliases the canvas.
func (c *Canvas) Pix() []uint8 {
	return c.pix
}

// Version is incremented every time the canvas content changes through Set,
// Clear, MarkChanged or a render. Presenters compare it to skip re-uploading
// an unchanged frame.
func (c *Canvas) Version() uint64 {
	return c.version
}

// MarkChanged bumps Version after a direct write to Pix.
func (c *Canvas) MarkChanged() {
	c.version++
}

// Set writes one pixel. Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.setRaw(x, y, col)
	c.version++
}

func (c *Canvas) setRaw(x, y int, col Color) {
	i := (y*c.width + x) * 4
	c.pix[i+0] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
	c.pix[i+3] = col.A
}

// ColorAt returns the pixel at (x, y), or the zero Color outside the canvas.
func (c *Canvas) ColorAt(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Color{}
	}
	i := (y*c.width + x) * 4
	return Color{R: c.pix[i+0], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col Color) {
	for i := 0; i < len(c.pix); i += 4 {
		c.pix[i+0] = col.R
		c.pix[i+1] = col.G
		c.pix[i+2] = col.B
		c.pix[i+3] = col.A
	}
	c.version++
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.ColorAt(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage copies the canvas into a new image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.pix)
	return img
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.EncodePNG(f)
}
