// Package terminal is a text-mode display for mandelbrot: the canvas is
// scaled onto the cell grid of a tcell screen, two pixel rows per cell, with
// the upper half block drawn in truecolor.
package terminal

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/gogpu/mandelbrot"
)

// halfBlock paints the top half of a cell in the foreground color; the
// background color fills the bottom half.
const halfBlock = '▀'

// Driver implements mandelbrot.Display on a tcell screen.
type Driver struct {
	screen tcell.Screen
	events chan tcell.Event
	ticker *time.Ticker
	done   chan struct{}

	// Scaled frame cache, keyed by target size and canvas version.
	scaled  *image.NRGBA
	version uint64

	closeOnce sync.Once
}

// Open creates the terminal screen and wraps it in a Driver.
func Open(cfg mandelbrot.Config) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	return New(screen, cfg)
}

// New initializes screen and starts polling it for input. Frames are paced
// at cfg.FrameRate.
func New(screen tcell.Screen, cfg mandelbrot.Config) (*Driver, error) {
	if cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("%w: %d", mandelbrot.ErrInvalidFrameRate, cfg.FrameRate)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	screen.SetTitle(cfg.Title)
	screen.HideCursor()
	screen.Clear()

	d := &Driver{
		screen: screen,
		events: make(chan tcell.Event, 16),
		ticker: time.NewTicker(time.Second / time.Duration(cfg.FrameRate)),
		done:   make(chan struct{}),
	}
	go d.poll()

	w, h := screen.Size()
	mandelbrot.Logger().Debug("terminal: screen ready", "cols", w, "rows", h, "fps", cfg.FrameRate)
	return d, nil
}

// poll forwards screen events until the screen is finalized.
func (d *Driver) poll() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			close(d.events)
			return
		}
		select {
		case d.events <- ev:
		case <-d.done:
			return
		}
	}
}

// ShouldContinue waits for the next frame tick, handling input meanwhile.
// It returns false on Esc, Ctrl-C or 'q', and after the screen went away.
func (d *Driver) ShouldContinue() bool {
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				return false
			}
			if quit := d.handle(ev); quit {
				return false
			}
		case <-d.ticker.C:
			return true
		case <-d.done:
			return false
		}
	}
}

func (d *Driver) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q' || ev.Rune() == 'Q'
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		mandelbrot.Logger().Debug("terminal: resized", "cols", w, "rows", h)
		d.screen.Sync()
	}
	return false
}

// Present scales c onto the whole screen and shows it. Re-scaling only
// happens when the screen size or the canvas changed.
func (d *Driver) Present(c *mandelbrot.Canvas) error {
	cols, rows := d.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	frame := d.scale(c, cols, rows*2)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := frame.NRGBAAt(x, 2*y)
			bottom := frame.NRGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			d.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	d.screen.Show()
	return nil
}

// scale returns c resized to w x h pixels, reusing the previous result when
// nothing changed.
func (d *Driver) scale(c *mandelbrot.Canvas, w, h int) *image.NRGBA {
	if d.scaled != nil && d.version == c.Version() &&
		d.scaled.Rect.Dx() == w && d.scaled.Rect.Dy() == h {
		return d.scaled
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	src := c.ToImage()
	if src.Rect.Eq(dst.Rect) {
		draw.Copy(dst, image.Point{}, src, src.Rect, draw.Src, nil)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
	}

	d.scaled = dst
	d.version = c.Version()
	return dst
}

// Close restores the terminal. Close is idempotent.
func (d *Driver) Close() error {
	d.closeOnce.Do(func() {
		close(d.done)
		d.ticker.Stop()
		d.screen.Fini()
	})
	return nil
}
