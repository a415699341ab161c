// Command mandelbrot renders the Mandelbrot set.
//
// With no arguments it opens an 800x600 window titled "Mandelbrot Set" and
// exits when the window is closed. -display terminal draws into the terminal
// instead, -display png writes one frame to -out and exits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/internal/snapshot"
	"github.com/gogpu/mandelbrot/internal/terminal"
)

// Display names accepted by -display.
const (
	displayWindow   = "window"
	displayTerminal = "terminal"
	displayPNG      = "png"
)

var errUnknownDisplay = errors.New("unknown display")

// options is the parsed command line.
type options struct {
	cfg     mandelbrot.Config
	display string
	out     string
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("mandelbrot: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	mandelbrot.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer mandelbrot.SetLogger(nil)

	renderer, err := mandelbrot.NewRenderer(opts.cfg)
	if err != nil {
		return err
	}
	defer renderer.Close()

	session := mandelbrot.NewSession(renderer, mandelbrot.WithRenderHook(func(elapsed time.Duration) {
		fmt.Fprintf(stdout, "Elapsed time: %v\n", elapsed.Seconds())
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch opts.display {
	case displayWindow:
		return runWindow(opts.cfg, session)
	case displayTerminal:
		d, err := terminal.Open(opts.cfg)
		if err != nil {
			return err
		}
		defer d.Close()
		return ignoreCanceled(session.Run(ctx, d))
	case displayPNG:
		return ignoreCanceled(session.Run(ctx, snapshot.New(opts.out)))
	default:
		return fmt.Errorf("%w: %q", errUnknownDisplay, opts.display)
	}
}

// ignoreCanceled treats an interrupt as a normal quit.
func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func parseFlags(args []string, output io.Writer) (options, error) {
	def := mandelbrot.DefaultConfig()

	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(output)
	var (
		display    = fs.String("display", displayWindow, "where to show the set: window, terminal or png")
		out        = fs.String("out", "mandelbrot.png", "output file for -display png")
		width      = fs.Int("width", def.Width, "canvas width in pixels")
		height     = fs.Int("height", def.Height, "canvas height in pixels")
		fps        = fs.Int("fps", def.FrameRate, "frame rate of the terminal display")
		iterations = fs.Int("iterations", def.MaxIter, "maximum iterations per pixel")
		near       = fs.String("near", "blue", "color of points that escape at once (name or #rrggbb)")
		mid        = fs.String("mid", "white", "color halfway through the iterations")
		far        = fs.String("far", "black", "color of points that never escape")
		blend      = fs.String("blend", def.Blend.String(), "gradient blend space: srgb or linear")
		workers    = fs.Int("workers", 0, "render goroutines, 0 for GOMAXPROCS")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	switch *display {
	case displayWindow, displayTerminal, displayPNG:
	default:
		return options{}, fmt.Errorf("%w: %q", errUnknownDisplay, *display)
	}

	colors := make([]mandelbrot.Color, 3)
	for i, s := range []string{*near, *mid, *far} {
		c, err := mandelbrot.ParseColor(s)
		if err != nil {
			return options{}, err
		}
		colors[i] = c
	}
	space, err := mandelbrot.ParseBlendSpace(*blend)
	if err != nil {
		return options{}, err
	}

	cfg := def.
		WithSize(*width, *height).
		WithFrameRate(*fps).
		WithMaxIter(*iterations).
		WithColors(colors[0], colors[1], colors[2]).
		WithBlend(space).
		WithWorkers(*workers)
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}

	return options{
		cfg:     cfg,
		display: *display,
		out:     *out,
		verbose: *verbose,
	}, nil
}
