package main

import (
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/integration/gpuview"
)

// runWindow shows the session in a gogpu window until it is closed or Esc
// is pressed. Redraws are event-driven and paced by gogpu.
func runWindow(cfg mandelbrot.Config, session *mandelbrot.Session) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(false))

	view := gpuview.New()
	frame := 0

	app.OnDraw(func(dc *gogpu.Context) {
		if frame == 0 {
			mandelbrot.Logger().Info("window opened", "backend", dc.Backend(), "width", dc.Width(), "height", dc.Height())
			if provider := app.GPUContextProvider(); provider != nil {
				gpuview.LogSurface(provider)
			}
		}
		frame++

		target := gpuview.FromTextureDrawer(dc.AsTextureDrawer())
		if err := session.Frame(view.Presenter(target)); err != nil {
			// A dropped frame is not fatal; the next redraw tries again.
			mandelbrot.Logger().Warn("frame dropped", "frame", frame, "err", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeyEscape {
			app.Quit()
		}
	})

	app.OnClose(func() {
		_ = view.Close()
		mandelbrot.Logger().Debug("window closed", "frames", session.Frames())
	})

	return app.Run()
}
