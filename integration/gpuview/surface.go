// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuview

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/mandelbrot"
)

// SurfaceFormatter reports the window surface format.
// gpucontext.DeviceProvider implements it.
type SurfaceFormatter interface {
	SurfaceFormat() gputypes.TextureFormat
}

// FormatName returns a short name for the surface formats a window commonly
// uses.
func FormatName(f gputypes.TextureFormat) string {
	switch f {
	case gputypes.TextureFormatBGRA8Unorm:
		return "bgra8unorm"
	case gputypes.TextureFormatRGBA8Unorm:
		return "rgba8unorm"
	default:
		return fmt.Sprintf("format(%v)", f)
	}
}

// LogSurface logs the surface format of p at info level. A nil p is ignored.
func LogSurface(p SurfaceFormatter) {
	if p == nil {
		return
	}
	mandelbrot.Logger().Info("gpuview: window surface", "format", FormatName(p.SurfaceFormat()))
}
