package mandelbrot

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"blue", Blue},
		{"WHITE", White},
		{" black ", Black},
		{"#0000ff", Blue},
		{"ff8000", RGB(255, 128, 0)},
		{"#fff", White},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "chartreuse", "#12", "#gggggg"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseColor(%q) error = %v, want %v", in, err, ErrUnknownColor)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := Blue.String(); got != "#0000ff" {
		t.Errorf("Blue.String() = %q, want #0000ff", got)
	}
	if got := (Color{R: 1, G: 2, B: 3, A: 4}).String(); got != "#01020304" {
		t.Errorf("String() = %q, want #01020304", got)
	}
}

func TestColorRGBA(t *testing.T) {
	var c color.Color = White
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("White.RGBA() = %x %x %x %x, want all 0xffff", r, g, b, a)
	}
}

func TestColorLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"start", 0, Blue},
		{"end", 1, White},
		{"half", 0.5, RGB(128, 128, 255)},
		{"below", -1, Blue},
		{"above", 2, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blue.Lerp(White, tt.t); got != tt.want {
				t.Errorf("Blue.Lerp(White, %v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestColorLerpLinearEndpoints(t *testing.T) {
	if got := White.LerpLinear(Black, 0); got != White {
		t.Errorf("LerpLinear(0) = %v, want %v", got, White)
	}
	if got := White.LerpLinear(Black, 1); got != Black {
		t.Errorf("LerpLinear(1) = %v, want %v", got, Black)
	}
	// Mid-way in linear light is brighter than mid-way in sRGB.
	if lin, srgb := Black.LerpLinear(White, 0.5), Black.Lerp(White, 0.5); lin.R <= srgb.R {
		t.Errorf("linear midpoint %v should be brighter than sRGB midpoint %v", lin, srgb)
	}
}
