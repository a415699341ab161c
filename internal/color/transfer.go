// Package color holds the sRGB transfer curve used when gradient ramps are
// blended in linear light.
//
// Decoding uses a 256-entry table, encoding a 4096-entry table (12-bit
// precision, enough for 8-bit output). Both are built once at init and are
// read-only afterwards, so the lookups are safe for concurrent use.
package color

import "math"

// toLinearLUT maps an sRGB byte to linear light in [0, 1].
var toLinearLUT [256]float32

// toSRGBLUT maps a 12-bit quantized linear value to an sRGB byte.
var toSRGBLUT [4096]uint8

func init() {
	for i := range toLinearLUT {
		toLinearLUT[i] = float32(decode(float64(i) / 255))
	}
	for i := range toSRGBLUT {
		toSRGBLUT[i] = quantize(encode(float64(i) / 4095))
	}
}

// decode is the sRGB EOTF on a normalized component.
func decode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// encode is the sRGB OETF on a normalized component.
func encode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// quantize rounds a normalized component to a byte, clamping to [0, 255].
func quantize(v float64) uint8 {
	n := int(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n) //nolint:gosec // clamped above
}

// ToLinear decodes an sRGB channel byte to linear light.
//
//	ToLinear(128) // ~0.2159, not 0.5
func ToLinear(s uint8) float32 {
	return toLinearLUT[s]
}

// ToSRGB encodes linear light back to an sRGB channel byte.
// Input outside [0, 1] is clamped.
func ToSRGB(l float32) uint8 {
	if l <= 0 {
		return toSRGBLUT[0]
	}
	if l >= 1 {
		return toSRGBLUT[4095]
	}
	return toSRGBLUT[int(l*4095+0.5)]
}

// LerpLinear interpolates two sRGB channel bytes in linear light.
// t is clamped to [0, 1]; the result is monotonic in t and exact at both
// ends.
func LerpLinear(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	la, lb := ToLinear(a), ToLinear(b)
	return ToSRGB(la + (lb-la)*float32(t))
}
