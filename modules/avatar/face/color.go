// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

import (
	"image/color"
	"math"
)

// HSIToRGB converts hue (fraction of a full turn), saturation and intensity to
// an opaque color. Channels are clamped to [0, 1] and scaled to 0..255, truncating.
func HSIToRGB(hue, saturation, intensity float64) color.NRGBA {
	h := hue - math.Floor(hue)
	h *= 2 * math.Pi
	s := saturation
	i := intensity

	// each third of the circle has one channel at its minimum
	var r, g, b float64
	switch {
	case h < 2*math.Pi/3:
		b = i * (1 - s)
		r = i * (1 + s*math.Cos(h)/math.Cos(math.Pi/3-h))
		g = 3*i - (r + b)
	case h < 4*math.Pi/3:
		h -= 2 * math.Pi / 3
		r = i * (1 - s)
		g = i * (1 + s*math.Cos(h)/math.Cos(math.Pi/3-h))
		b = 3*i - (r + g)
	default:
		h -= 4 * math.Pi / 3
		g = i * (1 - s)
		b = i * (1 + s*math.Cos(h)/math.Cos(math.Pi/3-h))
		r = 3*i - (g + b)
	}
	return color.NRGBA{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b), A: 0xff}
}

func unitToByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v * 255)
}

// Tint is the face color of an identity color value, only its low 8 bits count
func Tint(c uint32) color.NRGBA {
	return HSIToRGB(float64(c%256)/256, 1, 1)
}

// Recolor returns a copy of src whose visible pixels are multiplied channel-wise
// by tint: c = c*tint/255. Transparent pixels are copied unchanged.
func Recolor(src *PixelBuffer, tint color.NRGBA) *PixelBuffer {
	dst := src.Clone()
	pix := dst.img.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		pix[i+0] = uint8(uint16(pix[i+0]) * uint16(tint.R) / 255)
		pix[i+1] = uint8(uint16(pix[i+1]) * uint16(tint.G) / 255)
		pix[i+2] = uint8(uint16(pix[i+2]) * uint16(tint.B) / 255)
	}
	return dst
}
