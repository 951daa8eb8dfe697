// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

import (
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rotate turns src by angle radians about its center and writes the result to
// dst, which must have the same size. Samples are interpolated bilinearly with
// premultiplied alpha, destination pixels not covered by src become transparent.
func Rotate(dst, src *PixelBuffer, angle float32) error {
	if !dst.img.Rect.Eq(src.img.Rect) {
		// dst cannot hold src's pixels
		return ErrDimensionMismatch{Width: src.Width(), Height: src.Height(), Len: len(dst.img.Pix)}
	}
	if angle == 0 {
		copy(dst.img.Pix, src.img.Pix)
		return nil
	}

	clear(dst.img.Pix)
	sin, cos := math.Sincos(float64(angle))
	cx := float64(src.Width()) / 2
	cy := float64(src.Height()) / 2
	// source to destination: translate the center to the origin, rotate, translate back
	s2d := f64.Aff3{
		cos, -sin, cx - cos*cx + sin*cy,
		sin, cos, cy - sin*cx - cos*cy,
	}
	draw.ApproxBiLinear.Transform(dst.img, s2d, src.img, src.img.Bounds(), draw.Src, nil)
	return nil
}
