// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

import (
	"image"

	"github.com/disintegration/imaging"
)

// Draw scales src to w x h with nearest-neighbor sampling, mirrors it when flip
// is set and copies it onto dst at (x, y). Alpha works as a mask: transparent
// source pixels keep the destination, any other alpha overwrites it.
// The footprint is clipped to dst, an empty footprint draws nothing.
func Draw(dst, src *PixelBuffer, x, y, w, h int, flip bool) {
	if w <= 0 || h <= 0 {
		return
	}

	layer := src.img
	if w != src.Width() || h != src.Height() {
		layer = imaging.Resize(layer, w, h, imaging.NearestNeighbor)
	}
	if flip {
		layer = imaging.FlipH(layer)
	}

	footprint := image.Rect(x, y, x+w, y+h).Intersect(dst.img.Rect)
	if footprint.Empty() {
		return
	}
	for dy := footprint.Min.Y; dy < footprint.Max.Y; dy++ {
		srcRow := layer.PixOffset(footprint.Min.X-x, dy-y)
		dstRow := dst.img.PixOffset(footprint.Min.X, dy)
		for dx := 0; dx < footprint.Dx(); dx++ {
			s := layer.Pix[srcRow+4*dx : srcRow+4*dx+4 : srcRow+4*dx+4]
			if s[3] == 0 {
				continue
			}
			copy(dst.img.Pix[dstRow+4*dx:dstRow+4*dx+4], s)
		}
	}
}
