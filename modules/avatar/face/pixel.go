// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// PixelBuffer is a row-major, non-premultiplied 8-bit RGBA raster with its origin at the top-left.
// The pixel storage always holds exactly Width*Height pixels with no row padding.
type PixelBuffer struct {
	img *image.NRGBA
}

// NewPixelBuffer allocates a fully transparent buffer
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, ErrDimensionMismatch{Width: width, Height: height}
	}
	return &PixelBuffer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}, nil
}

// FromNRGBA wraps img without copying. It fails with ErrDimensionMismatch unless
// img starts at the origin and its storage is exactly 4*width*height bytes.
func FromNRGBA(img *image.NRGBA) (*PixelBuffer, error) {
	if img == nil {
		return nil, ErrDimensionMismatch{}
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Rect.Min != (image.Point{}) || img.Stride != 4*w || len(img.Pix) != 4*w*h {
		return nil, ErrDimensionMismatch{Width: w, Height: h, Len: len(img.Pix)}
	}
	return &PixelBuffer{img: img}, nil
}

// FromImage converts any decoded image into a new buffer
func FromImage(img image.Image) *PixelBuffer {
	return &PixelBuffer{img: imaging.Clone(img)}
}

// Width of the buffer in pixels
func (p *PixelBuffer) Width() int {
	return p.img.Rect.Dx()
}

// Height of the buffer in pixels
func (p *PixelBuffer) Height() int {
	return p.img.Rect.Dy()
}

// Image exposes the underlying raster, writes to it are visible in the buffer
func (p *PixelBuffer) Image() *image.NRGBA {
	return p.img
}

// At returns the pixel at (x, y), coordinates outside the buffer give a transparent pixel
func (p *PixelBuffer) At(x, y int) color.NRGBA {
	return p.img.NRGBAAt(x, y)
}

// Set writes the pixel at (x, y), coordinates outside the buffer are ignored
func (p *PixelBuffer) Set(x, y int, c color.NRGBA) {
	p.img.SetNRGBA(x, y, c)
}

// Fill sets every pixel to c
func (p *PixelBuffer) Fill(c color.NRGBA) {
	pix := p.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Clone returns a deep copy
func (p *PixelBuffer) Clone() *PixelBuffer {
	img := image.NewNRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return &PixelBuffer{img: img}
}

// Equal reports whether both buffers have the same size and pixels
func (p *PixelBuffer) Equal(o *PixelBuffer) bool {
	return p.img.Rect.Eq(o.img.Rect) && bytes.Equal(p.img.Pix, o.img.Pix)
}

// Validate checks the storage invariant, the raster fields may have been changed through Image
func (p *PixelBuffer) Validate() error {
	if p == nil {
		return ErrDimensionMismatch{}
	}
	_, err := FromNRGBA(p.img)
	return err
}
