// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

import (
	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/util"
)

// DefaultSize is the edge length of an avatar when nothing else is configured
const DefaultSize = 600

// DefaultSmallSpace is the mouth offset used for a canvas of size
func DefaultSmallSpace(size int) int {
	return size / 12
}

// Layer is one fully resolved drawing step
type Layer struct {
	Selection
	Asset     string    `json:"asset"`
	Placement Placement `json:"placement"`
	image     *PixelBuffer
}

// Plan resolves the four layers of an identity in drawing order: face, eyes, mouth, nose
func Plan(id Identity, pools Pools, size, smallSpace int) ([]Layer, error) {
	if size <= 0 {
		return nil, util.NewInvalidArgumentErrorf("avatar size must be positive, got %d", size)
	}

	values := map[Category]uint32{
		CategoryFace:  id.Face,
		CategoryEyes:  id.Eyes,
		CategoryMouth: id.Mouth,
		CategoryNose:  id.Nose,
	}
	layers := make([]Layer, 0, len(Categories))
	for _, c := range Categories {
		pool := pools.Get(c)
		sel, err := Resolve(c, values[c], pool.Len())
		if err != nil {
			return nil, err
		}
		asset := pool.Asset(sel.Index)
		layers = append(layers, Layer{
			Selection: sel,
			Asset:     asset.Name,
			Placement: Layout(sel, asset.Image.Width(), asset.Image.Height(), size, smallSpace),
			image:     asset.Image,
		})
	}
	return layers, nil
}

// Render composites the avatar of id: the recolored face, then eyes, mouth and
// nose, each placed by its variant, and finally the tilt of id.Rotate.
// It is a pure function of its arguments and safe for concurrent use with shared pools.
func Render(id Identity, pools Pools, size, smallSpace int) (*PixelBuffer, error) {
	layers, err := Plan(id, pools, size, smallSpace)
	if err != nil {
		return nil, err
	}

	canvas, err := NewPixelBuffer(size, size)
	if err != nil {
		return nil, err
	}
	for _, l := range layers {
		img := l.image
		if l.Category == CategoryFace {
			img = Recolor(img, Tint(id.Color))
		}
		p := l.Placement
		Draw(canvas, img, p.X, p.Y, p.W, p.H, p.Flip)
		if log.IsTrace() {
			log.Trace("Draw %s %d (%s) at %d,%d size %dx%d flip=%t", l.Category, l.Index, l.Asset, p.X, p.Y, p.W, p.H, p.Flip)
		}
	}

	out, err := NewPixelBuffer(size, size)
	if err != nil {
		return nil, err
	}
	if err := Rotate(out, canvas, id.Angle()); err != nil {
		return nil, err
	}
	return out, nil
}
