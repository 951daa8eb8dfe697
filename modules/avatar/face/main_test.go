// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	red         = color.NRGBA{R: 0xff, A: 0xff}
	green       = color.NRGBA{G: 0xff, A: 0xff}
	blue        = color.NRGBA{B: 0xff, A: 0xff}
	black       = color.NRGBA{A: 0xff}
	white       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	transparent = color.NRGBA{}
)

func newSolid(t testing.TB, w, h int, c color.NRGBA) *PixelBuffer {
	p, err := NewPixelBuffer(w, h)
	require.NoError(t, err)
	p.Fill(c)
	return p
}

func newPool(t testing.TB, category Category, images ...*PixelBuffer) *AssetPool {
	assets := make([]Asset, len(images))
	for i, img := range images {
		assets[i] = Asset{Name: category.String() + string(rune('a'+i)), Image: img}
	}
	pool, err := NewAssetPool(category, assets)
	require.NoError(t, err)
	return pool
}

// newTestPools builds a 24px scene: a white face, black eyes, a green mouth and a blue nose
func newTestPools(t testing.TB) Pools {
	return Pools{
		Face:  newPool(t, CategoryFace, newSolid(t, 24, 24, white)),
		Eyes:  newPool(t, CategoryEyes, newSolid(t, 8, 4, black)),
		Mouth: newPool(t, CategoryMouth, newSolid(t, 2, 2, green)),
		Nose:  newPool(t, CategoryNose, newSolid(t, 1, 1, blue)),
	}
}
