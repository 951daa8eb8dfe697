// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package avatar

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"testing"
	"time"

	"code.gitea.io/faceavatar/modules/avatar/face"
	"code.gitea.io/faceavatar/modules/cache"
	"code.gitea.io/faceavatar/modules/json"
	"code.gitea.io/faceavatar/modules/optional"
	"code.gitea.io/faceavatar/modules/setting"
	"code.gitea.io/faceavatar/modules/test"
	"code.gitea.io/faceavatar/modules/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newSolidAsset(t *testing.T, name string, w, h int, c color.NRGBA) face.Asset {
	p, err := face.NewPixelBuffer(w, h)
	require.NoError(t, err)
	p.Fill(c)
	return face.Asset{Name: name, Image: p}
}

func newTestPools(t *testing.T) face.Pools {
	pool := func(c face.Category, assets ...face.Asset) *face.AssetPool {
		p, err := face.NewAssetPool(c, assets)
		require.NoError(t, err)
		return p
	}
	return face.Pools{
		Face: pool(face.CategoryFace,
			newSolidAsset(t, "round", 24, 24, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
			newSolidAsset(t, "square", 24, 24, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})),
		Eyes:  pool(face.CategoryEyes, newSolidAsset(t, "dots", 8, 4, color.NRGBA{A: 0xff})),
		Mouth: pool(face.CategoryMouth, newSolidAsset(t, "smile", 2, 2, color.NRGBA{G: 0xff, A: 0xff})),
		Nose:  pool(face.CategoryNose, newSolidAsset(t, "button", 1, 1, color.NRGBA{B: 0xff, A: 0xff})),
	}
}

func newTestService(t *testing.T, opts Options) *Service {
	opts.Size = util.IfZero(opts.Size, 24)
	s, err := NewService(newTestPools(t), opts)
	require.NoError(t, err)
	return s
}

func TestNewService(t *testing.T) {
	_, err := NewService(face.Pools{}, Options{})
	assert.True(t, face.IsErrEmptyAssetPool(err))

	s := newTestService(t, Options{})
	assert.Equal(t, 24, s.Size())
	assert.Equal(t, 2, s.smallSpace)

	_, err = NewService(newTestPools(t), Options{Size: -1})
	assert.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestNewServiceFromSetting(t *testing.T) {
	defer test.MockVariableValue(&setting.Avatar.Size, 24)()
	defer test.MockVariableValue(&setting.Avatar.SmallSpace, 3)()
	defer test.MockVariableValue(&setting.CacheService, setting.Cache{Enabled: true, Size: 4, TTL: time.Minute})()

	s, err := NewServiceFromSetting(newTestPools(t))
	require.NoError(t, err)
	assert.Equal(t, 24, s.Size())
	assert.Equal(t, 3, s.smallSpace)
	require.NotNil(t, s.cache)

	_, err = s.ByID(t.Context(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, s.cache.Len())

	setting.CacheService.Enabled = false
	s, err = NewServiceFromSetting(newTestPools(t))
	require.NoError(t, err)
	assert.Nil(t, s.cache)
}

func TestByID(t *testing.T) {
	s := newTestService(t, Options{Cache: cache.New[[]byte](16, time.Minute)})

	r, err := s.ByID(t.Context(), 0x784DD132)
	require.NoError(t, err)
	assert.EqualValues(t, 0x784DD132, r.ID)
	assert.Equal(t, face.Decode(0x784DD132), r.Identity)
	assert.False(t, r.Cached)
	assert.Len(t, r.ETag, 66)
	assert.Equal(t, byte('"'), r.ETag[0])

	img, err := png.Decode(bytes.NewReader(r.Data))
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())

	again, err := s.ByID(t.Context(), 0x784DD132)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, r.Data, again.Data)
	assert.Equal(t, r.ETag, again.ETag)
}

func TestByText(t *testing.T) {
	s := newTestService(t, Options{})
	r, err := s.ByText(t.Context(), "Test")
	require.NoError(t, err)
	assert.EqualValues(t, 0x784DD132, r.ID)

	byID, err := s.ByID(t.Context(), 0x784DD132)
	require.NoError(t, err)
	assert.Equal(t, r.Data, byID.Data)
}

func TestByRandom(t *testing.T) {
	a := newTestService(t, Options{Rand: face.NewRand(42)})
	b := newTestService(t, Options{Rand: face.NewRand(42)})
	ra, err := a.ByRandom(t.Context())
	require.NoError(t, err)
	rb, err := b.ByRandom(t.Context())
	require.NoError(t, err)
	assert.Equal(t, ra.ID, rb.ID)
	assert.Equal(t, ra.Data, rb.Data)
}

func TestByValues(t *testing.T) {
	s := newTestService(t, Options{Rand: face.NewRand(7)})

	r, err := s.ByValues(t.Context(), ValuesFromID(0x784DD132))
	require.NoError(t, err)
	assert.EqualValues(t, 0x784DD132, r.ID)

	for range 50 {
		r, err = s.ByValues(t.Context(), Values{Face: optional.Some[uint32](1), Rotate: optional.Some[uint32](7)})
		require.NoError(t, err)
		assert.EqualValues(t, 1, r.Identity.Face)
		assert.EqualValues(t, 7, r.Identity.Rotate)
		assert.LessOrEqual(t, r.Identity.Color, uint32(face.MaxColor))
		assert.LessOrEqual(t, r.Identity.Nose, uint32(face.MaxNose))
		assert.LessOrEqual(t, r.Identity.Eyes, uint32(face.MaxEyes))
		assert.LessOrEqual(t, r.Identity.Mouth, uint32(face.MaxMouth))
	}
}

func TestCacheKey(t *testing.T) {
	s := newTestService(t, Options{})
	assert.Equal(t, "24/2/5", s.cacheKey(face.Decode(5)))
	// face 33 is packed as 1 but selects another bucket
	assert.Equal(t, "24/2/0-0-0-0-33-0", s.cacheKey(face.Identity{Face: 33}))
}

func TestRenderCanceled(t *testing.T) {
	s := newTestService(t, Options{})
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, err := s.ByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentRenders(t *testing.T) {
	s := newTestService(t, Options{Cache: cache.New[[]byte](4, time.Minute)})
	expected, err := s.ByID(t.Context(), 0xCAFE)
	require.NoError(t, err)
	s.cache.Purge()

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			r, err := s.ByID(t.Context(), 0xCAFE)
			if err != nil {
				return err
			}
			assert.Equal(t, expected.Data, r.Data)
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDescribe(t *testing.T) {
	s := newTestService(t, Options{})
	d, err := s.Describe(ValuesFromID(0x784DD132))
	require.NoError(t, err)
	assert.EqualValues(t, 0x784DD132, d.ID)
	assert.Equal(t, "784dd132", d.Hex)
	assert.InDelta(t, 0, d.Angle, 1e-6)
	require.Len(t, d.Layers, 4)
	for i, c := range face.Categories {
		assert.Equal(t, c, d.Layers[i].Category)
	}
	// face 16 over a pool of 2: index 0, bucket 8
	assert.Equal(t, "round", d.Layers[0].Asset)
	assert.EqualValues(t, 8, d.Layers[0].Bucket)

	d, err = s.Describe(Values{Color: optional.Some[uint32](0)})
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", d.Tint)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tint":"#ff0000"`)
	assert.Contains(t, string(data), `"category":"face"`)
}
