// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package avatar

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"code.gitea.io/faceavatar/modules/avatar"
	"code.gitea.io/faceavatar/modules/avatar/face"
	"code.gitea.io/faceavatar/modules/cache"
	"code.gitea.io/faceavatar/modules/httpcache"
	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/metrics"
	"code.gitea.io/faceavatar/modules/optional"
	"code.gitea.io/faceavatar/modules/setting"
	"code.gitea.io/faceavatar/modules/util"

	"golang.org/x/sync/singleflight"
)

// Service renders avatars from a fixed set of asset pools
type Service struct {
	pools      face.Pools
	size       int
	smallSpace int

	randMu sync.Mutex
	rand   face.Rand

	cache *cache.Cache[[]byte]
	group singleflight.Group
}

// Options configures a Service, zero values use the defaults
type Options struct {
	Size       int
	SmallSpace int
	// Rand is used for random identifiers and unset values, defaults to face.SystemRand
	Rand face.Rand
	// Cache keeps encoded avatars, nil disables caching
	Cache *cache.Cache[[]byte]
}

// NewService checks the pools and returns a ready service
func NewService(pools face.Pools, opts Options) (*Service, error) {
	if err := pools.Validate(); err != nil {
		return nil, err
	}
	size := util.IfZero(opts.Size, face.DefaultSize)
	if size < 0 {
		return nil, util.NewInvalidArgumentErrorf("avatar size must be positive, got %d", size)
	}
	return &Service{
		pools:      pools,
		size:       size,
		smallSpace: util.IfZero(opts.SmallSpace, face.DefaultSmallSpace(size)),
		rand:       util.IfZero[face.Rand](opts.Rand, face.SystemRand),
		cache:      opts.Cache,
	}, nil
}

// NewServiceFromSetting builds a service from the [avatar] and [cache] settings
func NewServiceFromSetting(pools face.Pools) (*Service, error) {
	return NewService(pools, Options{
		Size:       setting.Avatar.Size,
		SmallSpace: setting.Avatar.SmallSpace,
		Cache:      cache.NewFromSetting[[]byte](setting.CacheService),
	})
}

// Size is the edge length of every rendered avatar
func (s *Service) Size() int {
	return s.size
}

// Pools returns the asset pools the service renders from
func (s *Service) Pools() face.Pools {
	return s.pools
}

// Result is one rendered avatar
type Result struct {
	ID       uint32
	Identity face.Identity
	// Data is the PNG encoded image
	Data []byte
	// ETag is the quoted entity tag of Data
	ETag   string
	Cached bool
}

// Values selects avatar parts field by field, unset fields are random
type Values struct {
	Color  optional.Option[uint32]
	Nose   optional.Option[uint32]
	Eyes   optional.Option[uint32]
	Mouth  optional.Option[uint32]
	Face   optional.Option[uint32]
	Rotate optional.Option[uint32]
}

func (s *Service) randomField(maxValue uint32) uint32 {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return face.RandomField(s.rand, maxValue)
}

// Identity fills the unset fields of v with random values in their packed ranges
func (s *Service) Identity(v Values) face.Identity {
	field := func(o optional.Option[uint32], maxValue uint32) uint32 {
		if o.Has() {
			return o.Value()
		}
		return s.randomField(maxValue)
	}
	return face.Identity{
		Color:  field(v.Color, face.MaxColor),
		Nose:   field(v.Nose, face.MaxNose),
		Eyes:   field(v.Eyes, face.MaxEyes),
		Mouth:  field(v.Mouth, face.MaxMouth),
		Face:   field(v.Face, face.MaxFace),
		Rotate: field(v.Rotate, face.MaxRotate),
	}
}

// ByID renders the avatar of a packed identifier
func (s *Service) ByID(ctx context.Context, id uint32) (*Result, error) {
	return s.render(ctx, metrics.SourceID, face.Decode(id))
}

// ByText renders the avatar of the CRC-32 of text
func (s *Service) ByText(ctx context.Context, text string) (*Result, error) {
	return s.render(ctx, metrics.SourceText, face.Decode(face.FromText(text)))
}

// ByRandom renders the avatar of a random identifier
func (s *Service) ByRandom(ctx context.Context) (*Result, error) {
	s.randMu.Lock()
	id := face.FromRandom(s.rand)
	s.randMu.Unlock()
	return s.render(ctx, metrics.SourceRandom, face.Decode(id))
}

// ByValues renders the avatar of explicit field values, unset fields are random
func (s *Service) ByValues(ctx context.Context, v Values) (*Result, error) {
	return s.render(ctx, metrics.SourceValues, s.Identity(v))
}

// cacheKey is size/smallSpace/id. Identities with fields beyond their packed
// width render differently from their packed id and are keyed by every field.
func (s *Service) cacheKey(ident face.Identity) string {
	prefix := strconv.Itoa(s.size) + "/" + strconv.Itoa(s.smallSpace) + "/"
	id := ident.Encode()
	if face.Decode(id) == ident {
		return prefix + strconv.FormatUint(uint64(id), 10)
	}
	return prefix + fmt.Sprintf("%d-%d-%d-%d-%d-%d", ident.Color, ident.Nose, ident.Eyes, ident.Mouth, ident.Face, ident.Rotate)
}

func (s *Service) render(ctx context.Context, source string, ident face.Identity) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := ident.Encode()
	key := s.cacheKey(ident)
	data, hit, err := s.cache.GetOrLoad(key, func() ([]byte, error) {
		v, err, _ := s.group.Do(key, func() (any, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			start := time.Now()
			buf, err := face.Render(ident, s.pools, s.size, s.smallSpace)
			if err != nil {
				return nil, err
			}
			data, err := avatar.EncodePNG(buf)
			if err != nil {
				return nil, err
			}
			metrics.ObserveRender(source, time.Since(start))
			log.Debug("Rendered avatar %08x (%s) in %v", id, ident, time.Since(start))
			return data, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]byte), nil
	})
	if err != nil {
		return nil, fmt.Errorf("render avatar %08x: %w", id, err)
	}
	if hit {
		metrics.ObserveCacheHit()
	}

	return &Result{
		ID:       id,
		Identity: ident,
		Data:     data,
		ETag:     httpcache.QuoteETag(avatar.HashAvatar(id, s.size, data)),
		Cached:   hit,
	}, nil
}
