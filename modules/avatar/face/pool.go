// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

import "fmt"

// Category is the kind of facial feature an asset pool holds
type Category int

const (
	CategoryFace Category = iota
	CategoryEyes
	CategoryNose
	CategoryMouth
)

// Categories lists every category in drawing order
var Categories = []Category{CategoryFace, CategoryEyes, CategoryMouth, CategoryNose}

var categoryNames = map[Category]string{
	CategoryFace:  "face",
	CategoryEyes:  "eyes",
	CategoryNose:  "nose",
	CategoryMouth: "mouth",
}

// categoryDirs are the asset directory names used on disk
var categoryDirs = map[Category]string{
	CategoryFace:  "faces",
	CategoryEyes:  "eyes",
	CategoryNose:  "noses",
	CategoryMouth: "mouths",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Dir returns the directory name holding the category's asset files
func (c Category) Dir() string {
	return categoryDirs[c]
}

// Asset is a named image of a pool
type Asset struct {
	Name  string
	Image *PixelBuffer
}

// AssetPool is an immutable, ordered list of assets of one category
type AssetPool struct {
	category Category
	assets   []Asset
}

// NewAssetPool copies assets into a new pool. An empty list fails with
// ErrEmptyAssetPool, a malformed image with ErrDimensionMismatch.
func NewAssetPool(category Category, assets []Asset) (*AssetPool, error) {
	if len(assets) == 0 {
		return nil, ErrEmptyAssetPool{Category: category}
	}
	for _, a := range assets {
		if err := a.Image.Validate(); err != nil {
			return nil, fmt.Errorf("asset %q: %w", a.Name, err)
		}
	}
	return &AssetPool{category: category, assets: append([]Asset(nil), assets...)}, nil
}

// Category returns the category of the pool
func (p *AssetPool) Category() Category {
	return p.category
}

// Len returns the number of assets, zero for a nil pool
func (p *AssetPool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.assets)
}

// Asset returns the i-th asset. The image must not be modified.
func (p *AssetPool) Asset(i int) Asset {
	return p.assets[i]
}

// Names returns the asset names in pool order
func (p *AssetPool) Names() []string {
	names := make([]string, len(p.assets))
	for i, a := range p.assets {
		names[i] = a.Name
	}
	return names
}

// Pools holds one asset pool per category
type Pools struct {
	Face  *AssetPool
	Eyes  *AssetPool
	Nose  *AssetPool
	Mouth *AssetPool
}

// Get returns the pool of category c
func (p Pools) Get(c Category) *AssetPool {
	switch c {
	case CategoryFace:
		return p.Face
	case CategoryEyes:
		return p.Eyes
	case CategoryNose:
		return p.Nose
	case CategoryMouth:
		return p.Mouth
	}
	return nil
}

// Validate fails with ErrEmptyAssetPool for the first missing or empty pool
func (p Pools) Validate() error {
	for _, c := range Categories {
		if p.Get(c).Len() == 0 {
			return ErrEmptyAssetPool{Category: c}
		}
	}
	return nil
}

// Combinations is the number of distinct avatars the pools can produce:
// 256 colors times two geometries for every asset of every pool.
func (p Pools) Combinations() uint64 {
	n := uint64(256)
	for _, c := range Categories {
		n *= uint64(2 * p.Get(c).Len())
	}
	return n
}
