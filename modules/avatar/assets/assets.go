// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package assets loads the facial feature images from disk into asset pools.
//
// The asset directory holds one sub-directory per category:
//
//	faces/  eyes/  noses/  mouths/
//
// Files are matched by name with a glob and sorted, so the pool order and
// therefore every identifier keeps its meaning as long as the files do not change.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"runtime"
	"slices"

	"code.gitea.io/faceavatar/modules/avatar"
	"code.gitea.io/faceavatar/modules/avatar/face"
	"code.gitea.io/faceavatar/modules/log"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// Matcher selects asset files by their base name
type Matcher interface {
	Match(name string) bool
}

// LoadPools reads all four pools below dir
func LoadPools(dir string, matcher Matcher) (face.Pools, error) {
	log.Info("Loading avatar assets from %s", dir)
	return LoadPoolsFS(os.DirFS(dir), matcher)
}

// LoadPoolsFS reads all four pools from fsys
func LoadPoolsFS(fsys fs.FS, matcher Matcher) (pools face.Pools, err error) {
	for _, c := range face.Categories {
		pool, err := LoadPool(fsys, c, matcher)
		if err != nil {
			return pools, err
		}
		switch c {
		case face.CategoryFace:
			pools.Face = pool
		case face.CategoryEyes:
			pools.Eyes = pool
		case face.CategoryNose:
			pools.Nose = pool
		case face.CategoryMouth:
			pools.Mouth = pool
		}
	}
	log.Info("Avatar assets loaded: %s combinations", humanize.Comma(int64(min(pools.Combinations(), uint64(1<<63-1)))))
	return pools, nil
}

// LoadPool reads the matching files of one category directory. A missing or
// empty directory fails with face.ErrEmptyAssetPool.
func LoadPool(fsys fs.FS, category face.Category, matcher Matcher) (*face.AssetPool, error) {
	dir := category.Dir()
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read asset directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !matcher.Match(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)

	assets := make([]face.Asset, len(names))
	sizes := make([]int, len(names))
	g := errgroup.Group{}
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			data, err := fs.ReadFile(fsys, path.Join(dir, name))
			if err != nil {
				return fmt.Errorf("read asset %s/%s: %w", dir, name, err)
			}
			img, err := avatar.DecodeImage(data, 0, 0)
			if err != nil {
				return fmt.Errorf("decode asset %s/%s: %w", dir, name, err)
			}
			assets[i] = face.Asset{Name: name, Image: img}
			sizes[i] = len(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := uint64(0)
	for i, a := range assets {
		log.Debug("Asset %s/%s: %dx%d, %s", dir, a.Name, a.Image.Width(), a.Image.Height(), humanize.IBytes(uint64(sizes[i])))
		total += uint64(sizes[i])
	}

	pool, err := face.NewAssetPool(category, assets)
	if err != nil {
		return nil, err
	}
	log.Info("Loaded %d %s assets (%s)", pool.Len(), category, humanize.IBytes(total))
	return pool, nil
}
