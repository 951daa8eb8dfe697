// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
	"time"

	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/util"
)

// Avatar holds the rendering settings
var Avatar = struct {
	AssetPath    string
	AssetPattern string
	Size         int
	SmallSpace   int
	CacheTime    time.Duration

	AssetMatcher *GlobMatcher `ini:"-"`
}{
	AssetPath:    "Images",
	AssetPattern: "*.png",
	Size:         600,
	CacheTime:    24 * time.Hour,
}

func loadAvatarFrom(rootCfg ConfigProvider) error {
	mustMapSetting(rootCfg, "avatar", &Avatar)
	if Avatar.Size <= 0 {
		return util.NewInvalidArgumentErrorf("[avatar] SIZE must be positive, got %d", Avatar.Size)
	}
	if Avatar.SmallSpace <= 0 || !rootCfg.Section("avatar").HasKey("SMALL_SPACE") {
		Avatar.SmallSpace = Avatar.Size / 12
	}
	Avatar.AssetPath = util.ResolvePath(AppWorkPath, Avatar.AssetPath)

	matcher, err := GlobMatcherCompile(Avatar.AssetPattern)
	if err != nil {
		log.Warn("Invalid [avatar] ASSET_PATTERN %q: %v, fall back to *.png", Avatar.AssetPattern, err)
		Avatar.AssetPattern = "*.png"
		if matcher, err = GlobMatcherCompile(Avatar.AssetPattern); err != nil {
			return fmt.Errorf("compile default asset pattern: %w", err)
		}
	}
	Avatar.AssetMatcher = matcher
	if Avatar.CacheTime < 0 {
		Avatar.CacheTime = 0
	}
	return nil
}
