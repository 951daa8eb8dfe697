// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"time"

	"code.gitea.io/faceavatar/modules/log"
)

// Cache represents the rendered avatar cache settings
type Cache struct {
	Enabled bool
	Size    int
	TTL     time.Duration `ini:"ITEM_TTL"`
}

// CacheService the global cache settings
var CacheService = Cache{
	Enabled: true,
	Size:    512,
	TTL:     16 * time.Hour,
}

func loadCacheFrom(rootCfg ConfigProvider) {
	mustMapSetting(rootCfg, "cache", &CacheService)
	if CacheService.Size <= 0 {
		log.Warn("[cache] SIZE must be positive, fall back to 512")
		CacheService.Size = 512
	}
	if CacheService.TTL < 0 {
		CacheService.TTL = 0
	}
	if CacheService.Enabled {
		log.Info("Cache Service Enabled: %d entries, item ttl %v", CacheService.Size, CacheService.TTL)
	}
}
