// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"time"

	"code.gitea.io/faceavatar/modules/log"
)

// CORSConfig defines CORS settings
var CORSConfig = struct {
	Enabled          bool
	AllowDomain      []string
	Methods          []string
	MaxAge           time.Duration
	AllowCredentials bool
	Headers          []string
}{
	AllowDomain: []string{"*"},
	Methods:     []string{"GET", "HEAD", "OPTIONS"},
	MaxAge:      10 * time.Minute,
	Headers:     []string{"Content-Type", "If-None-Match"},
}

func loadCorsFrom(rootCfg ConfigProvider) {
	mustMapSetting(rootCfg, "cors", &CORSConfig)
	if CORSConfig.Enabled {
		log.Info("CORS Service Enabled")
	}
}
