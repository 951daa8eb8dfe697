// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"net/url"
	"strings"
	"time"

	"code.gitea.io/faceavatar/modules/log"
)

// Provider holds the third-party avatar service settings
var Provider = struct {
	GravatarSource         string
	LibravatarFallbackHost string
	DicebearSource         string `ini:"DICEBEAR_SOURCE"`
	RobohashSource         string
	FetchTimeout           time.Duration
}{
	GravatarSource:         "https://secure.gravatar.com/avatar",
	LibravatarFallbackHost: "seccdn.libravatar.org",
	DicebearSource:         "https://avatars.dicebear.com/api",
	RobohashSource:         "https://robohash.org",
	FetchTimeout:           10 * time.Second,
}

func loadProviderFrom(rootCfg ConfigProvider) {
	mustMapSetting(rootCfg, "provider", &Provider)
	Provider.GravatarSource = checkSourceURL("GRAVATAR_SOURCE", Provider.GravatarSource, "https://secure.gravatar.com/avatar")
	Provider.DicebearSource = checkSourceURL("DICEBEAR_SOURCE", Provider.DicebearSource, "https://avatars.dicebear.com/api")
	Provider.RobohashSource = checkSourceURL("ROBOHASH_SOURCE", Provider.RobohashSource, "https://robohash.org")
	if Provider.FetchTimeout <= 0 {
		Provider.FetchTimeout = 10 * time.Second
	}
}

func checkSourceURL(key, value, def string) string {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		log.Warn("Invalid [provider] %s %q, fall back to %s", key, value, def)
		return def
	}
	return strings.TrimSuffix(value, "/")
}
