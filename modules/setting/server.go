// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"net"
	"strconv"
	"time"

	"code.gitea.io/faceavatar/modules/log"
)

var (
	HTTPAddr        string
	HTTPPort        string
	EnableAccessLog bool
	// DisableRouterLog turns off the per-request router log line
	DisableRouterLog bool

	ReverseProxyLimit          int
	ReverseProxyTrustedProxies []string

	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	GracefulHammerTime time.Duration
)

func loadServerFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("server")
	HTTPAddr = sec.Key("HTTP_ADDR").MustString("0.0.0.0")
	HTTPPort = sec.Key("HTTP_PORT").MustString("8080")
	if port, err := strconv.Atoi(HTTPPort); err != nil || port < 0 || port > 65535 {
		log.Warn("Invalid HTTP_PORT %q, fall back to 8080", HTTPPort)
		HTTPPort = "8080"
	}
	EnableAccessLog = sec.Key("ENABLE_ACCESS_LOG").MustBool(false)
	DisableRouterLog = sec.Key("DISABLE_ROUTER_LOG").MustBool(false)
	ReverseProxyLimit = sec.Key("REVERSE_PROXY_LIMIT").MustInt(1)
	ReverseProxyTrustedProxies = sec.Key("REVERSE_PROXY_TRUSTED_PROXIES").Strings(",")
	if len(ReverseProxyTrustedProxies) == 0 {
		ReverseProxyTrustedProxies = []string{"127.0.0.0/8", "::1/128"}
	}
	ReadTimeout = sec.Key("READ_TIMEOUT").MustDuration(30 * time.Second)
	WriteTimeout = sec.Key("WRITE_TIMEOUT").MustDuration(30 * time.Second)
	GracefulHammerTime = sec.Key("GRACEFUL_HAMMER_TIME").MustDuration(10 * time.Second)
}

// ListenAddr is the address the web command binds to
func ListenAddr() string {
	return net.JoinHostPort(HTTPAddr, HTTPPort)
}
