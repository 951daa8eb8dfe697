// Copyright 2014 The Gogs Authors. All rights reserved.
// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.gitea.io/faceavatar/modules/log"
)

var (
	// AppName is the application name, used in logs and the describe output
	AppName string
	// RunMode is "prod" or "dev"
	RunMode string
	// IsProd is true when RunMode is "prod"
	IsProd bool
	// AppWorkPath is used as the base of relative paths, defaults to the directory of the binary
	AppWorkPath string
	// CustomConf is the path of the ini file
	CustomConf string

	// CfgProvider is the loaded configuration
	CfgProvider ConfigProvider
)

func init() {
	if exe, err := os.Executable(); err == nil {
		AppWorkPath = filepath.Dir(exe)
	}
}

// InitWorkPathAndCfgProvider sets the work path and loads the config file,
// empty arguments keep the current values.
func InitWorkPathAndCfgProvider(workPath, customConf string) error {
	if workPath != "" {
		AppWorkPath = workPath
	}
	if customConf != "" {
		CustomConf = customConf
	}
	if CustomConf != "" && !filepath.IsAbs(CustomConf) {
		CustomConf = filepath.Join(AppWorkPath, CustomConf)
	}

	cfg, err := NewConfigProviderFromFile(CustomConf)
	if err != nil {
		return err
	}
	CfgProvider = cfg
	return nil
}

// LoadCommonSettings loads every section used by the server and the commands
func LoadCommonSettings(rootCfg ConfigProvider) error {
	loadRunModeFrom(rootCfg)
	loadLogFrom(rootCfg)
	loadServerFrom(rootCfg)
	if err := loadAvatarFrom(rootCfg); err != nil {
		return err
	}
	loadCacheFrom(rootCfg)
	loadMetricsFrom(rootCfg)
	loadCorsFrom(rootCfg)
	loadProviderFrom(rootCfg)
	return nil
}

func loadRunModeFrom(rootCfg ConfigProvider) {
	rootSec := rootCfg.Section("")
	AppName = rootSec.Key("APP_NAME").MustString("faceavatar")
	RunMode = strings.ToLower(strings.TrimSpace(rootSec.Key("RUN_MODE").MustString("prod")))
	switch RunMode {
	case "prod", "dev":
	default:
		log.Warn("Unknown RUN_MODE %q, fall back to prod", RunMode)
		RunMode = "prod"
	}
	IsProd = RunMode == "prod"
}

// String summarises the loaded settings for the startup log
func String() string {
	return fmt.Sprintf("%s (%s) listening on %s:%s, avatars %dpx from %s",
		AppName, RunMode, HTTPAddr, HTTPPort, Avatar.Size, Avatar.AssetPath)
}
