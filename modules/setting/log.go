// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"code.gitea.io/faceavatar/modules/log"
)

// Log holds the logger settings
var Log = struct {
	Level    log.Level
	Flags    int
	Colorize bool
}{
	Level: log.INFO,
	Flags: log.LstdFlags,
}

func loadLogFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("log")
	Log.Level = log.LevelFromString(sec.Key("LEVEL").MustString("Info"))
	Log.Flags = log.FlagsFromString(sec.Key("FLAGS").MustString("stdflags"))
	Log.Colorize = sec.Key("COLORIZE").MustBool(log.CanColorStdout)
}

// InitLoggers applies the log settings to the default logger
func InitLoggers() {
	log.SetConsoleLogger(log.DEFAULT, Log.Level, Log.Flags, Log.Colorize)
}
