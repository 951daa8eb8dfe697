// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import "strings"

// These flags define which text to prefix to each log entry.
// The default output looks like:
// 2009/01/23 01:23:23 ...a/logger/c/d.go:23:runtime.Caller() [I] message
const (
	Ldate          = 1 << iota // the date in the local time zone: 2009/01/23
	Ltime                      // the time in the local time zone: 01:23:23
	Lmicroseconds              // microsecond resolution: 01:23:23.123123, assumes Ltime
	Llongfile                  // full file name and line number: /a/logger/c/d.go:23
	Lshortfile                 // final file name element and line number: d.go:23
	Lfuncname                  // function name of the caller: runtime.Caller()
	Lshortfuncname             // last part of the function name
	LUTC                       // if Ldate or Ltime is set, use UTC rather than the local time zone
	Llevelinitial              // initial character of the level in brackets, eg. [I] for info
	Llevel                     // level in brackets [INFO]

	Lmedfile = Lshortfile | Llongfile // last 20 characters of the filename

	LstdFlags = Ldate | Ltime | Lmedfile | Lshortfuncname | Llevelinitial
)

var flagFromString = map[string]int{
	"none":          0,
	"date":          Ldate,
	"time":          Ltime,
	"microseconds":  Lmicroseconds,
	"longfile":      Llongfile,
	"shortfile":     Lshortfile,
	"funcname":      Lfuncname,
	"shortfuncname": Lshortfuncname,
	"utc":           LUTC,
	"levelinitial":  Llevelinitial,
	"level":         Llevel,
	"medfile":       Lmedfile,
	"stdflags":      LstdFlags,
}

// FlagsFromString takes a comma separated list of flags and returns the
// combined flags. An empty string gives LstdFlags, "none" gives 0.
func FlagsFromString(from string) int {
	if strings.TrimSpace(from) == "" {
		return LstdFlags
	}
	flags := 0
	for _, flag := range strings.Split(strings.ToLower(from), ",") {
		if f, ok := flagFromString[strings.TrimSpace(flag)]; ok {
			flags |= f
		}
	}
	return flags
}
