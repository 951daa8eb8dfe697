// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"
)

const escape = "\033"

// ColorAttribute defines a single SGR Code
type ColorAttribute int

// Base ColorAttributes
const (
	Reset ColorAttribute = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors
const (
	FgBlack ColorAttribute = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors
const (
	FgHiBlack ColorAttribute = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Background text colors
const (
	BgBlack ColorAttribute = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

// ColorBytes converts a list of ColorAttributes to a byte array
func ColorBytes(attrs ...ColorAttribute) []byte {
	bytes := make([]byte, 0, 20)
	bytes = append(bytes, escape[0], '[')
	for i, a := range attrs {
		if i > 0 {
			bytes = append(bytes, ';')
		}
		bytes = strconv.AppendInt(bytes, int64(a), 10)
	}
	return append(bytes, 'm')
}

// ColorString converts a list of ColorAttributes to a color string
func ColorString(attrs ...ColorAttribute) string {
	return string(ColorBytes(attrs...))
}

var resetBytes = ColorBytes(Reset)

// ColoredValue will Color the provided value
type ColoredValue struct {
	v      any
	colors []ColorAttribute
}

// NewColoredValue is a helper function to create a ColoredValue from a Value
func NewColoredValue(v any, color ...ColorAttribute) *ColoredValue {
	return &ColoredValue{v: v, colors: color}
}

// Format will format the provided value and protect against ANSI color spoofing within the value
func (cv *ColoredValue) Format(s fmt.State, c rune) {
	_, _ = s.Write(ColorBytes(cv.colors...))
	_, _ = fmt.Fprintf(s, fmt.FormatString(s, c), cv.v)
	_, _ = s.Write(resetBytes)
}

var ansiPattern = regexp.MustCompile("\033\\[[0-9;]*m")

// RemoveColors strips any SGR sequence from a formatted log message
func RemoveColors(msg string) string {
	return ansiPattern.ReplaceAllString(msg, "")
}

var statusToColor = map[int][]ColorAttribute{
	100: {Bold},
	200: {FgGreen},
	300: {FgYellow},
	304: {FgCyan},
	400: {Bold, FgRed},
	401: {Bold, FgMagenta},
	403: {Bold, FgMagenta},
	500: {Bold, BgRed},
}

// ColoredStatus adds colors for HTTP status
func ColoredStatus(status int, s ...string) *ColoredValue {
	color, ok := statusToColor[status]
	if !ok {
		color, ok = statusToColor[(status/100)*100]
	}
	if !ok {
		color = []ColorAttribute{Bold}
	}
	if len(s) > 0 {
		return NewColoredValue(s[0], color...)
	}
	return NewColoredValue(status, color...)
}

var methodToColor = map[string][]ColorAttribute{
	http.MethodGet:    {FgBlue},
	http.MethodPost:   {FgGreen},
	http.MethodDelete: {FgRed},
	http.MethodPatch:  {FgCyan},
	http.MethodPut:    {FgYellow, Faint},
	http.MethodHead:   {FgBlue, Faint},
}

// ColoredMethod adds colors for HTTP methods on log
func ColoredMethod(method string) *ColoredValue {
	color, ok := methodToColor[method]
	if !ok {
		return NewColoredValue(method, Bold)
	}
	return NewColoredValue(method, append([]ColorAttribute{Bold}, color...)...)
}

var durations = []time.Duration{
	10 * time.Millisecond,
	100 * time.Millisecond,
	1 * time.Second,
	5 * time.Second,
	10 * time.Second,
}

var durationColors = [][]ColorAttribute{
	{FgGreen},
	{Bold},
	{FgYellow},
	{FgRed, Bold},
	{BgRed},
}

var wayTooLong = []ColorAttribute{BgMagenta}

// ColoredTime converts the provided time to a ColoredValue for logging. The duration is always formatted in milliseconds.
func ColoredTime(duration time.Duration) *ColoredValue {
	str := fmt.Sprintf("%.1fms", float64(duration.Microseconds())/1000)
	for i, k := range durations {
		if duration < k {
			return NewColoredValue(str, durationColors[i]...)
		}
	}
	return NewColoredValue(str, wayTooLong...)
}
