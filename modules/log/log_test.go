// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"code.gitea.io/faceavatar/modules/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, TRACE, LevelFromString("trace"))
	assert.Equal(t, WARN, LevelFromString("Warning"))
	assert.Equal(t, ERROR, LevelFromString(" ERROR "))
	assert.Equal(t, NONE, LevelFromString("none"))
	assert.Equal(t, INFO, LevelFromString("bogus"))
	assert.Equal(t, "info", Level(100).String())
}

func TestLevelJSON(t *testing.T) {
	type testLevel struct {
		Level Level `json:"level"`
	}

	bs, err := json.Marshal(testLevel{Level: WARN})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"warn"}`, string(bs))

	var v testLevel
	require.NoError(t, json.Unmarshal([]byte(`{"level":"debug"}`), &v))
	assert.Equal(t, DEBUG, v.Level)

	require.NoError(t, json.Unmarshal([]byte(`{"level":5}`), &v))
	assert.Equal(t, ERROR, v.Level)
}

func TestFlagsFromString(t *testing.T) {
	assert.Equal(t, LstdFlags, FlagsFromString(""))
	assert.Equal(t, 0, FlagsFromString("none"))
	assert.Equal(t, Ldate|Ltime|LUTC, FlagsFromString("date, time,utc"))
	assert.Equal(t, Llevel, FlagsFromString("level,unknown"))
}

func TestEventFormatTextMessage(t *testing.T) {
	date := time.Date(2019, time.January, 13, 22, 3, 30, 15, time.FixedZone("EST", -5*3600))
	event := &Event{
		Time:     date,
		Caller:   "code.gitea.io/faceavatar/modules/avatar.Render",
		Filename: "modules/avatar/face/render.go",
		Line:     42,
		Level:    WARN,
	}

	mode := &WriterMode{Prefix: "[p] ", Flags: LstdFlags | LUTC}
	msg := EventFormatTextMessage(mode, event, "rendered %d", 7)
	assert.Equal(t, "[p] 2019/01/14 03:03:30 ...vatar/face/render.go:42:Render() [W] rendered 7\n", string(msg))

	mode = &WriterMode{Flags: Lshortfile | Llevel}
	msg = EventFormatTextMessage(mode, event, "no args %%d")
	assert.Equal(t, "render.go:42 [WARN] no args %%d\n", string(msg))

	mode = &WriterMode{Flags: 0}
	msg = EventFormatTextMessage(mode, event, "%v", NewColoredValue("plain", FgRed))
	assert.Equal(t, "plain\n", string(msg))

	mode = &WriterMode{Flags: Llevelinitial, Colorize: true}
	msg = EventFormatTextMessage(mode, event, "x")
	assert.Equal(t, ColorString(Bold, FgYellow)+"[W]"+ColorString(Reset)+" x\n", string(msg))
}

type testLogString struct{}

func (testLogString) LogString() string { return "<log-string>" }

func TestLoggerImpl(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLoggerWithWriter("test", buf, WriterMode{Level: INFO, Flags: Llevel})
	assert.Equal(t, INFO, l.GetLevel())
	assert.False(t, l.LevelEnabled(DEBUG))
	assert.True(t, l.LevelEnabled(ERROR))

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Info("value %v", testLogString{})
	assert.Equal(t, "[INFO] value <log-string>\n", buf.String())
	buf.Reset()

	l.SetLevel(TRACE)
	l.Trace("shown")
	assert.Equal(t, "[TRACE] shown\n", buf.String())
	buf.Reset()

	l.ReplaceWriter(buf, WriterMode{Flags: Lshortfile})
	assert.Equal(t, INFO, l.GetLevel())
	l.Warn("where")
	assert.True(t, strings.HasPrefix(buf.String(), "log_test.go:"), buf.String())

	l.SetLevel(NONE)
	buf.Reset()
	l.Error("nothing")
	assert.Empty(t, buf.String())
}

func TestLoggerFatal(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewLoggerWithWriter("fatal", buf, WriterMode{Level: INFO})

	var code int
	oldExiter := OsExiter
	OsExiter = func(c int) { code = c }
	defer func() { OsExiter = oldExiter }()

	l.Fatal("bye")
	assert.Equal(t, 1, code)
	assert.Equal(t, "bye\n", buf.String())
}

func TestGetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger("access-test", buf, WriterMode{Level: DEBUG})
	defer RemoveLogger("access-test")

	l := GetLogger("access-test")
	l.Debug("request %s", "GET")
	assert.Equal(t, "request GET\n", buf.String())
	assert.Same(t, l, GetLogger("access-test"))

	other := GetLogger("fresh-test")
	defer RemoveLogger("fresh-test")
	assert.Equal(t, GetLevel(), other.GetLevel())

	assert.False(t, RemoveLogger(DEFAULT))
}

func TestColoredStatus(t *testing.T) {
	assert.Equal(t, ColorString(FgGreen)+"200"+ColorString(Reset), fmt.Sprintf("%v", ColoredStatus(200)))
	assert.Equal(t, ColorString(FgCyan)+"304"+ColorString(Reset), fmt.Sprintf("%v", ColoredStatus(304)))
	assert.Equal(t, ColorString(Bold, FgRed)+"Not Found"+ColorString(Reset), fmt.Sprintf("%v", ColoredStatus(404, "Not Found")))
	assert.Equal(t, "GET", RemoveColors(fmt.Sprintf("%v", ColoredMethod("GET"))))
	assert.Equal(t, "1.5ms", RemoveColors(fmt.Sprintf("%v", ColoredTime(1500*time.Microsecond))))
}

func TestStack(t *testing.T) {
	s := Stack(0)
	assert.Contains(t, s, "log_test.go")
	assert.Contains(t, s, "TestStack")
}
