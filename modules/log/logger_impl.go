// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LoggerImpl writes formatted events to one output
type LoggerImpl struct {
	name  string
	level atomic.Int32

	mu   sync.Mutex
	mode WriterMode
	out  io.Writer
}

var _ Logger = (*LoggerImpl)(nil)

// NewLoggerWithWriter creates a logger writing to out
func NewLoggerWithWriter(name string, out io.Writer, mode WriterMode) *LoggerImpl {
	l := &LoggerImpl{name: name}
	l.ReplaceWriter(out, mode)
	return l
}

// ReplaceWriter swaps the output and mode of the logger
func (l *LoggerImpl) ReplaceWriter(out io.Writer, mode WriterMode) {
	if mode.Level == UNDEFINED {
		mode.Level = INFO
	}
	l.mu.Lock()
	l.out = out
	l.mode = mode
	l.mu.Unlock()
	l.level.Store(int32(mode.Level))
}

// Name returns the registered name of the logger
func (l *LoggerImpl) Name() string {
	return l.name
}

// GetLevel returns the minimal level of the logger
func (l *LoggerImpl) GetLevel() Level {
	return Level(l.level.Load())
}

// SetLevel changes the minimal level of the logger
func (l *LoggerImpl) SetLevel(level Level) {
	l.mu.Lock()
	l.mode.Level = level
	l.mu.Unlock()
	l.level.Store(int32(level))
}

// LevelEnabled checks if the level is enabled
func (l *LoggerImpl) LevelEnabled(level Level) bool {
	return level >= l.GetLevel() && level < NONE
}

// Log prepares the event and writes it. skip counts the frames between the
// caller of interest and Log itself.
func (l *LoggerImpl) Log(skip int, level Level, format string, v ...any) {
	if !l.LevelEnabled(level) {
		return
	}

	event := &Event{
		Time:  time.Now(),
		Level: level,
	}
	if pc, filename, line, ok := runtime.Caller(skip + 1); ok {
		event.Filename = strings.TrimPrefix(filename, prefix)
		event.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			event.Caller = fn.Name()
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out == nil {
		return
	}
	msg := EventFormatTextMessage(&l.mode, event, format, v...)
	_, _ = l.out.Write(msg)
}

func (l *LoggerImpl) Trace(format string, v ...any) {
	l.Log(1, TRACE, format, v...)
}

func (l *LoggerImpl) Debug(format string, v ...any) {
	l.Log(1, DEBUG, format, v...)
}

func (l *LoggerImpl) Info(format string, v ...any) {
	l.Log(1, INFO, format, v...)
}

func (l *LoggerImpl) Warn(format string, v ...any) {
	l.Log(1, WARN, format, v...)
}

func (l *LoggerImpl) Error(format string, v ...any) {
	l.Log(1, ERROR, format, v...)
}

func (l *LoggerImpl) Critical(format string, v ...any) {
	l.Log(1, CRITICAL, format, v...)
}

// Fatal logs at FATAL level and exits the process
func (l *LoggerImpl) Fatal(format string, v ...any) {
	l.Log(1, FATAL, format, v...)
	OsExiter(1)
}

// OsExiter is replaced in tests
var OsExiter = os.Exit

// prefix is trimmed from the file names of callers
var prefix = func() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return strings.TrimSuffix(filename, "modules/log/logger_impl.go")
}()
