// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const DEFAULT = "default"

var (
	loggersMu sync.RWMutex
	loggers   = map[string]*LoggerImpl{}
)

// CanColorStdout reports whether stdout is a terminal
var CanColorStdout = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func init() {
	loggers[DEFAULT] = NewLoggerWithWriter(DEFAULT, os.Stdout, WriterMode{
		Level:    INFO,
		Flags:    LstdFlags,
		Colorize: CanColorStdout,
	})
}

// GetLogger returns the logger registered with name, it falls back to a
// logger sharing the default output when nothing is registered yet.
func GetLogger(name string) Logger {
	loggersMu.RLock()
	l, ok := loggers[name]
	loggersMu.RUnlock()
	if ok {
		return l
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok = loggers[name]; ok {
		return l
	}
	def := loggers[DEFAULT]
	def.mu.Lock()
	out, mode := def.out, def.mode
	def.mu.Unlock()
	l = NewLoggerWithWriter(name, out, mode)
	loggers[name] = l
	return l
}

// SetLogger registers the output of a named logger, replacing any earlier one
func SetLogger(name string, out io.Writer, mode WriterMode) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[name]; ok {
		l.ReplaceWriter(out, mode)
		return
	}
	loggers[name] = NewLoggerWithWriter(name, out, mode)
}

// SetConsoleLogger makes the named logger write to stdout
func SetConsoleLogger(name string, level Level, flags int, colorize bool) {
	SetLogger(name, os.Stdout, WriterMode{
		Level:    level,
		Flags:    flags,
		Colorize: colorize && CanColorStdout,
	})
}

// RemoveLogger drops a named logger, the default one can not be removed
func RemoveLogger(name string) bool {
	if name == DEFAULT {
		return false
	}
	loggersMu.Lock()
	defer loggersMu.Unlock()
	_, ok := loggers[name]
	delete(loggers, name)
	return ok
}

func defaultLogger() *LoggerImpl {
	loggersMu.RLock()
	defer loggersMu.RUnlock()
	return loggers[DEFAULT]
}

func GetLevel() Level {
	return defaultLogger().GetLevel()
}

func IsTrace() bool {
	return GetLevel() <= TRACE
}

func IsDebug() bool {
	return GetLevel() <= DEBUG
}

func Trace(format string, v ...any) {
	Log(1, TRACE, format, v...)
}

func Debug(format string, v ...any) {
	Log(1, DEBUG, format, v...)
}

func Info(format string, v ...any) {
	Log(1, INFO, format, v...)
}

func Warn(format string, v ...any) {
	Log(1, WARN, format, v...)
}

func Error(format string, v ...any) {
	Log(1, ERROR, format, v...)
}

func Critical(format string, v ...any) {
	Log(1, ERROR, format, v...)
}

// Fatal records fatal log and exit process
func Fatal(format string, v ...any) {
	Log(1, FATAL, format, v...)
	OsExiter(1)
}

// Log writes to the default logger, skip counts frames above the caller of Log
func Log(skip int, level Level, format string, v ...any) {
	defaultLogger().Log(skip+1, level, format, v...)
}
