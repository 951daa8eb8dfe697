// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Event represents a logging event
type Event struct {
	Time     time.Time
	Caller   string
	Filename string
	Line     int
	Level    Level
}

// WriterMode is the common options for a logger output
type WriterMode struct {
	Level    Level
	Flags    int
	Prefix   string
	Colorize bool
}

// itoa appends the decimal form of i, padded with zeros to wid digits
func itoa(buf []byte, i, wid int) []byte {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	b[bp] = byte('0' + i)
	return append(buf, b[bp:]...)
}

func colorize(buf []byte, mode *WriterMode, attrs ...ColorAttribute) []byte {
	if !mode.Colorize {
		return buf
	}
	return append(buf, ColorBytes(attrs...)...)
}

func colorReset(buf []byte, mode *WriterMode) []byte {
	if !mode.Colorize {
		return buf
	}
	return append(buf, resetBytes...)
}

// EventFormatTextMessage makes the log message for a writer with its mode
func EventFormatTextMessage(mode *WriterMode, event *Event, msgFormat string, msgArgs ...any) []byte {
	buf := make([]byte, 0, 1024)
	buf = append(buf, mode.Prefix...)
	t := event.Time
	flags := mode.Flags
	if flags&(Ldate|Ltime|Lmicroseconds) != 0 {
		buf = colorize(buf, mode, FgCyan)
		if flags&LUTC != 0 {
			t = t.UTC()
		}
		if flags&Ldate != 0 {
			year, month, day := t.Date()
			buf = itoa(buf, year, 4)
			buf = append(buf, '/')
			buf = itoa(buf, int(month), 2)
			buf = append(buf, '/')
			buf = itoa(buf, day, 2)
			buf = append(buf, ' ')
		}
		if flags&(Ltime|Lmicroseconds) != 0 {
			hour, minute, sec := t.Clock()
			buf = itoa(buf, hour, 2)
			buf = append(buf, ':')
			buf = itoa(buf, minute, 2)
			buf = append(buf, ':')
			buf = itoa(buf, sec, 2)
			if flags&Lmicroseconds != 0 {
				buf = append(buf, '.')
				buf = itoa(buf, t.Nanosecond()/1e3, 6)
			}
			buf = append(buf, ' ')
		}
		buf = colorReset(buf, mode)
	}

	if flags&(Lshortfile|Llongfile) != 0 && event.Filename != "" {
		buf = colorize(buf, mode, FgGreen)
		file := event.Filename
		if flags&Lmedfile == Lmedfile {
			startIndex := len(file) - 20
			if startIndex > 0 {
				file = "..." + file[startIndex:]
			}
		} else if flags&Lshortfile != 0 {
			if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
				file = file[idx+1:]
			}
		}
		buf = append(buf, file...)
		buf = append(buf, ':')
		buf = itoa(buf, event.Line, -1)
		if flags&(Lfuncname|Lshortfuncname) != 0 {
			buf = append(buf, ':')
		} else {
			buf = colorReset(buf, mode)
			buf = append(buf, ' ')
		}
	}

	if flags&(Lfuncname|Lshortfuncname) != 0 && event.Caller != "" {
		buf = colorize(buf, mode, FgGreen)
		funcName := event.Caller
		if flags&Lshortfuncname != 0 {
			if idx := strings.LastIndexByte(funcName, '.'); idx >= 0 {
				funcName = funcName[idx+1:]
			}
		}
		buf = append(buf, funcName...)
		buf = append(buf, "()"...)
		buf = colorReset(buf, mode)
		buf = append(buf, ' ')
	}

	if flags&(Llevel|Llevelinitial) != 0 {
		level := strings.ToUpper(event.Level.String())
		buf = colorize(buf, mode, event.Level.ColorAttributes()...)
		buf = append(buf, '[')
		if flags&Llevelinitial != 0 {
			buf = append(buf, level[0])
		} else {
			buf = append(buf, level...)
		}
		buf = append(buf, ']')
		buf = colorReset(buf, mode)
		buf = append(buf, ' ')
	}

	var msg []byte
	if len(msgArgs) == 0 {
		msg = []byte(msgFormat)
	} else {
		for i, arg := range msgArgs {
			if s, ok := arg.(LogStringer); ok {
				msgArgs[i] = s.LogString()
			}
		}
		msg = fmt.Appendf(nil, msgFormat, msgArgs...)
	}
	if !mode.Colorize {
		msg = ansiPattern.ReplaceAll(msg, nil)
	}
	msg = bytes.TrimRight(msg, "\n")
	buf = append(buf, msg...)
	return append(buf, '\n')
}
