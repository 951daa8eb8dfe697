// Copyright 2021 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package common

import (
	"net/http"
	"time"

	"code.gitea.io/faceavatar/modules/log"

	"github.com/go-chi/chi/v5/middleware"
)

// NewLoggerHandler logs every completed request of the router
func NewLoggerHandler() func(next http.Handler) http.Handler {
	logger := log.GetLogger("router")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := log.INFO
			if status >= http.StatusInternalServerError {
				level = log.WARN
			}
			if !logger.LevelEnabled(level) {
				return
			}
			logger.Log(0, level, "router: completed %v %s for %s, %v %s in %v",
				log.ColoredMethod(req.Method), req.RequestURI, req.RemoteAddr,
				log.ColoredStatus(status), http.StatusText(status), log.ColoredTime(time.Since(start)),
			)
		})
	}
}

// AccessLogger writes one line per request in the common log format to the "access" logger
func AccessLogger() func(http.Handler) http.Handler {
	logger := log.GetLogger("access")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("%s - - [%s] \"%s %s %s\" %d %d \"%s\" \"%s\"",
				req.RemoteAddr, start.Format("02/Jan/2006:15:04:05 -0700"),
				req.Method, req.RequestURI, req.Proto, status, ww.BytesWritten(),
				req.Referer(), req.UserAgent(),
			)
		})
	}
}
