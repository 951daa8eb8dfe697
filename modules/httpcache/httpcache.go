// Copyright 2020 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package httpcache

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"code.gitea.io/faceavatar/modules/setting"
)

// AddCacheControlToHeader adds suitable cache-control headers to response.
// Rendered avatars are the same for every client so they are cached publicly.
func AddCacheControlToHeader(h http.Header, maxAge time.Duration, additionalDirectives ...string) {
	directives := make([]string, 0, 2+len(additionalDirectives))

	if setting.IsProd {
		if maxAge == 0 {
			directives = append(directives, "no-store")
		} else {
			directives = append(directives, "public", "max-age="+strconv.Itoa(int(maxAge.Seconds())))
		}
	} else {
		directives = append(directives, "no-store")

		// to remind users they are using non-prod setting.
		h.Add("X-FaceAvatar-Debug", "RUN_MODE="+setting.RunMode)
	}

	h.Set("Cache-Control", strings.Join(append(directives, additionalDirectives...), ", "))
}

// HandleGenericETagCache handles ETag-based caching for a HTTP request.
// It returns true if the request was handled with a 304.
func HandleGenericETagCache(req *http.Request, w http.ResponseWriter, etag string, maxAge time.Duration) (handled bool) {
	if len(etag) > 0 {
		w.Header().Set("Etag", etag)
		if checkIfNoneMatchIsValid(req, etag) {
			w.WriteHeader(http.StatusNotModified)
			return true
		}
	}
	AddCacheControlToHeader(w.Header(), maxAge)
	return false
}

// checkIfNoneMatchIsValid tests if the header If-None-Match matches the ETag, weak validators compare equal
func checkIfNoneMatchIsValid(req *http.Request, etag string) bool {
	ifNoneMatch := req.Header.Get("If-None-Match")
	if len(ifNoneMatch) == 0 {
		return false
	}
	if strings.TrimSpace(ifNoneMatch) == "*" {
		return true
	}
	etag = strings.TrimPrefix(etag, "W/")
	for _, item := range strings.Split(ifNoneMatch, ",") {
		item = strings.TrimPrefix(strings.TrimSpace(item), "W/")
		if item == etag {
			return true
		}
	}
	return false
}

// QuoteETag wraps an opaque tag in the double quotes required by RFC 7232
func QuoteETag(tag string) string {
	return `"` + tag + `"`
}
