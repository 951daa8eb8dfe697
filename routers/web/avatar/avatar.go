// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package avatar

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"code.gitea.io/faceavatar/modules/avatar/provider"
	"code.gitea.io/faceavatar/modules/httpcache"
	"code.gitea.io/faceavatar/modules/json"
	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/optional"
	"code.gitea.io/faceavatar/modules/setting"
	"code.gitea.io/faceavatar/modules/util"
	avatar_service "code.gitea.io/faceavatar/services/avatar"

	"github.com/go-chi/chi/v5"
)

// providerRedirectMaxAge is short so that changed provider settings show up quickly
const providerRedirectMaxAge = 5 * time.Minute

// Routes registers the avatar endpoints of svc on r
func Routes(r chi.Router, svc *avatar_service.Service) {
	r.Get("/get", Get(svc))
	r.Get("/values", ByValues(svc))
	r.Get("/test", Describe(svc))
	r.Get("/provider/{provider}", ProviderRedirect)
}

// Get serves /avatar/get: ?text= hashes the text, ?id= uses the low 32 bits, neither renders a random avatar
func Get(svc *avatar_service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		var (
			result *avatar_service.Result
			err    error
			random bool
		)
		switch {
		case q.Has("text"):
			result, err = svc.ByText(req.Context(), q.Get("text"))
		case q.Get("id") != "":
			var id int64
			id, err = strconv.ParseInt(q.Get("id"), 10, 64)
			if err != nil {
				err = util.NewInvalidArgumentErrorf("invalid id %q", q.Get("id"))
				break
			}
			result, err = svc.ByID(req.Context(), uint32(id))
		default:
			random = true
			result, err = svc.ByRandom(req.Context())
		}
		if err != nil {
			serveError(w, req, err)
			return
		}
		servePNG(w, req, result, random)
	}
}

// ByValues serves /avatar/values, missing fields are random
func ByValues(svc *avatar_service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		values, complete, err := parseValues(req.URL.Query())
		if err != nil {
			serveError(w, req, err)
			return
		}
		result, err := svc.ByValues(req.Context(), values)
		if err != nil {
			serveError(w, req, err)
			return
		}
		servePNG(w, req, result, !complete)
	}
}

// Describe serves /avatar/test, the layer description of the values as JSON
func Describe(svc *avatar_service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		values, _, err := parseValues(req.URL.Query())
		if err != nil {
			serveError(w, req, err)
			return
		}
		desc, err := svc.Describe(values)
		if err != nil {
			serveError(w, req, err)
			return
		}
		httpcache.AddCacheControlToHeader(w.Header(), 0)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(desc); err != nil {
			log.Error("Failed to write avatar description: %v", err)
		}
	}
}

// ProviderRedirect serves /avatar/provider/{provider}?name=&size=&type=&background=
func ProviderRedirect(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	name := q.Get("name")
	if name == "" {
		serveError(w, req, util.NewInvalidArgumentErrorf("missing name"))
		return
	}
	size := min(setting.Avatar.Size, provider.MaxSize)
	if s := q.Get("size"); s != "" {
		var err error
		if size, err = strconv.Atoi(s); err != nil {
			serveError(w, req, util.NewInvalidArgumentErrorf("invalid size %q", s))
			return
		}
	}

	p, err := provider.ParseProvider(chi.URLParam(req, "provider"), q.Get("type"), q.Get("background"))
	if err != nil {
		serveError(w, req, err)
		return
	}
	u, err := p.URL(name, size)
	if err != nil {
		serveError(w, req, err)
		return
	}
	httpcache.AddCacheControlToHeader(w.Header(), providerRedirectMaxAge)
	http.Redirect(w, req, u, http.StatusTemporaryRedirect)
}

func parseValues(q url.Values) (values avatar_service.Values, complete bool, err error) {
	complete = true
	for _, f := range []struct {
		name string
		dst  *optional.Option[uint32]
	}{
		{"color", &values.Color},
		{"nose", &values.Nose},
		{"eyes", &values.Eyes},
		{"mouth", &values.Mouth},
		{"face", &values.Face},
		{"rotate", &values.Rotate},
	} {
		v, err := optional.ParseUint32(q.Get(f.name))
		if err != nil {
			return values, false, util.NewInvalidArgumentErrorf("invalid %s %q", f.name, q.Get(f.name))
		}
		complete = complete && v.Has()
		*f.dst = v
	}
	return values, complete, nil
}

func servePNG(w http.ResponseWriter, req *http.Request, result *avatar_service.Result, random bool) {
	w.Header().Set("X-Avatar-Id", fmt.Sprintf("%08x", result.ID))
	if random {
		// a random avatar differs on every request
		httpcache.AddCacheControlToHeader(w.Header(), 0)
	} else if httpcache.HandleGenericETagCache(req, w, result.ETag, setting.Avatar.CacheTime) {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	if _, err := w.Write(result.Data); err != nil {
		log.Error("Failed to write avatar %08x: %v", result.ID, err)
	}
}

func serveError(w http.ResponseWriter, req *http.Request, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, util.ErrNotExist):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Error("%s %s failed: %v", req.Method, req.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
