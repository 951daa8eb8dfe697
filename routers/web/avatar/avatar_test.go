// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package avatar

import (
	"bytes"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"code.gitea.io/faceavatar/modules/avatar/face"
	"code.gitea.io/faceavatar/modules/json"
	"code.gitea.io/faceavatar/modules/setting"
	"code.gitea.io/faceavatar/modules/test"
	avatar_service "code.gitea.io/faceavatar/services/avatar"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	solid := func(w, h int, c color.NRGBA) *face.PixelBuffer {
		p, err := face.NewPixelBuffer(w, h)
		require.NoError(t, err)
		p.Fill(c)
		return p
	}
	pool := func(c face.Category, img *face.PixelBuffer) *face.AssetPool {
		p, err := face.NewAssetPool(c, []face.Asset{{Name: c.String(), Image: img}})
		require.NoError(t, err)
		return p
	}
	svc, err := avatar_service.NewService(face.Pools{
		Face:  pool(face.CategoryFace, solid(16, 16, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})),
		Eyes:  pool(face.CategoryEyes, solid(6, 2, color.NRGBA{A: 0xff})),
		Mouth: pool(face.CategoryMouth, solid(2, 1, color.NRGBA{G: 0xff, A: 0xff})),
		Nose:  pool(face.CategoryNose, solid(1, 1, color.NRGBA{B: 0xff, A: 0xff})),
	}, avatar_service.Options{Size: 16})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/avatar", func(r chi.Router) {
		Routes(r, svc)
	})
	return r
}

func doRequest(r http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGet(t *testing.T) {
	defer test.MockVariableValue(&setting.IsProd, true)()
	defer test.MockVariableValue(&setting.Avatar.CacheTime, 24*time.Hour)()
	r := newTestRouter(t)

	resp := doRequest(r, "/avatar/get?text=Test")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/png", resp.Header().Get("Content-Type"))
	assert.Equal(t, "784dd132", resp.Header().Get("X-Avatar-Id"))
	assert.Equal(t, "public, max-age=86400", resp.Header().Get("Cache-Control"))
	etag := resp.Header().Get("Etag")
	assert.NotEmpty(t, etag)
	img, err := png.Decode(bytes.NewReader(resp.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())

	byID := doRequest(r, "/avatar/get?id=2018365746")
	require.Equal(t, http.StatusOK, byID.Code)
	assert.Equal(t, etag, byID.Header().Get("Etag"))
	assert.Equal(t, resp.Body.Bytes(), byID.Body.Bytes())

	// only the low 32 bits of the id count
	wide := doRequest(r, "/avatar/get?id=6313333042")
	assert.Equal(t, etag, wide.Header().Get("Etag"))

	notModified := doRequest(r, "/avatar/get?text=Test", "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, notModified.Code)
	assert.Empty(t, notModified.Body.Bytes())

	random := doRequest(r, "/avatar/get")
	require.Equal(t, http.StatusOK, random.Code)
	assert.Equal(t, "no-store", random.Header().Get("Cache-Control"))

	assert.Equal(t, http.StatusBadRequest, doRequest(r, "/avatar/get?id=abc").Code)
}

func TestByValues(t *testing.T) {
	defer test.MockVariableValue(&setting.IsProd, true)()
	r := newTestRouter(t)

	resp := doRequest(r, "/avatar/values?color=50&nose=17&eyes=14&mouth=19&face=16&rotate=7")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "784dd132", resp.Header().Get("X-Avatar-Id"))
	assert.NotEmpty(t, resp.Header().Get("Etag"))

	partial := doRequest(r, "/avatar/values?color=50")
	require.Equal(t, http.StatusOK, partial.Code)
	assert.Equal(t, "no-store", partial.Header().Get("Cache-Control"))

	assert.Equal(t, http.StatusBadRequest, doRequest(r, "/avatar/values?face=-1").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, "/avatar/values?rotate=x").Code)
}

func TestDescribe(t *testing.T) {
	r := newTestRouter(t)

	resp := doRequest(r, "/avatar/test?color=0&nose=0&eyes=0&mouth=0&face=1&rotate=7")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header().Get("Content-Type"))

	var desc struct {
		ID     uint32  `json:"id"`
		Tint   string  `json:"tint"`
		Angle  float32 `json:"angle"`
		Layers []struct {
			Category string `json:"category"`
			Bucket   uint32 `json:"bucket"`
			Geometry string `json:"geometry"`
			Asset    string `json:"asset"`
		} `json:"layers"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &desc))
	assert.Equal(t, "#ff0000", desc.Tint)
	assert.Zero(t, desc.Angle)
	require.Len(t, desc.Layers, 4)
	assert.Equal(t, "face", desc.Layers[0].Category)
	assert.EqualValues(t, 1, desc.Layers[0].Bucket)
	assert.Equal(t, "flipped-face", desc.Layers[0].Geometry)
	assert.Equal(t, "normal", desc.Layers[1].Geometry)

	assert.Equal(t, http.StatusBadRequest, doRequest(r, "/avatar/test?eyes=abc").Code)
}

func TestProviderRedirect(t *testing.T) {
	defer test.MockVariableValue(&setting.IsProd, true)()
	defer test.MockVariableValue(&setting.Provider.GravatarSource, "https://secure.gravatar.com/avatar")()
	r := newTestRouter(t)

	resp := doRequest(r, "/avatar/provider/gravatar?name=test&size=80&type=retro")
	require.Equal(t, http.StatusTemporaryRedirect, resp.Code)
	assert.Equal(t, "https://secure.gravatar.com/avatar/098f6bcd4621d373cade4e832627b4f6?d=retro&s=80", test.RedirectURL(resp))
	assert.Equal(t, "public, max-age=300", resp.Header().Get("Cache-Control"))

	assert.Equal(t, http.StatusNotFound, doRequest(r, "/avatar/provider/myspace?name=test").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, "/avatar/provider/gravatar").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, "/avatar/provider/gravatar?name=test&size=big").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, "/avatar/provider/gravatar?name=test&size=5000").Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(r, "/avatar/provider/robohash?name=test&type=9").Code)
}
