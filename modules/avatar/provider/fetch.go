// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package provider

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"net/http"

	"code.gitea.io/faceavatar/modules/avatar"
	"code.gitea.io/faceavatar/modules/avatar/face"
	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/metrics"
	"code.gitea.io/faceavatar/modules/typesniffer"

	"github.com/dustin/go-humanize"
)

// maxFetchBytes caps the downloaded body, provider images are small PNGs
const maxFetchBytes = 8 << 20

// Fetch downloads the avatar of name from p and decodes it.
// Backgrounds are keyed out for the providers that report a transparent key.
func Fetch(ctx context.Context, client *http.Client, p Provider, name string, size int) (buf *face.PixelBuffer, err error) {
	defer func() { metrics.ObserveProviderFetch(p.Name(), err) }()

	u, err := p.URL(name, size)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, ErrFetch{URL: u, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, ErrFetch{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrFetch{URL: u, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return nil, ErrFetch{URL: u, Status: resp.StatusCode, Err: err}
	}
	if len(data) > maxFetchBytes {
		return nil, ErrFetch{URL: u, Status: resp.StatusCode, Err: fmt.Errorf("body exceeds %s", humanize.IBytes(maxFetchBytes))}
	}
	log.Trace("Fetched %s from %s", humanize.IBytes(uint64(len(data))), u)

	if st := typesniffer.DetectContentType(data); !st.IsRasterImage() {
		return nil, ErrFetch{URL: u, Status: resp.StatusCode, Err: fmt.Errorf("unsupported content type %s", st.Mime())}
	}

	buf, err = avatar.DecodeImage(data, MaxSize, MaxSize)
	if err != nil {
		return nil, ErrFetch{URL: u, Status: resp.StatusCode, Err: err}
	}
	if key, ok := p.TransparentKey(); ok {
		MakeTransparent(buf, key)
	}
	return buf, nil
}

// MakeTransparent clears the alpha of every pixel whose color equals key.
// A nil key uses the bottom-left pixel of the image.
func MakeTransparent(p *face.PixelBuffer, key *color.NRGBA) {
	w, h := p.Width(), p.Height()
	if w == 0 || h == 0 {
		return
	}
	k := p.At(0, h-1)
	if key != nil {
		k = *key
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := p.At(x, y)
			if c.R == k.R && c.G == k.G && c.B == k.B {
				p.Set(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B})
			}
		}
	}
}
