// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package provider

import (
	"fmt"
	"image/color"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/util"

	"strk.kbt.io/projects/go/libravatar"
)

// LibravatarType is the generated default image of libravatar
type LibravatarType string

const (
	LibravatarIdenticon LibravatarType = "identicon"
	LibravatarMonsterID LibravatarType = "monsterid"
	LibravatarWavatar   LibravatarType = "wavatar"
	LibravatarRetro     LibravatarType = "retro"
	LibravatarRobohash  LibravatarType = "robohash"
	LibravatarPagan     LibravatarType = "pagan"
)

var libravatarTypes = []LibravatarType{
	LibravatarIdenticon, LibravatarMonsterID, LibravatarWavatar,
	LibravatarRetro, LibravatarRobohash, LibravatarPagan,
}

// ParseLibravatarType parses a type name case-insensitively, empty means identicon
func ParseLibravatarType(s string) (LibravatarType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LibravatarIdenticon, nil
	}
	for _, t := range libravatarTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", util.NewInvalidArgumentErrorf("unknown libravatar type %q", s)
}

// Libravatar builds libravatar URLs. With Federated set, e-mail names are
// resolved through the DNS SRV records of their domain, everything else is
// hashed onto FallbackHost. A lookup running longer than LookupTimeout falls
// back as well, zero waits for the resolver.
type Libravatar struct {
	Type          LibravatarType
	FallbackHost  string
	Federated     bool
	LookupTimeout time.Duration
}

var lookupFederated = func(fallbackHost, email string) (string, error) {
	lib := libravatar.New()
	lib.SetUseHTTPS(true)
	lib.SetSecureFallbackHost(fallbackHost)
	return lib.FromEmail(email)
}

func (l *Libravatar) federatedURL(email string) (string, error) {
	lookup := lookupFederated
	if l.LookupTimeout <= 0 {
		return lookup(l.FallbackHost, email)
	}

	type result struct {
		url string
		err error
	}
	ch := make(chan result, 1)
	go func() {
		u, err := lookup(l.FallbackHost, email)
		ch <- result{u, err}
	}()

	timer := time.NewTimer(l.LookupTimeout)
	defer timer.Stop()
	select {
	case r := <-ch:
		return r.url, r.err
	case <-timer.C:
		return "", fmt.Errorf("lookup timed out after %v", l.LookupTimeout)
	}
}

func (l *Libravatar) Name() string {
	return "libravatar"
}

func (l *Libravatar) URL(name string, size int) (string, error) {
	if err := checkSize(size); err != nil {
		return "", err
	}

	base := fmt.Sprintf("https://%s/avatar/%s", l.FallbackHost, md5Hex(name))
	if l.Federated {
		if addr, err := mail.ParseAddress(strings.TrimSpace(name)); err == nil {
			if federated, err := l.federatedURL(addr.Address); err != nil {
				log.Warn("Libravatar lookup for %s failed, using %s: %v", addr.Address, l.FallbackHost, err)
			} else {
				base = federated
			}
		}
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse libravatar url %q: %w", base, err)
	}
	q := u.Query()
	q.Set("d", string(l.Type))
	q.Set("s", strconv.Itoa(size))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (l *Libravatar) TransparentKey() (*color.NRGBA, bool) {
	return transparentKey(string(l.Type))
}
