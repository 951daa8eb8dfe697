// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package provider builds the avatar URLs of third-party services and fetches their images.
package provider

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"code.gitea.io/faceavatar/modules/setting"
	"code.gitea.io/faceavatar/modules/util"
)

// MaxSize is the largest edge length accepted by the providers
const MaxSize = 2048

// Provider is a third-party avatar service with a fixed configuration
type Provider interface {
	// Name is the lower case provider name used in routes
	Name() string
	// URL returns the image address of name at size x size pixels
	URL(name string, size int) (string, error)
	// TransparentKey reports the color keyed out of fetched images, a nil
	// color means the bottom-left pixel is used. ok is false when nothing is keyed.
	TransparentKey() (key *color.NRGBA, ok bool)
}

// ErrUnknownProvider represents a "UnknownProvider" kind of error.
type ErrUnknownProvider struct {
	Name string
}

// IsErrUnknownProvider checks if an error is a ErrUnknownProvider.
func IsErrUnknownProvider(err error) bool {
	var e ErrUnknownProvider
	return errors.As(err, &e)
}

func (err ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown avatar provider [name: %s]", err.Name)
}

func (err ErrUnknownProvider) Unwrap() error {
	return util.ErrNotExist
}

// ErrFetch represents a failed download from a provider
type ErrFetch struct {
	URL    string
	Status int
	Err    error
}

// IsErrFetch checks if an error is a ErrFetch.
func IsErrFetch(err error) bool {
	var e ErrFetch
	return errors.As(err, &e)
}

func (err ErrFetch) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("fetch avatar [url: %s]: %v", err.URL, err.Err)
	}
	return fmt.Sprintf("fetch avatar [url: %s, status: %d]", err.URL, err.Status)
}

func (err ErrFetch) Unwrap() error {
	return err.Err
}

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Names lists the supported providers
var Names = []string{"gravatar", "libravatar", "dicebear", "robohash"}

// ParseProvider builds a provider from its name and type using the [provider] settings.
// An empty type selects the provider default. background is only used by dicebear.
func ParseProvider(name, typ, background string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gravatar":
		t, err := ParseGravatarType(typ)
		if err != nil {
			return nil, err
		}
		return &Gravatar{Source: setting.Provider.GravatarSource, Type: t}, nil
	case "libravatar":
		t, err := ParseLibravatarType(typ)
		if err != nil {
			return nil, err
		}
		return &Libravatar{
			Type:          t,
			FallbackHost:  setting.Provider.LibravatarFallbackHost,
			Federated:     true,
			LookupTimeout: setting.Provider.FetchTimeout,
		}, nil
	case "dicebear":
		t, err := ParseDiceBearType(typ)
		if err != nil {
			return nil, err
		}
		d := &DiceBear{Source: setting.Provider.DicebearSource, Type: t}
		if background != "" {
			c, err := util.ParseHexColor(background)
			if err != nil {
				return nil, err
			}
			d.Background = &c
		}
		return d, nil
	case "robohash":
		set, err := ParseRobohashSet(typ)
		if err != nil {
			return nil, err
		}
		return &Robohash{Source: setting.Provider.RobohashSource, Set: set}, nil
	}
	return nil, ErrUnknownProvider{Name: name}
}

func checkSize(size int) error {
	if size < 1 || size > MaxSize {
		return util.NewInvalidArgumentErrorf("avatar size must be between 1 and %d, got %d", MaxSize, size)
	}
	return nil
}

// md5Hex is the gravatar style hash: MD5 of the trimmed, lower case name
func md5Hex(name string) string {
	m := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(name))))
	return hex.EncodeToString(m[:])
}

func sha256Hex(name string) string {
	m := sha256.Sum256([]byte(name))
	return hex.EncodeToString(m[:])
}
