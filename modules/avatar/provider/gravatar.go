// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package provider

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"code.gitea.io/faceavatar/modules/util"
)

// GravatarType is the generated default image of gravatar
type GravatarType string

const (
	GravatarIdenticon GravatarType = "identicon"
	GravatarMonsterID GravatarType = "monsterid"
	GravatarWavatar   GravatarType = "wavatar"
	GravatarRetro     GravatarType = "retro"
)

var gravatarTypes = []GravatarType{GravatarIdenticon, GravatarMonsterID, GravatarWavatar, GravatarRetro}

// ParseGravatarType parses a type name case-insensitively, empty means identicon
func ParseGravatarType(s string) (GravatarType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return GravatarIdenticon, nil
	}
	for _, t := range gravatarTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", util.NewInvalidArgumentErrorf("unknown gravatar type %q", s)
}

// transparentKey is shared by gravatar and libravatar, which render the same generators
func transparentKey(t string) (*color.NRGBA, bool) {
	switch t {
	case string(GravatarIdenticon):
		return &white, true
	case string(GravatarMonsterID), string(GravatarRetro):
		return nil, true
	}
	return nil, false
}

// Gravatar builds gravatar.com URLs
type Gravatar struct {
	Source string
	Type   GravatarType
}

func (g *Gravatar) Name() string {
	return "gravatar"
}

// URL returns Source/<md5>?d=<type>&s=<size>
func (g *Gravatar) URL(name string, size int) (string, error) {
	if err := checkSize(size); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s?d=%s&s=%s", strings.TrimSuffix(g.Source, "/"), md5Hex(name), g.Type, strconv.Itoa(size)), nil
}

func (g *Gravatar) TransparentKey() (*color.NRGBA, bool) {
	return transparentKey(string(g.Type))
}
