// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package provider

import (
	"fmt"
	"image/color"
	"net/url"
	"strings"

	"code.gitea.io/faceavatar/modules/util"
)

// DiceBearType is a dicebear avatar style, named the way the API path spells it
type DiceBearType string

const (
	DiceBearMale              DiceBearType = "male"
	DiceBearFemale            DiceBearType = "female"
	DiceBearHuman             DiceBearType = "human"
	DiceBearIdenticon         DiceBearType = "identicon"
	DiceBearInitials          DiceBearType = "initials"
	DiceBearBottts            DiceBearType = "bottts"
	DiceBearAvataaars         DiceBearType = "avataaars"
	DiceBearJdenticon         DiceBearType = "jdenticon"
	DiceBearGridy             DiceBearType = "gridy"
	DiceBearMicah             DiceBearType = "micah"
	DiceBearAdventurer        DiceBearType = "adventurer"
	DiceBearAdventurerNeutral DiceBearType = "adventurer-neutral"
	DiceBearBigEars           DiceBearType = "big-ears"
	DiceBearBigEarsNeutral    DiceBearType = "big-ears-neutral"
	DiceBearBigSmile          DiceBearType = "big-smile"
	DiceBearCroodles          DiceBearType = "croodles"
	DiceBearCroodlesNeutral   DiceBearType = "croodles-neutral"
	DiceBearMiniavs           DiceBearType = "miniavs"
	DiceBearOpenPeeps         DiceBearType = "open-peeps"
	DiceBearPersonas          DiceBearType = "personas"
	DiceBearPixelArt          DiceBearType = "pixel-art"
	DiceBearPixelArtNeutral   DiceBearType = "pixel-art-neutral"
)

// DiceBearTypes lists every supported style
var DiceBearTypes = []DiceBearType{
	DiceBearMale, DiceBearFemale, DiceBearHuman, DiceBearIdenticon, DiceBearInitials,
	DiceBearBottts, DiceBearAvataaars, DiceBearJdenticon, DiceBearGridy, DiceBearMicah,
	DiceBearAdventurer, DiceBearAdventurerNeutral, DiceBearBigEars, DiceBearBigEarsNeutral,
	DiceBearBigSmile, DiceBearCroodles, DiceBearCroodlesNeutral, DiceBearMiniavs,
	DiceBearOpenPeeps, DiceBearPersonas, DiceBearPixelArt, DiceBearPixelArtNeutral,
}

// ParseDiceBearType accepts the kebab-case style or its CamelCase spelling, empty means identicon
func ParseDiceBearType(s string) (DiceBearType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DiceBearIdenticon, nil
	}
	k := kebab(s)
	for _, t := range DiceBearTypes {
		if string(t) == k {
			return t, nil
		}
	}
	return "", util.NewInvalidArgumentErrorf("unknown dicebear type %q", s)
}

// kebab turns "BigEarsNeutral" or "big_ears_neutral" into "big-ears-neutral"
func kebab(s string) string {
	var sb strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r == ' ':
			r = '-'
		case r >= 'A' && r <= 'Z':
			if i > 0 && !strings.HasSuffix(sb.String(), "-") {
				sb.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// DiceBear builds dicebear API URLs, the name is hashed with SHA-256
type DiceBear struct {
	Source     string
	Type       DiceBearType
	Background *color.NRGBA
}

func (d *DiceBear) Name() string {
	return "dicebear"
}

// URL returns Source/<type>/<sha256>.png?size=<size>[&b=%23rrggbb]
func (d *DiceBear) URL(name string, size int) (string, error) {
	if err := checkSize(size); err != nil {
		return "", err
	}
	u := fmt.Sprintf("%s/%s/%s.png?size=%d", strings.TrimSuffix(d.Source, "/"), d.Type, sha256Hex(name), size)
	if d.Background != nil {
		u += "&b=" + url.QueryEscape(util.HexColor(*d.Background))
	}
	return u, nil
}

func (d *DiceBear) TransparentKey() (*color.NRGBA, bool) {
	return nil, false
}
