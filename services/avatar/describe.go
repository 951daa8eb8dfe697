// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package avatar

import (
	"fmt"

	"code.gitea.io/faceavatar/modules/avatar/face"
	"code.gitea.io/faceavatar/modules/optional"
	"code.gitea.io/faceavatar/modules/util"
)

// Description explains how an avatar is assembled without rendering it
type Description struct {
	ID         uint32        `json:"id"`
	Hex        string        `json:"hex"`
	Identity   face.Identity `json:"identity"`
	Tint       string        `json:"tint"`
	Angle      float32       `json:"angle"`
	Size       int           `json:"size"`
	SmallSpace int           `json:"small_space"`
	Layers     []face.Layer  `json:"layers"`
}

// Describe resolves v like ByValues would and reports every layer
func (s *Service) Describe(v Values) (*Description, error) {
	ident := s.Identity(v)
	layers, err := face.Plan(ident, s.pools, s.size, s.smallSpace)
	if err != nil {
		return nil, err
	}
	id := ident.Encode()
	return &Description{
		ID:         id,
		Hex:        fmt.Sprintf("%08x", id),
		Identity:   ident,
		Tint:       util.HexColor(face.Tint(ident.Color)),
		Angle:      ident.Angle(),
		Size:       s.size,
		SmallSpace: s.smallSpace,
		Layers:     layers,
	}, nil
}

// ValuesFromID sets every field of v from a packed identifier
func ValuesFromID(id uint32) Values {
	ident := face.Decode(id)
	return Values{
		Color:  optional.Some(ident.Color),
		Nose:   optional.Some(ident.Nose),
		Eyes:   optional.Some(ident.Eyes),
		Mouth:  optional.Some(ident.Mouth),
		Face:   optional.Some(ident.Face),
		Rotate: optional.Some(ident.Rotate),
	}
}
