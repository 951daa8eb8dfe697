// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

import (
	"fmt"
	"hash/crc32"
)

// Field widths and offsets of a packed identifier, lowest bits first
const (
	colorBits  = 8
	noseBits   = 5
	eyesBits   = 5
	mouthBits  = 5
	faceBits   = 5
	rotateBits = 4

	noseShift   = colorBits
	eyesShift   = noseShift + noseBits
	mouthShift  = eyesShift + eyesBits
	faceShift   = mouthShift + mouthBits
	rotateShift = faceShift + faceBits
)

// Largest in-range value of every field
const (
	MaxColor  = 1<<colorBits - 1
	MaxNose   = 1<<noseBits - 1
	MaxEyes   = 1<<eyesBits - 1
	MaxMouth  = 1<<mouthBits - 1
	MaxFace   = 1<<faceBits - 1
	MaxRotate = 1<<rotateBits - 1
)

// Identity selects every part of an avatar. Fields may exceed their packed
// width when set explicitly, Encode masks them and Resolve reduces them.
type Identity struct {
	Color  uint32 `json:"color"`
	Nose   uint32 `json:"nose"`
	Eyes   uint32 `json:"eyes"`
	Mouth  uint32 `json:"mouth"`
	Face   uint32 `json:"face"`
	Rotate uint32 `json:"rotate"`
}

// Decode unpacks a 32-bit identifier
func Decode(id uint32) Identity {
	return Identity{
		Color:  id & MaxColor,
		Nose:   (id >> noseShift) & MaxNose,
		Eyes:   (id >> eyesShift) & MaxEyes,
		Mouth:  (id >> mouthShift) & MaxMouth,
		Face:   (id >> faceShift) & MaxFace,
		Rotate: (id >> rotateShift) & MaxRotate,
	}
}

// Encode packs the identity, fields are masked to their width
func (i Identity) Encode() uint32 {
	return i.Color&MaxColor |
		(i.Nose&MaxNose)<<noseShift |
		(i.Eyes&MaxEyes)<<eyesShift |
		(i.Mouth&MaxMouth)<<mouthShift |
		(i.Face&MaxFace)<<faceShift |
		(i.Rotate&MaxRotate)<<rotateShift
}

// Angle is the final tilt in radians, between -0.14 and 0.16
func (i Identity) Angle() float32 {
	return float32(int(i.Rotate%16)-7) * 0.02
}

func (i Identity) String() string {
	return fmt.Sprintf("color=%d nose=%d eyes=%d mouth=%d face=%d rotate=%d", i.Color, i.Nose, i.Eyes, i.Mouth, i.Face, i.Rotate)
}

// FromText derives an identifier from the CRC-32 (IEEE) of the UTF-8 text
func FromText(text string) uint32 {
	return crc32.ChecksumIEEE([]byte(text))
}

// FromRandom draws a uniformly random identifier
func FromRandom(r Rand) uint32 {
	return r.Uint32()
}
