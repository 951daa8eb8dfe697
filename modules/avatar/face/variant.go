// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

// Geometry is the way a layer is placed on the canvas
type Geometry int

const (
	GeometryNormal Geometry = iota
	GeometryFlippedFace
	GeometryFlippedStretchedEyes
	GeometryFlippedLoweredMouth
	GeometryFlippedShrunkNose
)

var geometryNames = map[Geometry]string{
	GeometryNormal:               "normal",
	GeometryFlippedFace:          "flipped-face",
	GeometryFlippedStretchedEyes: "flipped-stretched-eyes",
	GeometryFlippedLoweredMouth:  "flipped-lowered-mouth",
	GeometryFlippedShrunkNose:    "flipped-shrunk-nose",
}

func (g Geometry) String() string {
	return geometryNames[g]
}

// MarshalText implements encoding.TextMarshaler
func (g Geometry) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

var alternateGeometry = map[Category]Geometry{
	CategoryFace:  GeometryFlippedFace,
	CategoryEyes:  GeometryFlippedStretchedEyes,
	CategoryMouth: GeometryFlippedLoweredMouth,
	CategoryNose:  GeometryFlippedShrunkNose,
}

// Selection is the asset and geometry picked for one layer
type Selection struct {
	Category Category `json:"category"`
	Index    int      `json:"index"`
	Bucket   uint32   `json:"bucket"`
	Geometry Geometry `json:"geometry"`
}

// Flipped reports whether the layer is mirrored horizontally
func (s Selection) Flipped() bool {
	return s.Geometry != GeometryNormal
}

// Resolve splits a field value into an asset index and a bucket: index = v mod
// poolSize, bucket = v div poolSize. Bucket 0 keeps the normal geometry, every
// other bucket uses the single alternate geometry of the category.
func Resolve(category Category, v uint32, poolSize int) (Selection, error) {
	if poolSize <= 0 {
		return Selection{}, ErrEmptyAssetPool{Category: category}
	}
	n := uint32(poolSize)
	sel := Selection{
		Category: category,
		Index:    int(v % n),
		Bucket:   v / n,
		Geometry: GeometryNormal,
	}
	if sel.Bucket != 0 {
		sel.Geometry = alternateGeometry[category]
	}
	return sel, nil
}

// Placement is the destination rectangle of a layer
type Placement struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	W    int  `json:"w"`
	H    int  `json:"h"`
	Flip bool `json:"flip"`
}

// Layout places an asset of assetW x assetH on a size x size canvas.
// Normal layers are centered at their native size.
func Layout(sel Selection, assetW, assetH, size, smallSpace int) Placement {
	p := Placement{
		X: (size - assetW) / 2,
		Y: (size - assetH) / 2,
		W: assetW,
		H: assetH,
	}
	switch sel.Geometry {
	case GeometryFlippedFace:
		p.Flip = true
	case GeometryFlippedStretchedEyes:
		p.W = assetW * 7 / 8
		p.H = assetH * 5 / 4
		p.X = (size - p.W) / 2
		p.Y = (size - p.H) / 2
		p.Flip = true
	case GeometryFlippedLoweredMouth:
		p.Y += smallSpace
		p.H -= smallSpace
		p.Flip = true
	case GeometryFlippedShrunkNose:
		p.W = assetW * 3 / 4
		p.H = assetH * 3 / 4
		p.X = (size - p.W) / 2
		p.Y = (size - p.H) / 2
		p.Flip = true
	}
	return p
}
