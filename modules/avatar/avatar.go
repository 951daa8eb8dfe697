// Copyright 2014 The Gogs Authors. All rights reserved.
// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package avatar

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"code.gitea.io/faceavatar/modules/avatar/face"

	_ "image/gif"  // for processing gif images
	_ "image/jpeg" // for processing jpeg images

	_ "golang.org/x/image/bmp"  // for processing bmp images
	_ "golang.org/x/image/webp" // for processing webp images
)

// ErrEncode is returned when the image encoder fails, it wraps the encoder error unchanged
type ErrEncode struct {
	Err error
}

// IsErrEncode checks if an error is a ErrEncode.
func IsErrEncode(err error) bool {
	var e ErrEncode
	return errors.As(err, &e)
}

func (err ErrEncode) Error() string {
	return fmt.Sprintf("encode avatar: %v", err.Err)
}

func (err ErrEncode) Unwrap() error {
	return err.Err
}

var pngEncoder = &png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNGTo writes the buffer as a PNG image
func EncodePNGTo(w io.Writer, p *face.PixelBuffer) error {
	if err := pngEncoder.Encode(w, p.Image()); err != nil {
		return ErrEncode{Err: err}
	}
	return nil
}

// EncodePNG returns the buffer as PNG bytes
func EncodePNG(p *face.PixelBuffer) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := EncodePNGTo(buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeImage decodes a png, jpeg, gif, bmp or webp image into a buffer.
// A positive maxWidth or maxHeight rejects larger images before they are decoded.
func DecodeImage(data []byte, maxWidth, maxHeight int) (*face.PixelBuffer, error) {
	imgCfg, imgType, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image.DecodeConfig: %w", err)
	}
	if maxWidth > 0 && imgCfg.Width > maxWidth {
		return nil, fmt.Errorf("image width is too large: %d > %d", imgCfg.Width, maxWidth)
	}
	if maxHeight > 0 && imgCfg.Height > maxHeight {
		return nil, fmt.Errorf("image height is too large: %d > %d", imgCfg.Height, maxHeight)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image.Decode %s: %w", imgType, err)
	}
	return face.FromImage(img), nil
}
