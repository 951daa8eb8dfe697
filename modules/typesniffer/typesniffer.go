// Copyright 2021 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package typesniffer

import (
	"net/http"
	"regexp"
	"strings"
)

// Use at most this many bytes to determine Content Type.
const sniffLen = 1024

// SvgMimeType MIME type of SVG images.
const SvgMimeType = "image/svg+xml"

var (
	svgTagRegex      = regexp.MustCompile(`(?si)\A\s*(?:(<!--.*?-->|<!DOCTYPE\s+svg([\s:]+.*?>|>))\s*)*<svg[\s>\/]`)
	svgTagInXMLRegex = regexp.MustCompile(`(?si)\A<\?xml\b.*?\?>\s*(?:(<!--.*?-->|<!DOCTYPE\s+svg([\s:]+.*?>|>))\s*)*<svg[\s>\/]`)
)

// SniffedType contains information about the type of downloaded data.
type SniffedType struct {
	contentType string
}

// IsImage detects if data is an image format
func (ct SniffedType) IsImage() bool {
	return strings.HasPrefix(ct.contentType, "image/")
}

// IsSvgImage detects if data is an SVG image format
func (ct SniffedType) IsSvgImage() bool {
	return strings.HasPrefix(ct.contentType, SvgMimeType)
}

// IsRasterImage is true for the image formats that can be decoded into pixels
func (ct SniffedType) IsRasterImage() bool {
	return ct.IsImage() && !ct.IsSvgImage()
}

// Mime return the mime
func (ct SniffedType) Mime() string {
	return strings.Split(ct.contentType, ";")[0]
}

// DetectContentType extends http.DetectContentType with SVG. Defaults to text/unknown if input is empty.
func DetectContentType(data []byte) SniffedType {
	if len(data) == 0 {
		return SniffedType{"text/unknown"}
	}

	ct := http.DetectContentType(data)

	if len(data) > sniffLen {
		data = data[:sniffLen]
	}

	if (strings.HasPrefix(ct, "text/plain") || strings.HasPrefix(ct, "text/html")) && svgTagRegex.Match(data) ||
		strings.HasPrefix(ct, "text/xml") && svgTagInXMLRegex.Match(data) {
		// http.DetectContentType does not know SVG
		ct = SvgMimeType
	}

	return SniffedType{ct}
}
