// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package avatar

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// HashAvatar will generate a unique string for a rendered avatar, used as its ETag.
// It will generate the output according to:
// HEX(HASH(id || - || size || - || data))
// The hash being used is SHA256.
// The "-" bytes keep the decimal fields from running into each other or into
// the data, so two different (id, size) pairs never hash the same input.
func HashAvatar(id uint32, size int, data []byte) string {
	h := sha256.New()
	h.Write([]byte(strconv.FormatUint(uint64(id), 10)))
	h.Write([]byte{'-'})
	h.Write([]byte(strconv.Itoa(size)))
	h.Write([]byte{'-'})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
