// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

import (
	"errors"
	"fmt"

	"code.gitea.io/faceavatar/modules/util"
)

// ErrEmptyAssetPool represents a "EmptyAssetPool" kind of error.
type ErrEmptyAssetPool struct {
	Category Category
}

// IsErrEmptyAssetPool checks if an error is a ErrEmptyAssetPool.
func IsErrEmptyAssetPool(err error) bool {
	var e ErrEmptyAssetPool
	return errors.As(err, &e)
}

func (err ErrEmptyAssetPool) Error() string {
	return fmt.Sprintf("asset pool is empty [category: %s]", err.Category)
}

func (err ErrEmptyAssetPool) Unwrap() error {
	return util.ErrInvalidArgument
}

// ErrDimensionMismatch represents a "DimensionMismatch" kind of error:
// the pixel storage does not hold exactly Width*Height pixels.
type ErrDimensionMismatch struct {
	Width  int
	Height int
	Len    int
}

// IsErrDimensionMismatch checks if an error is a ErrDimensionMismatch.
func IsErrDimensionMismatch(err error) bool {
	var e ErrDimensionMismatch
	return errors.As(err, &e)
}

func (err ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("pixel buffer dimension mismatch [width: %d, height: %d, bytes: %d]", err.Width, err.Height, err.Len)
}

func (err ErrDimensionMismatch) Unwrap() error {
	return util.ErrInvalidArgument
}
