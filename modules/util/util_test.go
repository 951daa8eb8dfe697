// Copyright 2018 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalArg(t *testing.T) {
	foo := func(_ any, optArg ...int) int {
		return OptionalArg(optArg)
	}
	bar := func(_ any, optArg ...int) int {
		return OptionalArg(optArg, 42)
	}
	assert.Equal(t, 0, foo(nil))
	assert.Equal(t, 100, foo(nil, 100))
	assert.Equal(t, 42, bar(nil))
	assert.Equal(t, 100, bar(nil, 100))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 255))
	assert.Equal(t, 255, Clamp(300, 0, 255))
	assert.Equal(t, 7, Clamp(7, 0, 255))
	assert.InDelta(t, 1.0, Clamp(3.0, 0, 1), 0)
}

func TestIfZero(t *testing.T) {
	assert.Equal(t, "def", IfZero("", "def"))
	assert.Equal(t, "v", IfZero("v", "def"))
	assert.Equal(t, 600, IfZero(0, 600))
}

func TestSilentWrap(t *testing.T) {
	err := NewInvalidArgumentErrorf("bad size %d", -1)
	assert.EqualError(t, err, "bad size -1")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.False(t, errors.Is(err, ErrNotExist))

	err = NewNotExistErrorf("no such provider")
	assert.EqualError(t, err, "no such provider")
	assert.ErrorIs(t, err, ErrNotExist)
}
