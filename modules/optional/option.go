// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package optional

import "strconv"

type Option[T any] []T

func None[T any]() Option[T] {
	return nil
}

func Some[T any](v T) Option[T] {
	return Option[T]{v}
}

func FromPtr[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

func (o Option[T]) Has() bool {
	return o != nil
}

func (o Option[T]) Value() T {
	var zero T
	return o.ValueOrDefault(zero)
}

func (o Option[T]) ValueOrDefault(v T) T {
	if o.Has() {
		return o[0]
	}
	return v
}

// ParseUint32 parses a decimal form value, an empty string is None
func ParseUint32(s string) (Option[uint32], error) {
	if s == "" {
		return None[uint32](), nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return None[uint32](), err
	}
	return Some(uint32(v)), nil
}
