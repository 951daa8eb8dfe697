// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package face

import "math/rand/v2"

// Rand supplies uniformly distributed random numbers
type Rand interface {
	Uint32() uint32
}

// SystemRand draws from the runtime's random source and is safe for concurrent use
var SystemRand Rand = systemRand{}

type systemRand struct{}

func (systemRand) Uint32() uint32 {
	return rand.Uint32()
}

// NewRand returns a seeded source, it is not safe for concurrent use
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomField draws a value in 0..maxValue, every field maximum is a power of two minus one so there is no bias
func RandomField(r Rand, maxValue uint32) uint32 {
	if maxValue == 1<<32-1 {
		return r.Uint32()
	}
	return r.Uint32() % (maxValue + 1)
}
