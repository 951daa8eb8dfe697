// Copyright 2024 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// GlobMatcher is a compiled glob that remembers its pattern
type GlobMatcher struct {
	compiledGlob  glob.Glob
	patternString string
}

var _ glob.Glob = (*GlobMatcher)(nil)

func (g *GlobMatcher) Match(s string) bool {
	return g.compiledGlob.Match(s)
}

// MatchBase matches the last element of a slash or OS separated path
func (g *GlobMatcher) MatchBase(p string) bool {
	return g.compiledGlob.Match(filepath.Base(filepath.FromSlash(p)))
}

func (g *GlobMatcher) PatternString() string {
	return g.patternString
}

func (g *GlobMatcher) String() string {
	return g.patternString
}

func GlobMatcherCompile(pattern string, separators ...rune) (*GlobMatcher, error) {
	g, err := glob.Compile(pattern, separators...)
	if err != nil {
		return nil, err
	}
	return &GlobMatcher{
		compiledGlob:  g,
		patternString: pattern,
	}, nil
}
