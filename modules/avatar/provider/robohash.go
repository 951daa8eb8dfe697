// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package provider

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"code.gitea.io/faceavatar/modules/util"
)

// RobohashSet selects one of the robohash image sets
type RobohashSet int

const (
	RobohashRobots RobohashSet = iota + 1
	RobohashMonsters
	RobohashRobotHeads
	RobohashKittens
	RobohashTechnicians
)

var robohashSetNames = map[string]RobohashSet{
	"robots":      RobohashRobots,
	"monsters":    RobohashMonsters,
	"robot-heads": RobohashRobotHeads,
	"robotheads":  RobohashRobotHeads,
	"kittens":     RobohashKittens,
	"technicians": RobohashTechnicians,
}

// ParseRobohashSet accepts a set number 1-5 or its name, empty means robots
func ParseRobohashSet(s string) (RobohashSet, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RobohashRobots, nil
	}
	if set, ok := robohashSetNames[s]; ok {
		return set, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "set"))
	if err != nil || n < int(RobohashRobots) || n > int(RobohashTechnicians) {
		return 0, util.NewInvalidArgumentErrorf("unknown robohash set %q", s)
	}
	return RobohashSet(n), nil
}

// Robohash builds robohash.org URLs, the name is hashed like gravatar
type Robohash struct {
	Source string
	Set    RobohashSet
}

func (r *Robohash) Name() string {
	return "robohash"
}

// URL returns Source/set_set<n>/gravatar=hashed/size=<s>x<s>/<md5>.png
func (r *Robohash) URL(name string, size int) (string, error) {
	if err := checkSize(size); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/set_set%d/gravatar=hashed/size=%dx%d/%s.png",
		strings.TrimSuffix(r.Source, "/"), r.Set, size, size, md5Hex(name)), nil
}

func (r *Robohash) TransparentKey() (*color.NRGBA, bool) {
	return nil, false
}
