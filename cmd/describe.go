// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"slices"

	"code.gitea.io/faceavatar/modules/avatar/face"
	"code.gitea.io/faceavatar/modules/json"
	avatar_service "code.gitea.io/faceavatar/services/avatar"

	"github.com/urfave/cli/v2"
)

// CmdDescribe represents the available describe sub-command.
var CmdDescribe = &cli.Command{
	Name:        "describe",
	Usage:       "Print how an avatar is assembled as JSON",
	Description: "Resolves the identity flags like render does and prints every layer without rendering it.",
	Action:      runDescribe,
	Flags:       slices.Concat(identityFlags, assetFlags),
}

func runDescribe(ctx *cli.Context) error {
	if err := initSettings(); err != nil {
		return err
	}
	svc, err := newAvatarService(ctx)
	if err != nil {
		return err
	}

	var values avatar_service.Values
	switch {
	case ctx.IsSet("text"):
		values = avatar_service.ValuesFromID(face.FromText(ctx.String("text")))
	case ctx.IsSet("id"):
		id, err := parseID(ctx.String("id"))
		if err != nil {
			return err
		}
		values = avatar_service.ValuesFromID(id)
	default:
		if values, _, err = valuesFromFlags(ctx); err != nil {
			return err
		}
	}

	desc, err := svc.Describe(values)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return err
	}
	logf(ctx.App.Writer, "%s", data)
	return nil
}
