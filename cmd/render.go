// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"slices"

	avatar_service "code.gitea.io/faceavatar/services/avatar"

	"github.com/urfave/cli/v2"
)

// CmdRender represents the available render sub-command.
var CmdRender = &cli.Command{
	Name:  "render",
	Usage: "Render one avatar to a PNG file",
	Description: `Renders the avatar of --text, --id or the field values. Fields which are not
given are random, without any identity flag a random avatar is rendered.`,
	Action: runRender,
	Flags: slices.Concat(identityFlags, assetFlags, []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   "avatar.png",
			Usage:   "Output file, \"-\" writes to stdout",
		},
	}),
}

func runRender(ctx *cli.Context) error {
	if err := initSettings(); err != nil {
		return err
	}
	svc, err := newAvatarService(ctx)
	if err != nil {
		return err
	}

	var result *avatar_service.Result
	switch {
	case ctx.IsSet("text"):
		result, err = svc.ByText(ctx.Context, ctx.String("text"))
	case ctx.IsSet("id"):
		var id uint32
		if id, err = parseID(ctx.String("id")); err != nil {
			return err
		}
		result, err = svc.ByID(ctx.Context, id)
	default:
		values, set, verr := valuesFromFlags(ctx)
		if verr != nil {
			return verr
		}
		if set {
			result, err = svc.ByValues(ctx.Context, values)
		} else {
			result, err = svc.ByRandom(ctx.Context)
		}
	}
	if err != nil {
		return err
	}

	dest, err := writeOutput(ctx, result.Data)
	if err != nil {
		return err
	}
	if dest != "stdout" {
		logf(ctx.App.Writer, "Rendered avatar %08x (%s) to %s", result.ID, result.Identity, dest)
	}
	return nil
}
