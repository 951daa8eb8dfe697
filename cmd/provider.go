// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"net/http"
	"strings"

	"code.gitea.io/faceavatar/modules/avatar"
	"code.gitea.io/faceavatar/modules/avatar/provider"
	"code.gitea.io/faceavatar/modules/setting"

	"github.com/urfave/cli/v2"
)

// CmdProviderURL represents the available provider-url sub-command.
var CmdProviderURL = &cli.Command{
	Name:      "provider-url",
	Usage:     "Print the avatar URL of a third-party provider",
	ArgsUsage: "<" + strings.Join(provider.Names, "|") + "> <name>",
	Description: `Prints the image URL of name at the provider. With --fetch the image is
downloaded, its background keyed out where the provider type needs it, and saved as PNG.`,
	Action: runProviderURL,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "type",
			Usage: "Provider specific avatar type, empty selects the provider default",
		},
		&cli.IntFlag{
			Name:  "size",
			Value: 80,
			Usage: "Requested avatar size in pixels",
		},
		&cli.StringFlag{
			Name:  "background",
			Usage: "Background color as #rrggbb (dicebear only)",
		},
		&cli.BoolFlag{
			Name:  "fetch",
			Usage: "Download the image instead of printing the URL",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   "provider.png",
			Usage:   "Output file for --fetch, \"-\" writes to stdout",
		},
	},
}

func runProviderURL(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("provider-url needs a provider and a name")
	}
	if err := initSettings(); err != nil {
		return err
	}

	p, err := provider.ParseProvider(ctx.Args().Get(0), ctx.String("type"), ctx.String("background"))
	if err != nil {
		return err
	}
	name, size := ctx.Args().Get(1), ctx.Int("size")

	if !ctx.Bool("fetch") {
		u, err := p.URL(name, size)
		if err != nil {
			return err
		}
		logf(ctx.App.Writer, "%s", u)
		return nil
	}

	client := &http.Client{Timeout: setting.Provider.FetchTimeout}
	buf, err := provider.Fetch(ctx.Context, client, p, name, size)
	if err != nil {
		return err
	}
	data, err := avatar.EncodePNG(buf)
	if err != nil {
		return err
	}
	dest, err := writeOutput(ctx, data)
	if err != nil {
		return err
	}
	if dest != "stdout" {
		logf(ctx.App.Writer, "Saved %dx%d %s avatar to %s", buf.Width(), buf.Height(), p.Name(), dest)
	}
	return nil
}
