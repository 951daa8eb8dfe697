// Copyright 2018 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"code.gitea.io/faceavatar/modules/avatar/assets"
	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/optional"
	"code.gitea.io/faceavatar/modules/setting"
	"code.gitea.io/faceavatar/modules/util"
	avatar_service "code.gitea.io/faceavatar/services/avatar"

	"github.com/urfave/cli/v2"
)

func installSignals() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// install notify
		signalChannel := make(chan os.Signal, 1)

		signal.Notify(
			signalChannel,
			syscall.SIGINT,
			syscall.SIGTERM,
		)
		select {
		case <-signalChannel:
		case <-ctx.Done():
		}
		cancel()
		signal.Reset()
	}()

	return ctx, cancel
}

// initSettings loads every section of the config file and applies the log settings
func initSettings() error {
	if err := setting.LoadCommonSettings(setting.CfgProvider); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	setting.InitLoggers()
	return nil
}

var assetFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "assets",
		Usage: "Asset directory, overrides [avatar] ASSET_PATH",
	},
	&cli.IntFlag{
		Name:  "size",
		Usage: "Avatar size in pixels, overrides [avatar] SIZE",
	},
}

// newAvatarService loads the asset pools and builds the service from the settings and the asset flags
func newAvatarService(ctx *cli.Context) (*avatar_service.Service, error) {
	if ctx.IsSet("assets") {
		setting.Avatar.AssetPath = util.ResolvePath(setting.AppWorkPath, ctx.String("assets"))
	}
	if ctx.IsSet("size") {
		size := ctx.Int("size")
		if size <= 0 {
			return nil, util.NewInvalidArgumentErrorf("size must be positive, got %d", size)
		}
		setting.Avatar.Size = size
		setting.Avatar.SmallSpace = size / 12
	}

	pools, err := assets.LoadPools(setting.Avatar.AssetPath, setting.Avatar.AssetMatcher)
	if err != nil {
		return nil, fmt.Errorf("load assets from %s: %w", setting.Avatar.AssetPath, err)
	}
	return avatar_service.NewServiceFromSetting(pools)
}

var identityFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "id",
		Usage: "Packed identifier, only the low 32 bits are used",
	},
	&cli.StringFlag{
		Name:    "text",
		Aliases: []string{"t"},
		Usage:   "Text to derive the identifier from",
	},
	&cli.StringFlag{Name: "color", Usage: "Face color (0-255)"},
	&cli.StringFlag{Name: "nose", Usage: "Nose value (0-31)"},
	&cli.StringFlag{Name: "eyes", Usage: "Eyes value (0-31)"},
	&cli.StringFlag{Name: "mouth", Usage: "Mouth value (0-31)"},
	&cli.StringFlag{Name: "face", Usage: "Face value (0-31)"},
	&cli.StringFlag{Name: "rotate", Usage: "Rotation value (0-15), 7 is upright"},
}

// parseID parses a decimal identifier keeping its low 32 bits
func parseID(s string) (uint32, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, util.NewInvalidArgumentErrorf("invalid id %q", s)
	}
	return uint32(id), nil
}

// valuesFromFlags reads the field flags, set reports whether any of them was given
func valuesFromFlags(ctx *cli.Context) (values avatar_service.Values, set bool, err error) {
	for _, f := range []struct {
		name string
		dst  *optional.Option[uint32]
	}{
		{"color", &values.Color},
		{"nose", &values.Nose},
		{"eyes", &values.Eyes},
		{"mouth", &values.Mouth},
		{"face", &values.Face},
		{"rotate", &values.Rotate},
	} {
		v, err := optional.ParseUint32(ctx.String(f.name))
		if err != nil {
			return values, false, util.NewInvalidArgumentErrorf("invalid --%s %q", f.name, ctx.String(f.name))
		}
		set = set || v.Has()
		*f.dst = v
	}
	return values, set, nil
}

// writeOutput writes data to the file named by the output flag, "-" is the app writer
func writeOutput(ctx *cli.Context, data []byte) (string, error) {
	output := ctx.String("output")
	if output == "-" {
		_, err := ctx.App.Writer.Write(data)
		return "stdout", err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return "", err
	}
	return output, nil
}

func logf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format+"\n", args...); err != nil {
		log.Error("write output: %v", err)
	}
}
