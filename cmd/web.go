// Copyright 2014 The Gogs Authors. All rights reserved.
// Copyright 2016 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"

	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/setting"
	"code.gitea.io/faceavatar/routers"

	"github.com/urfave/cli/v2"
)

// CmdWeb represents the available web sub-command.
var CmdWeb = &cli.Command{
	Name:  "web",
	Usage: "Start the avatar web server",
	Description: `The web server renders avatars on /avatar/get, /avatar/values and /avatar/test,
redirects to third-party providers on /avatar/provider/{provider} and
exposes /api/healthz and optionally /metrics.`,
	Action: runWeb,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Temporary port number to prevent conflict, overrides [server] HTTP_PORT",
		},
	}, assetFlags...),
}

func runWeb(ctx *cli.Context) error {
	if err := initSettings(); err != nil {
		return err
	}
	if ctx.IsSet("port") {
		setting.HTTPPort = ctx.String("port")
	}

	svc, err := newAvatarService(ctx)
	if err != nil {
		return err
	}

	log.Info("Starting %s", setting.String())
	listener, err := net.Listen("tcp", setting.ListenAddr())
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:      routers.NormalRoutes(svc),
		ReadTimeout:  setting.ReadTimeout,
		WriteTimeout: setting.WriteTimeout,
	}
	return serve(ctx.Context, srv, listener)
}

// serve runs srv until ctx is done, then waits up to the hammer time for open requests
func serve(ctx context.Context, srv *http.Server, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()
	log.Info("Listening on http://%s", listener.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down, waiting up to %v for open requests", setting.GracefulHammerTime)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), setting.GracefulHammerTime)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("Graceful shutdown failed, closing all connections: %v", err)
		return srv.Close()
	}
	log.Info("Server stopped")
	return nil
}
