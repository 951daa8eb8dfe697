// Copyright 2016 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package routers

import (
	"net/http"

	"code.gitea.io/faceavatar/modules/log"
	"code.gitea.io/faceavatar/modules/setting"
	"code.gitea.io/faceavatar/routers/common"
	web_avatar "code.gitea.io/faceavatar/routers/web/avatar"
	"code.gitea.io/faceavatar/routers/web/healthcheck"
	avatar_service "code.gitea.io/faceavatar/services/avatar"

	"github.com/go-chi/chi/v5"
)

// NormalRoutes represents non install routes
func NormalRoutes(svc *avatar_service.Service) *chi.Mux {
	r := chi.NewRouter()
	for _, middle := range common.Middlewares() {
		r.Use(middle)
	}

	r.Head("/", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/api/healthz", healthcheck.Check(svc))
	r.Route("/avatar", func(r chi.Router) {
		web_avatar.Routes(r, svc)
	})

	if setting.Metrics.Enabled {
		r.Get("/metrics", common.Metrics)
		log.Info("Prometheus metrics are exposed on /metrics")
	}
	return r
}
