// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "faceavatar_"

// Render sources
const (
	SourceID     = "id"
	SourceText   = "text"
	SourceRandom = "random"
	SourceValues = "values"
)

var (
	renders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: namespace + "renders_total",
		Help: "Number of avatars rendered, by the kind of input",
	}, []string{"source"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: namespace + "cache_hits_total",
		Help: "Number of avatars served from the render cache",
	})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    namespace + "render_duration_seconds",
		Help:    "Time spent compositing and encoding one avatar",
		Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	})

	providerFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: namespace + "provider_fetches_total",
		Help: "Number of images fetched from third-party avatar providers",
	}, []string{"provider", "result"})
)

// ObserveRender records one render from source which took d
func ObserveRender(source string, d time.Duration) {
	renders.WithLabelValues(source).Inc()
	renderDuration.Observe(d.Seconds())
}

// ObserveCacheHit records one avatar served from the cache
func ObserveCacheHit() {
	cacheHits.Inc()
}

// ObserveProviderFetch records a third-party fetch, result is "ok" or "error"
func ObserveProviderFetch(provider string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	providerFetches.WithLabelValues(provider, result).Inc()
}
