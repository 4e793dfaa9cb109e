// SPDX-License-Identifier: MIT
// Package: permav/avoidance
//
// metrics.go — Prometheus collectors, registered with the default registry.

package avoidance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	levelsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "permav",
		Name:      "levels_built_total",
		Help:      "Number of avoidance class levels computed.",
	})

	candidatesChecked = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "permav",
		Name:      "candidates_checked_total",
		Help:      "Number of one-point extensions tested against a basis.",
	})

	levelBuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "permav",
		Name:      "level_build_seconds",
		Help:      "Time to compute one avoidance class level.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12),
	})

	classesCached = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "permav",
		Name:      "classes_cached",
		Help:      "Number of avoidance classes held by the registry.",
	})
)
