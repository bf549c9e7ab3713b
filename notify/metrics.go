// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type notifyMetrics struct {
	events      *prometheus.CounterVec
	subscribers prometheus.Gauge
	dropped     prometheus.Counter
}

func newNotifyMetrics(promRegistry prometheus.Registerer) *notifyMetrics {
	factory := promauto.With(promRegistry)
	return &notifyMetrics{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quickvote_notify_events_total",
			Help: "Change events published, by type",
		}, []string{"type"}),
		subscribers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "quickvote_notify_subscribers",
			Help: "Connected live-update observers",
		}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "quickvote_notify_dropped_total",
			Help: "Events dropped because an observer queue was full",
		}),
	}
}
