package businessflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Releases created through the gateway, partitioned by outcome
	releasesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_releases_created_total",
			Help: "Total number of release creations forwarded to the catalog service",
		},
		[]string{"status"},
	)

	// Follower pages fetched during fan-out walks
	fanoutPagesFetchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_fanout_pages_fetched_total",
			Help: "Total number of follower pages fetched during notification fan-out",
		},
	)

	// Notification batches dispatched, partitioned by outcome
	fanoutBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_fanout_batches_total",
			Help: "Total number of notification batches dispatched during fan-out",
		},
		[]string{"status"},
	)

	// Followers covered by successfully dispatched batches
	fanoutFollowersNotifiedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_fanout_followers_notified_total",
			Help: "Total number of followers covered by successful notification batches",
		},
	)

	// Fan-out runs, partitioned by outcome (completed, aborted)
	fanoutRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_fanout_runs_total",
			Help: "Total number of release notification fan-out runs",
		},
		[]string{"outcome"},
	)
)

const (
	metricStatusOK     = "ok"
	metricStatusFailed = "failed"

	fanoutOutcomeCompleted = "completed"
	fanoutOutcomeAborted   = "aborted"
)
