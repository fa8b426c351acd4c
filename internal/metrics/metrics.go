package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staffing_application_transitions_total",
			Help: "Total number of application status transitions applied",
		},
		[]string{"from", "to"},
	)

	TransitionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staffing_transition_failures_total",
			Help: "Total number of rejected status transitions",
		},
		[]string{"reason"},
	)

	BulkMatchItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staffing_bulk_match_items_total",
			Help: "Per-item outcomes of bulk match operations",
		},
		[]string{"result"},
	)

	JobPromotions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "staffing_job_promotions_total",
			Help: "Limited jobs promoted to normal visibility",
		},
	)

	WeeklyDowngrades = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "staffing_weekly_frequency_downgrades_total",
			Help: "Jobs downgraded to single-date after losing work dates",
		},
	)
)
