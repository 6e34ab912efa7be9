package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal counts registration attempts by outcome
	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tikket_registrations_total",
			Help: "Total number of event registration attempts",
		},
		[]string{"outcome"},
	)

	// EventsCreatedTotal counts created events
	EventsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tikket_events_created_total",
			Help: "Total number of events created",
		},
	)

	// MintsTotal counts pass mint attempts by status
	MintsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tikket_mints_total",
			Help: "Total number of pass mint attempts",
		},
		[]string{"status"},
	)

	// MintDuration tracks end-to-end mint duration
	MintDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tikket_mint_duration_seconds",
			Help:    "Pass mint duration in seconds",
			Buckets: []float64{1, 2.5, 5, 10, 20, 40, 60, 120},
		},
	)

	// UploadsTotal counts storage gateway upload attempts by endpoint and status
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tikket_storage_uploads_total",
			Help: "Total number of storage gateway upload attempts",
		},
		[]string{"endpoint", "status"},
	)

	// MailPublishedTotal counts confirmation-mail publish attempts by status
	MailPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tikket_mail_published_total",
			Help: "Total number of confirmation mail publish attempts",
		},
		[]string{"status"},
	)
)
