package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront_checkout",
		Subsystem: "payments",
		Name:      "attempts_total",
		Help:      "Payment attempts by outcome (APPROVED, PENDING, FAILED, ERROR).",
	}, []string{"gateway", "outcome"})

	paymentDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront_checkout",
		Subsystem: "payments",
		Name:      "gateway_call_duration_seconds",
		Help:      "Latency of payment gateway charge calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"gateway"})

	checkoutSessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "storefront_checkout",
		Subsystem: "sessions",
		Name:      "active",
		Help:      "Checkout sessions currently held in memory.",
	})
)
