// Package metrics holds Prometheus instruments used across the service.
// All collectors are registered with the global registry, so importing this
// package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Cumulative number of successful user registrations.",
		})

	LoginsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "user_logins_total",
			Help: "Cumulative number of successful logins.",
		})

	LoginFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "user_login_failures_total",
			Help: "Cumulative number of rejected login attempts.",
		})

	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Cumulative number of requests rejected by the rate limiter.",
		})

	LogCleanupRunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "log_cleanup_runs_total",
			Help: "Cumulative number of retention cleanup passes.",
		})

	LogFilesDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "log_files_deleted_total",
			Help: "Cumulative number of rotated log files removed by cleanup.",
		})
)

func init() {
	prometheus.MustRegister(
		RegistrationsTotal,
		LoginsTotal,
		LoginFailuresTotal,
		RateLimitedTotal,
		LogCleanupRunsTotal,
		LogFilesDeletedTotal,
	)
}
