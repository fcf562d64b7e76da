package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Domain
	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Total posts created",
		},
	)
	PostsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_deleted_total",
			Help: "Total posts deleted",
		},
	)
	LoginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "login_failures_total",
			Help: "Total failed login attempts",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(PostsCreated)
	prometheus.MustRegister(PostsDeleted)
	prometheus.MustRegister(LoginFailures)
}
