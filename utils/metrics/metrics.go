// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agri_market",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "agri_market",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	AdminTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agri_market",
		Name:      "admin_transitions_total",
		Help:      "Applied admin role transitions by action and admin type.",
	}, []string{"action", "admin_type"})

	ListingEngagement = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agri_market",
		Name:      "listing_engagement_total",
		Help:      "Listing view and contact increments by listing type.",
	}, []string{"kind", "listing_type"})

	NearbySearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "agri_market",
		Name:      "nearby_admin_results",
		Help:      "Number of admins returned by a nearby search.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	AuditPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "agri_market",
		Name:      "audit_publish_failures_total",
		Help:      "Admin audit events that could not be published.",
	})
)

func IncAdminTransition(action, adminType string) {
	AdminTransitions.WithLabelValues(action, adminType).Inc()
}

func AddViews(listingType string, n int) {
	ListingEngagement.WithLabelValues("view", listingType).Add(float64(n))
}

func IncContact(listingType string) {
	ListingEngagement.WithLabelValues("contact", listingType).Inc()
}
