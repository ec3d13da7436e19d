package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// QuotesTotal counts quote computations by outcome: ok, invalid, unavailable, error.
	QuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carrental_quotes_total",
		Help: "Rental price quotes computed, by outcome.",
	}, []string{"outcome"})

	PricingWarningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carrental_pricing_warnings_total",
		Help: "Ambiguous tier or season matches resolved during pricing.",
	}, []string{"kind"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "carrental_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	EmailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carrental_emails_total",
		Help: "Transactional emails by template and delivery outcome.",
	}, []string{"template", "outcome"})

	CatalogCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carrental_catalog_cache_total",
		Help: "Vehicle catalog cache lookups by result: hit, miss, error.",
	}, []string{"result"})
)

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
