// Package metrics holds the Prometheus collectors for the HTTP surface and
// the places-search pipeline.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

const namespace = "care_compass"

// Metrics exposes every collector. Use New with a fresh registry in tests.
//
// Metrics:
//   - care_compass_http_requests_total{method,route,status}
//   - care_compass_http_request_duration_seconds{method,route}
//   - care_compass_places_searches_total{outcome}
//   - care_compass_places_found - histogram of places per search
//   - care_compass_address_unparsed_total
//   - care_compass_summaries_total{outcome}
//   - care_compass_summary_duration_seconds
//   - care_compass_db_pool_{acquired,idle,total,max}_conns, once WatchPool is called
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	PlacesSearchesTotal  *prometheus.CounterVec
	PlacesFound          prometheus.Histogram
	AddressUnparsedTotal prometheus.Counter

	SummariesTotal  *prometheus.CounterVec
	SummaryDuration prometheus.Histogram

	gatherer   prometheus.Gatherer
	registerer prometheus.Registerer
}

// New registers all collectors, plus Go and process collectors, on reg.
func New(reg *prometheus.Registry) *Metrics {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		PlacesSearchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "places_searches_total",
				Help:      "Places provider searches by outcome",
			},
			[]string{"outcome"}, // "ok", "provider_error", "error"
		),
		PlacesFound: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "places_found",
				Help:      "Number of places returned per search",
				Buckets:   []float64{0, 1, 5, 10, 15, 20},
			},
		),
		AddressUnparsedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "address_unparsed_total",
				Help:      "Places whose address could not be split into components",
			},
		),
		SummariesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "summaries_total",
				Help:      "Search summary generations by outcome",
			},
			[]string{"outcome"}, // "ok", "error"
		),
		SummaryDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "summary_duration_seconds",
				Help:      "Time spent generating and storing a search summary",
				Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8), // 250ms to 32s
			},
		),
		gatherer:   reg,
		registerer: reg,
	}
}

// WatchPool exposes connection pool gauges sampled at scrape time.
func (m *Metrics) WatchPool(pool *pgxpool.Pool) {
	gauge := func(name, help string, read func(*pgxpool.Stat) int32) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, func() float64 { return float64(read(pool.Stat())) })
	}
	m.registerer.MustRegister(
		gauge("db_pool_acquired_conns", "Connections currently in use", (*pgxpool.Stat).AcquiredConns),
		gauge("db_pool_idle_conns", "Idle connections", (*pgxpool.Stat).IdleConns),
		gauge("db_pool_total_conns", "Open connections", (*pgxpool.Stat).TotalConns),
		gauge("db_pool_max_conns", "Configured connection limit", (*pgxpool.Stat).MaxConns),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one completed HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObservePlacesSearch records a provider search and how many places it found.
func (m *Metrics) ObservePlacesSearch(found int, err error) {
	switch {
	case err == nil:
		m.PlacesSearchesTotal.WithLabelValues("ok").Inc()
		m.PlacesFound.Observe(float64(found))
	case errors.Is(err, domain.ErrProvider):
		m.PlacesSearchesTotal.WithLabelValues("provider_error").Inc()
	default:
		m.PlacesSearchesTotal.WithLabelValues("error").Inc()
	}
}

func (m *Metrics) ObserveAddressUnparsed() {
	m.AddressUnparsedTotal.Inc()
}

// ObserveSummary records the outcome of a background summary task.
func (m *Metrics) ObserveSummary(err error, d time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.SummariesTotal.WithLabelValues(outcome).Inc()
	m.SummaryDuration.Observe(d.Seconds())
}
