package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	cache     *prometheus.CounterVec
	reloads   prometheus.Counter
	stopwords prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rake_http_requests_total",
				Help: "HTTP requests by route and status code.",
			},
			[]string{"route", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rake_extract_duration_seconds",
				Help:    "Time spent scoring documents.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		cache: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rake_cache_requests_total",
				Help: "Keyword cache lookups by result.",
			},
			[]string{"result"},
		),
		reloads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rake_stopword_reloads_total",
				Help: "Number of times the stopword list was swapped.",
			},
		),
		stopwords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "rake_stopwords",
				Help: "Size of the stopword list in service.",
			},
		),
	}
	m.registry.MustRegister(m.requests, m.duration, m.cache, m.reloads, m.stopwords)
	return m
}
