// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "ofund"
	codeOK           = "OK"
)

// Metrics - request counters and latency
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	invested prometheus.Counter
}

// NewMetrics - collectors in their own registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "processor",
			Name:      "requests_total",
			Help:      "Requests by operation and result code",
		},
		[]string{"operation", "code"},
	)

	m.latency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "processor",
			Name:      "request_duration_seconds",
			Help:      "Time taken to apply a request",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"operation"},
	)

	m.invested = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "processor",
			Name:      "invested_units_total",
			Help:      "Smallest units moved into project vaults",
		},
	)

	m.registry.MustRegister(m.requests, m.latency, m.invested)
	return m
}

// Registry - for the metrics endpoint
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Requests - counter for one operation and code
func (m *Metrics) Requests(operation string, code string) prometheus.Counter {
	return m.requests.WithLabelValues(operation, code)
}

func (m *Metrics) observe(operation string, code string, start time.Time) {
	m.requests.WithLabelValues(operation, code).Inc()
	m.latency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) addInvested(amount uint64) {
	m.invested.Add(float64(amount))
}
