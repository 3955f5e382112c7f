package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics of the broker
type Metrics struct {
	// RPC metrics
	RPCCalls    *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec

	// Client metrics
	ClientsActive    prometheus.Gauge
	ClientsReclaimed prometheus.Counter

	// Handle metrics
	HandlesActive *prometheus.GaugeVec

	// Activation metrics
	Activations          prometheus.Counter
	ActivationDuration   prometheus.Histogram
	DeactivationDuration prometheus.Histogram
	Aborts               prometheus.Counter

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		// RPC metrics
		RPCCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "broker_rpc_calls_total",
				Help: "Total number of broker RPC calls",
			},
			[]string{"method", "status"},
		),
		RPCDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "broker_rpc_duration_seconds",
				Help:    "Broker RPC duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method"},
		),

		// Client metrics
		ClientsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "broker_clients_active",
				Help: "Number of client processes with a live keep-alive",
			},
		),
		ClientsReclaimed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "broker_clients_reclaimed_total",
				Help: "Total number of dead clients reclaimed by the sweeper",
			},
		),

		// Handle metrics
		HandlesActive: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "broker_handles_active",
				Help: "Number of live resource handles",
			},
			[]string{"kind"},
		),

		// Activation metrics
		Activations: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "broker_activations_total",
				Help: "Total number of network-group activations",
			},
		),
		ActivationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "broker_activation_duration_seconds",
				Help:    "Network-group activation duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),
		DeactivationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "broker_deactivation_duration_seconds",
				Help:    "Network-group deactivation duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),
		Aborts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "broker_vstream_aborts_total",
				Help: "Total number of vstream aborts",
			},
		),

		// System metrics
		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "broker_uptime_seconds",
				Help: "Broker uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordRPC records one broker RPC call
func (m *Metrics) RecordRPC(method, status string, duration time.Duration) {
	m.RPCCalls.WithLabelValues(method, status).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// SetClientsActive sets the number of live client processes
func (m *Metrics) SetClientsActive(count int) {
	m.ClientsActive.Set(float64(count))
}

// IncClientsReclaimed counts one reclaimed dead client
func (m *Metrics) IncClientsReclaimed() {
	m.ClientsReclaimed.Inc()
}

// SetHandlesActive sets the live-handle gauge for one resource kind
func (m *Metrics) SetHandlesActive(kind string, count int) {
	m.HandlesActive.WithLabelValues(kind).Set(float64(count))
}

// RecordActivation records one activation and its duration
func (m *Metrics) RecordActivation(duration time.Duration) {
	m.Activations.Inc()
	m.ActivationDuration.Observe(duration.Seconds())
}

// RecordDeactivation records one deactivation duration
func (m *Metrics) RecordDeactivation(duration time.Duration) {
	m.DeactivationDuration.Observe(duration.Seconds())
}

// IncAborts counts one vstream abort
func (m *Metrics) IncAborts() {
	m.Aborts.Inc()
}
