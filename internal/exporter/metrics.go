// Package exporter publishes the dashboard's samples as Prometheus metrics.
package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rileyhilliard/bwmon/internal/netstat"
)

const namespace = "bwmon"

// Direction label values.
const (
	dirRX = "rx"
	dirTX = "tx"
)

// Metrics holds the exported series. It satisfies monitor.Observer.
type Metrics struct {
	Throughput *prometheus.GaugeVec
	Counter    *prometheus.GaugeVec
	Resets     *prometheus.CounterVec
	Samples    *prometheus.CounterVec
}

// New creates unregistered metrics.
func New() *Metrics {
	return &Metrics{
		Throughput: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "throughput_bytes_per_second",
				Help:      "Throughput over the last sampling interval.",
			},
			[]string{"interface", "direction"},
		),
		Counter: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "interface_bytes",
				Help:      "Cumulative byte counter as read from the interface.",
			},
			[]string{"interface", "direction"},
		),
		Resets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "counter_resets_total",
				Help:      "Number of times an interface counter went backwards.",
			},
			[]string{"interface", "direction"},
		),
		Samples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "samples_total",
				Help:      "Number of samples taken.",
			},
			[]string{"interface"},
		),
	}
}

// Observe records one sample.
func (m *Metrics) Observe(iface string, rx, tx float64, totals netstat.Counters) {
	m.Throughput.WithLabelValues(iface, dirRX).Set(rx)
	m.Throughput.WithLabelValues(iface, dirTX).Set(tx)
	m.Counter.WithLabelValues(iface, dirRX).Set(float64(totals.RX))
	m.Counter.WithLabelValues(iface, dirTX).Set(float64(totals.TX))
	m.Samples.WithLabelValues(iface).Inc()
}

// CounterReset records a counter going backwards.
func (m *Metrics) CounterReset(iface, direction string) {
	m.Resets.WithLabelValues(iface, direction).Inc()
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.Throughput.Describe(ch)
	m.Counter.Describe(ch)
	m.Resets.Describe(ch)
	m.Samples.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.Throughput.Collect(ch)
	m.Counter.Collect(ch)
	m.Resets.Collect(ch)
	m.Samples.Collect(ch)
}

// check interfaces
var (
	_ prometheus.Collector = (*Metrics)(nil)
)
