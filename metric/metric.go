// Package metric measures connector activity with prometheus collectors.
//
// Every connector gets its own meter, labeled with the connector name
// (Owner.Method). The meter counts calls of the wrapped method and
// measures their duration, as well as announcements and reports passed
// through the connector.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const connectorLabel = "connector"

// Metrics holds the collectors shared by all meters.
type Metrics struct {
	calls         *prometheus.CounterVec
	announcements *prometheus.CounterVec
	reports       *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// Option configures Metrics.
type Option func(*options)

type options struct {
	namespace string
	registry  prometheus.Registerer
	buckets   []float64
}

// WithNamespace sets the metrics namespace. Default is "connector".
func WithNamespace(namespace string) Option {
	return func(o *options) {
		o.namespace = namespace
	}
}

// WithRegistry sets the registry. Default is prometheus.DefaultRegisterer.
// Nil registry leaves collectors unregistered.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithBuckets sets buckets of call duration histogram.
func WithBuckets(buckets []float64) Option {
	return func(o *options) {
		o.buckets = buckets
	}
}

// New creates collectors and registers them.
func New(opts ...Option) *Metrics {
	o := options{
		namespace: "connector",
		registry:  prometheus.DefaultRegisterer,
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&o)
	}
	factory := promauto.With(o.registry)
	return &Metrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "calls_total",
			Help:      "Total number of wrapped method calls",
		}, []string{connectorLabel}),
		announcements: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "announcements_total",
			Help:      "Total number of announced value changes",
		}, []string{connectorLabel}),
		reports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "reports_total",
			Help:      "Total number of reported value changes",
		}, []string{connectorLabel}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "call_duration_seconds",
			Help:      "Duration of wrapped method calls in seconds",
			Buckets:   o.buckets,
		}, []string{connectorLabel}),
	}
}

// Meter captures metrics of a single connector. Nil meter is valid and
// measures nothing.
type Meter struct {
	calls         prometheus.Counter
	announcements prometheus.Counter
	reports       prometheus.Counter
	duration      prometheus.Observer
}

// Meter returns a meter for the connector. Nil metrics return nil meter.
func (m *Metrics) Meter(connector string) *Meter {
	if m == nil {
		return nil
	}
	return &Meter{
		calls:         m.calls.WithLabelValues(connector),
		announcements: m.announcements.WithLabelValues(connector),
		reports:       m.reports.WithLabelValues(connector),
		duration:      m.duration.WithLabelValues(connector),
	}
}

// detached returns a counter that is not registered anywhere.
func detached() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Name: "detached"})
}

// Calls returns the calls counter of the connector. Nil metrics return a
// detached counter.
func (m *Metrics) Calls(connector string) prometheus.Counter {
	if m == nil {
		return detached()
	}
	return m.calls.WithLabelValues(connector)
}

// Announcements returns the announcements counter of the connector.
func (m *Metrics) Announcements(connector string) prometheus.Counter {
	if m == nil {
		return detached()
	}
	return m.announcements.WithLabelValues(connector)
}

// Reports returns the reports counter of the connector.
func (m *Metrics) Reports(connector string) prometheus.Counter {
	if m == nil {
		return detached()
	}
	return m.reports.WithLabelValues(connector)
}

// Call captures a call of the wrapped method.
func (m *Meter) Call(d time.Duration) {
	if m == nil {
		return
	}
	m.calls.Inc()
	m.duration.Observe(d.Seconds())
}

// Announce captures an announcement.
func (m *Meter) Announce() {
	if m == nil {
		return
	}
	m.announcements.Inc()
}

// Report captures a report.
func (m *Meter) Report() {
	if m == nil {
		return
	}
	m.reports.Inc()
}
