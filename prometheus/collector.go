// Package prometheus exports dynvec operation metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := dvprom.NewCollector(reg, dvprom.WithNamespace("myapp"))
//	v, _ := dynvec.New[int](0, dynvec.WithMetricsCollector(mc))
package prometheus

import (
	"errors"
	"time"

	"github.com/hupe1980/dynvec"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Compile time check to ensure Collector satisfies dynvec.MetricsCollector.
var _ dynvec.MetricsCollector = (*Collector)(nil)

const (
	statusOK                = "ok"
	statusIndexOutOfBounds  = "index_out_of_bounds"
	statusAllocationFailure = "allocation_failure"
	statusError             = "error"
)

type options struct {
	namespace   string
	constLabels prom.Labels
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace prefixes all metric names. Defaults to "dynvec".
func WithNamespace(namespace string) Option {
	return func(o *options) {
		o.namespace = namespace
	}
}

// WithConstLabels attaches fixed labels to every metric, e.g. to tell
// vectors of different subsystems apart.
func WithConstLabels(labels prom.Labels) Option {
	return func(o *options) {
		o.constLabels = labels
	}
}

// Collector implements dynvec.MetricsCollector on top of Prometheus metrics.
// It is safe for concurrent use and may be shared by many vectors.
type Collector struct {
	operations    *prom.CounterVec
	reallocations *prom.HistogramVec
	freedSlots    prom.Counter
}

// NewCollector creates the metrics and registers them with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prom.Registerer, optFns ...Option) (*Collector, error) {
	o := options{namespace: "dynvec"}
	for _, fn := range optFns {
		fn(&o)
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	c := &Collector{
		operations: prom.NewCounterVec(prom.CounterOpts{
			Namespace:   o.namespace,
			Name:        "operations_total",
			Help:        "Vector operations by type and outcome",
			ConstLabels: o.constLabels,
		}, []string{"op", "status"}),
		reallocations: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace:   o.namespace,
			Name:        "reallocation_duration_seconds",
			Help:        "Latency of storage reallocations (allocate and copy)",
			ConstLabels: o.constLabels,
			Buckets:     prom.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"kind", "status"}),
		freedSlots: prom.NewCounter(prom.CounterOpts{
			Namespace:   o.namespace,
			Name:        "freed_slots_total",
			Help:        "Element slots released by Free",
			ConstLabels: o.constLabels,
		}),
	}

	for _, m := range []prom.Collector{c.operations, c.reallocations, c.freedSlots} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordPush implements dynvec.MetricsCollector.
func (c *Collector) RecordPush(err error) {
	c.operations.WithLabelValues("push", status(err)).Inc()
}

// RecordGet implements dynvec.MetricsCollector.
func (c *Collector) RecordGet(err error) {
	c.operations.WithLabelValues("get", status(err)).Inc()
}

// RecordPop implements dynvec.MetricsCollector.
func (c *Collector) RecordPop(err error) {
	c.operations.WithLabelValues("pop", status(err)).Inc()
}

// RecordRealloc implements dynvec.MetricsCollector.
func (c *Collector) RecordRealloc(oldCap, newCap int, duration time.Duration, err error) {
	kind := "grow"
	if newCap < oldCap {
		kind = "shrink"
	}
	c.reallocations.WithLabelValues(kind, status(err)).Observe(duration.Seconds())
}

// RecordFree implements dynvec.MetricsCollector.
func (c *Collector) RecordFree(capacity int) {
	c.operations.WithLabelValues("free", statusOK).Inc()
	c.freedSlots.Add(float64(capacity))
}

func status(err error) string {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, dynvec.ErrIndexOutOfBounds):
		return statusIndexOutOfBounds
	case errors.Is(err, dynvec.ErrAllocationFailure):
		return statusAllocationFailure
	default:
		return statusError
	}
}
