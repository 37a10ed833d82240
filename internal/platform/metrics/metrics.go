package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pet-hub/internal/store"
)

const namespace = "pethub"

// Registry agrupa los collectors del servicio sobre un registry propio
// (no el global, para que los tests puedan crear varios).
type Registry struct {
	reg *prometheus.Registry

	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		reg: reg,
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Operaciones del document store por colección, operación y resultado.",
		}, []string{"collection", "op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duración de las operaciones del document store (load + mutate + save).",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection", "op"}),
	}
	reg.MustRegister(r.ops, r.duration)
	return r
}

var _ store.Recorder = (*Registry)(nil)

// ObserveOperation implementa store.Recorder.
func (r *Registry) ObserveOperation(collection, op string, d time.Duration, err error) {
	r.ops.WithLabelValues(collection, op, result(err)).Inc()
	r.duration.WithLabelValues(collection, op).Observe(d.Seconds())
}

// Handler expone /metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer expone el registry (tests).
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, store.ErrCorruptCollection):
		return "corrupt"
	default:
		return "error"
	}
}
