// Package metrics exports pipeline telemetry to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "mod_manager"

// Transfer directions.
const (
	DirectionDownload = "download"
	DirectionUpload   = "upload"
)

// Observer captures telemetry for install, remove and upload runs.
type Observer interface {
	RecordOperation(operation string, duration time.Duration, err error)
	RecordTransfer(direction string, bytes int64)
}

// Nop returns an Observer that records nothing.
func Nop() Observer {
	return nopObserver{}
}

type nopObserver struct{}

func (nopObserver) RecordOperation(string, time.Duration, error) {}
func (nopObserver) RecordTransfer(string, int64)                 {}

// PrometheusObserver exports pipeline metrics to Prometheus.
type PrometheusObserver struct {
	duration   *prometheus.HistogramVec
	operations *prometheus.CounterVec
	bytes      *prometheus.CounterVec
	gatherer   prometheus.Gatherer
}

// NewPrometheusObserver registers the pipeline metrics on reg. A nil reg
// gets a fresh private registry.
func NewPrometheusObserver(namespace string, reg *prometheus.Registry) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	o := &PrometheusObserver{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of install, remove and upload runs.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Finished pipeline runs by outcome.",
		}, []string{"operation", "outcome"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transferred_bytes_total",
			Help:      "Bytes moved to or from the asset store.",
		}, []string{"direction"}),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{o.duration, o.operations, o.bytes} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return nil, fmt.Errorf("register pipeline metric: %w", err)
		}
	}

	return o, nil
}

// RecordOperation counts a finished run and its duration.
func (o *PrometheusObserver) RecordOperation(operation string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	o.duration.WithLabelValues(operation).Observe(duration.Seconds())
	o.operations.WithLabelValues(operation, outcome).Inc()
}

// RecordTransfer adds bytes moved in direction.
func (o *PrometheusObserver) RecordTransfer(direction string, bytes int64) {
	if o == nil || bytes <= 0 {
		return
	}
	o.bytes.WithLabelValues(direction).Add(float64(bytes))
}

// Handler serves the registry in the Prometheus text format.
func (o *PrometheusObserver) Handler() http.Handler {
	return promhttp.HandlerFor(o.gatherer, promhttp.HandlerOpts{})
}
