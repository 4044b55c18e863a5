// Package prometheus exposes client metrics through prometheus/client_golang.
package prometheus

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/goliatone/go-cryptopay/core"
	"github.com/prometheus/client_golang/prometheus"
)

// labelNames is the fixed label set; tags outside it are dropped and missing
// tags are recorded as "".
var labelNames = []string{"operation", "status", "status_code"}

// DurationBuckets are in milliseconds.
var DurationBuckets = []float64{25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000}

// Recorder implements core.MetricsRecorder. Collectors are created on first
// use and registered with the configured registerer.
type Recorder struct {
	registerer prometheus.Registerer
	namespace  string

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

func NewRecorder(registerer prometheus.Registerer, namespace string) *Recorder {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &Recorder{
		registerer: registerer,
		namespace:  sanitizeName(namespace),
		counters:   map[string]*prometheus.CounterVec{},
		histograms: map[string]*prometheus.HistogramVec{},
	}
}

func (r *Recorder) IncCounter(_ context.Context, name string, value int64, tags map[string]string) {
	if r == nil || value < 0 {
		return
	}
	counter := r.counter(name)
	if counter == nil {
		return
	}
	counter.WithLabelValues(labelValues(tags)...).Add(float64(value))
}

func (r *Recorder) ObserveHistogram(_ context.Context, name string, value float64, tags map[string]string) {
	if r == nil {
		return
	}
	histogram := r.histogram(name)
	if histogram == nil {
		return
	}
	histogram.WithLabelValues(labelValues(tags)...).Observe(value)
}

func (r *Recorder) counter(name string) *prometheus.CounterVec {
	metric := sanitizeName(name)
	if metric == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.counters[metric]; ok {
		return existing
	}
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      metric,
		Help:      "Crypto Pay client counter " + name,
	}, labelNames)
	if err := r.registerer.Register(counter); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil
		}
		counter = existing
	}
	r.counters[metric] = counter
	return counter
}

func (r *Recorder) histogram(name string) *prometheus.HistogramVec {
	metric := sanitizeName(name)
	if metric == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.histograms[metric]; ok {
		return existing
	}
	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      metric,
		Help:      "Crypto Pay client histogram " + name,
		Buckets:   DurationBuckets,
	}, labelNames)
	if err := r.registerer.Register(histogram); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil
		}
		existing, ok := already.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return nil
		}
		histogram = existing
	}
	r.histograms[metric] = histogram
	return histogram
}

func labelValues(tags map[string]string) []string {
	values := make([]string, len(labelNames))
	for i, label := range labelNames {
		values[i] = strings.TrimSpace(tags[label])
	}
	return values
}

// sanitizeName maps dotted metric names such as cryptopay.request.total to
// cryptopay_request_total.
func sanitizeName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

var _ core.MetricsRecorder = (*Recorder)(nil)
