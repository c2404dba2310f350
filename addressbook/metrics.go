package addressbook

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/amirrezaask/contacts/errors"
)

const (
	opAdd      = "add"
	opReplace  = "replace"
	opFind     = "find"
	opDelete   = "delete"
	opPaginate = "paginate"
)

type metrics struct {
	records    prometheus.Gauge
	operations *prometheus.CounterVec
}

// WithMetrics registers the book's gauge and counters on reg. An empty
// namespace uses the configured MetricsNamespace, so pass WithConfig first.
// Books sharing reg and namespace share the collectors.
func WithMetrics(reg prometheus.Registerer, namespace string) Option {
	return func(b *AddressBook) {
		if namespace == "" {
			namespace = b.config.MetricsNamespace
		}
		b.metrics = &metrics{
			records: register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "addressbook",
				Name:      "records",
				Help:      "Number of records currently stored.",
			})),
			operations: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "addressbook",
				Name:      "operations_total",
				Help:      "Address book operations partitioned by kind.",
			}, []string{"op"})),
		}
	}
}

// register returns the already registered collector when c is a duplicate.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		slog.Warn("cannot register address book metric", slog.String("error", err.Error()))
	}
	return c
}

func (m *metrics) count(op string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op).Inc()
}

func (m *metrics) observe(op string, size int) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op).Inc()
	m.records.Set(float64(size))
}
