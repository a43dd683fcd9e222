package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Exhibition operation labels.
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpList   = "list"

	OutcomeAdded    = "added"
	OutcomeExists   = "exists"
	OutcomeRemoved  = "removed"
	OutcomeNotFound = "not_found"
	OutcomeListed   = "listed"
	OutcomeClosed   = "closed"
)

// Recorder receives gallery domain events worth counting.
type Recorder interface {
	// ValidationRejected is called when a property assignment is refused.
	ValidationRejected(field string)
	// ExhibitionOp is called once per exhibition registry operation.
	ExhibitionOp(op, outcome string)
}

// Prometheus holds the gallery counters.
type Prometheus struct {
	rejections   *prometheus.CounterVec
	exhibitionOp *prometheus.CounterVec
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus creates the gallery counters and registers them on reg.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	m := &Prometheus{
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_rejections_total",
				Help:      "Total number of rejected gallery property assignments.",
			},
			[]string{"field"},
		),
		exhibitionOp: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exhibition_operations_total",
				Help:      "Total number of exhibition registry operations by outcome.",
			},
			[]string{"op", "outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.rejections, m.exhibitionOp} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Prometheus) ValidationRejected(field string) {
	m.rejections.WithLabelValues(field).Inc()
}

func (m *Prometheus) ExhibitionOp(op, outcome string) {
	m.exhibitionOp.WithLabelValues(op, outcome).Inc()
}

// Nop is a Recorder that discards everything.
type Nop struct{}

func (Nop) ValidationRejected(string)   {}
func (Nop) ExhibitionOp(string, string) {}
