package stats

import (
	"github.com/infinivision/anxiety/scheduler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func New(r prometheus.Registerer) *stats {
	if r == nil {
		r = prometheus.NewRegistry()
	}
	return &stats{
		merges: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "anxiety_merges_total",
			Help: "Number of queued requests removed by merge.",
		}),
		cycles: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "anxiety_dispatch_cycles_total",
			Help: "Number of dispatch cycles that moved requests.",
		}),
		queued: promauto.With(r).NewGauge(prometheus.GaugeOpts{
			Name: "anxiety_queued_requests",
			Help: "Requests currently held in the class queues.",
		}),
		dispatched: promauto.With(r).NewCounterVec(prometheus.CounterOpts{
			Name: "anxiety_dispatched_total",
			Help: "Requests handed to the device queue, by class.",
		}, []string{"class"}),
	}
}

func (s *stats) Merge() {
	s.queued.Dec()
	s.merges.Inc()
}

func (s *stats) Cycle() {
	s.cycles.Inc()
}

func (s *stats) Queue() {
	s.queued.Inc()
}

func (s *stats) Dispatch(c scheduler.Class) {
	s.queued.Dec()
	s.dispatched.WithLabelValues(c.String()).Inc()
}
