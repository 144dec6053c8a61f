package stats

import (
	"github.com/infinivision/anxiety/scheduler"
	"github.com/prometheus/client_golang/prometheus"
)

type Stats interface {
	Merge()
	Cycle()
	Queue()
	Dispatch(scheduler.Class)
}

type stats struct {
	merges     prometheus.Counter
	cycles     prometheus.Counter
	queued     prometheus.Gauge
	dispatched *prometheus.CounterVec
}
