package elevator

import (
	"io"
	"sync"

	"github.com/infinivision/anxiety/scheduler"
	"github.com/infinivision/anxiety/stats"
	"github.com/nnsgmsone/damrey/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// Constructor builds one scheduler instance bound to a device queue's sink.
type Constructor func(scheduler.Sink, scheduler.Classifier) scheduler.Scheduler

// Attr is one text attribute of a queue, mirroring the sysfs convention:
// Show yields the decimal value followed by a newline, Store parses and
// applies a new value or reports failure with the old value retained.
type Attr struct {
	Name  string
	Show  func() string
	Store func(string) error
}

/*
Queue binds one scheduler instance to a device queue. Every operation runs
under the queue's exclusive lock; the scheduler itself does no locking and its
correctness depends on whole-operation serialization.
*/
type Queue interface {
	Close() error

	Add(*scheduler.Request)
	Dispatch() bool
	Remove(*scheduler.Request) error

	Former(*scheduler.Request) *scheduler.Request
	Latter(*scheduler.Request) *scheduler.Request

	Attrs() []Attr
	Show(string) (string, error)
	Store(string, string) error
}

type Config struct {
	SyncRatio  uint8
	Classifier scheduler.Classifier
	LogWriter  io.Writer
	Registry   prometheus.Registerer
}

type queue struct {
	lkr   sync.Mutex
	s     scheduler.Scheduler
	st    stats.Stats
	log   logger.Log
	attrs []Attr
}

type sink struct {
	st  stats.Stats
	snk scheduler.Sink
}
