package devq

import "github.com/infinivision/anxiety/scheduler"

// Queue is the downstream device queue. The scheduler controls submission
// order; the queue keeps its pending list sorted by sector for the device.
type Queue interface {
	Len() int
	Pop() *scheduler.Request
	Submit(*scheduler.Request)
}

// Disk executes requests popped from a Queue against a backing file.
type Disk interface {
	Close() error
	Flush() error
	Do(*scheduler.Request) error
}

type queue struct {
	xs []*scheduler.Request
}

type disk struct {
	fd int
}
