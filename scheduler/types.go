package scheduler

import "container/list"

type Class uint8

const (
	Sync Class = iota
	Async
)

// Classifier assigns a request to one of the two traffic classes. The rule is
// supplied by the host: a request's direction and its synchronicity are
// distinct notions and must not be conflated.
type Classifier func(*Request) Class

// Sink receives dispatched requests in submission order. The sink decides the
// final physical ordering; the scheduler only controls when a request leaves
// its class queue.
type Sink interface {
	Submit(*Request)
}

type Scheduler interface {
	Add(*Request)
	Dispatch() bool
	Remove(*Request) error

	Former(*Request) *Request
	Latter(*Request) *Request

	Len(Class) int
	SyncRatio() uint8
	SetSyncRatio(uint8)
}

type Request struct {
	Sync   bool
	Write  bool
	Sector int64
	Data   []byte

	cls  Class
	elem *list.Element
}

type scheduler struct {
	ratio uint8
	cls   Classifier
	sink  Sink
	qs    [2]*list.List
}

func (c Class) String() string {
	if c == Sync {
		return "sync"
	}
	return "async"
}

func (rq *Request) Class() Class {
	return rq.cls
}

func (rq *Request) Queued() bool {
	return rq.elem != nil
}
