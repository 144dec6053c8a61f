package scheduler

import (
	"container/list"

	"github.com/infinivision/anxiety/constant"
	"github.com/infinivision/anxiety/errmsg"
)

func BySync(rq *Request) Class {
	if rq.Sync {
		return Sync
	}
	return Async
}

func ByDirection(rq *Request) Class {
	if rq.Write {
		return Async
	}
	return Sync
}

func New(sink Sink, cls Classifier) *scheduler {
	if cls == nil {
		cls = BySync
	}
	return &scheduler{
		cls:   cls,
		sink:  sink,
		ratio: constant.DefaultSyncRatio,
		qs:    [2]*list.List{list.New(), list.New()},
	}
}

func (s *scheduler) Add(rq *Request) {
	rq.cls = s.cls(rq)
	rq.elem = s.qs[rq.cls].PushBack(rq)
}

func (s *scheduler) Dispatch() bool {
	if s.qs[Sync].Len() == 0 && s.qs[Async].Len() == 0 {
		return false
	}
	for batched := uint8(0); batched < s.ratio; batched++ {
		e := s.qs[Sync].Front()
		if e == nil {
			break
		}
		s.dispatch(e.Value.(*Request))
	}
	if e := s.qs[Async].Front(); e != nil {
		s.dispatch(e.Value.(*Request))
	}
	return true
}

// Remove drops a request that merge logic absorbed into its neighbor. The
// request must still sit in a class queue.
func (s *scheduler) Remove(rq *Request) error {
	if rq == nil {
		return errmsg.InvalidRequest
	}
	if rq.elem == nil {
		return errmsg.NotQueued
	}
	s.qs[rq.cls].Remove(rq.elem)
	rq.elem = nil
	return nil
}

func (s *scheduler) Former(rq *Request) *Request {
	if rq == nil || rq.elem == nil {
		return nil
	}
	if e := rq.elem.Prev(); e != nil {
		return e.Value.(*Request)
	}
	return nil
}

func (s *scheduler) Latter(rq *Request) *Request {
	if rq == nil || rq.elem == nil {
		return nil
	}
	if e := rq.elem.Next(); e != nil {
		return e.Value.(*Request)
	}
	return nil
}

func (s *scheduler) Len(c Class) int {
	return s.qs[c].Len()
}

func (s *scheduler) SyncRatio() uint8 {
	return s.ratio
}

func (s *scheduler) SetSyncRatio(ratio uint8) {
	s.ratio = ratio
}

func (s *scheduler) dispatch(rq *Request) error {
	if rq == nil {
		return errmsg.InvalidRequest
	}
	s.qs[rq.cls].Remove(rq.elem)
	rq.elem = nil
	s.sink.Submit(rq)
	return nil
}
