package elevator

import (
	"os"
	"sync"

	"github.com/infinivision/anxiety/constant"
	"github.com/infinivision/anxiety/errmsg"
	"github.com/infinivision/anxiety/scheduler"
	"github.com/infinivision/anxiety/stats"
	"github.com/nnsgmsone/damrey/logger"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	mtx sync.Mutex
	mp  = make(map[string]Constructor)
)

func init() {
	err := Register(constant.DefaultName, func(snk scheduler.Sink, cls scheduler.Classifier) scheduler.Scheduler {
		return scheduler.New(snk, cls)
	})
	if err != nil {
		panic(err)
	}
}

func Register(name string, c Constructor) error {
	mtx.Lock()
	defer mtx.Unlock()
	if _, ok := mp[name]; ok {
		return errmsg.DuplicateScheduler
	}
	mp[name] = c
	return nil
}

func Unregister(name string) {
	mtx.Lock()
	defer mtx.Unlock()
	delete(mp, name)
}

func DefaultConfig() Config {
	return Config{
		SyncRatio:  constant.DefaultSyncRatio,
		Classifier: scheduler.BySync,
		LogWriter:  os.Stderr,
		Registry:   prometheus.NewRegistry(),
	}
}

func New(name string, snk scheduler.Sink, cfg Config) (*queue, error) {
	mtx.Lock()
	c, ok := mp[name]
	mtx.Unlock()
	if !ok {
		return nil, errmsg.UnknownScheduler
	}
	st := stats.New(cfg.Registry)
	s := c(&sink{st: st, snk: snk}, cfg.Classifier)
	s.SetSyncRatio(cfg.SyncRatio)
	q := &queue{
		s:   s,
		st:  st,
		log: logger.New(cfg.LogWriter, name),
	}
	q.attrs = attrs(q)
	return q, nil
}

// Close tears the queue down. The host is expected to hand over an empty
// queue; anything still pending is drained through the normal dispatch path.
func (q *queue) Close() error {
	q.lkr.Lock()
	defer q.lkr.Unlock()
	if n := q.s.Len(scheduler.Sync) + q.s.Len(scheduler.Async); n > 0 {
		q.log.Errorf("teardown with %v pending requests\n", n)
		// a zero ratio never moves sync requests, so a drain under it would
		// spin forever
		if q.s.SyncRatio() == 0 {
			q.s.SetSyncRatio(constant.DefaultSyncRatio)
		}
		for q.s.Dispatch() {
			q.st.Cycle()
		}
	}
	return nil
}

func (q *queue) Add(rq *scheduler.Request) {
	q.lkr.Lock()
	q.s.Add(rq)
	q.st.Queue()
	q.lkr.Unlock()
}

func (q *queue) Dispatch() bool {
	q.lkr.Lock()
	defer q.lkr.Unlock()
	if !q.s.Dispatch() {
		return false
	}
	q.st.Cycle()
	return true
}

func (q *queue) Remove(rq *scheduler.Request) error {
	q.lkr.Lock()
	defer q.lkr.Unlock()
	if err := q.s.Remove(rq); err != nil {
		return err
	}
	q.st.Merge()
	return nil
}

func (q *queue) Former(rq *scheduler.Request) *scheduler.Request {
	q.lkr.Lock()
	defer q.lkr.Unlock()
	return q.s.Former(rq)
}

func (q *queue) Latter(rq *scheduler.Request) *scheduler.Request {
	q.lkr.Lock()
	defer q.lkr.Unlock()
	return q.s.Latter(rq)
}

func (s *sink) Submit(rq *scheduler.Request) {
	s.st.Dispatch(rq.Class())
	s.snk.Submit(rq)
}
