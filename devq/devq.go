package devq

import (
	"sort"

	"github.com/infinivision/anxiety/scheduler"
)

func New() *queue {
	return &queue{xs: []*scheduler.Request{}}
}

func (q *queue) Submit(rq *scheduler.Request) {
	q.xs = push(rq, q.xs)
}

func (q *queue) Pop() *scheduler.Request {
	if len(q.xs) == 0 {
		return nil
	}
	rq := q.xs[0]
	q.xs = q.xs[1:]
	return rq
}

func (q *queue) Len() int {
	return len(q.xs)
}

// Requests returns the pending list in device order.
func (q *queue) Requests() []*scheduler.Request {
	return q.xs
}

func push(x *scheduler.Request, xs []*scheduler.Request) []*scheduler.Request {
	i := sort.Search(len(xs), func(i int) bool { return xs[i].Sector > x.Sector })
	xs = append(xs, nil)
	copy(xs[i+1:], xs[i:])
	xs[i] = x
	return xs
}
