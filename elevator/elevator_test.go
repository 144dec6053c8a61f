package elevator

import (
	"bytes"
	"sync"
	"testing"

	"github.com/infinivision/anxiety/devq"
	"github.com/infinivision/anxiety/errmsg"
	"github.com/infinivision/anxiety/scheduler"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	c := func(snk scheduler.Sink, cls scheduler.Classifier) scheduler.Scheduler {
		return scheduler.New(snk, cls)
	}
	assert.Equal(t, errmsg.DuplicateScheduler, Register("anxiety", c))
	assert.Nil(t, Register("anxiety2", c))
	q, err := New("anxiety2", devq.New(), DefaultConfig())
	assert.Nil(t, err)
	assert.Nil(t, q.Close())
	Unregister("anxiety2")
	_, err = New("anxiety2", devq.New(), DefaultConfig())
	assert.Equal(t, errmsg.UnknownScheduler, err)
}

func TestAttrs(t *testing.T) {
	q, err := New("anxiety", devq.New(), DefaultConfig())
	assert.Nil(t, err)
	defer q.Close()
	assert.Equal(t, 1, len(q.Attrs()))
	v, err := q.Show("sync_ratio")
	assert.Nil(t, err)
	assert.Equal(t, "4\n", v)
	assert.Nil(t, q.Store("sync_ratio", "10"))
	v, _ = q.Show("sync_ratio")
	assert.Equal(t, "10\n", v)
	assert.Equal(t, errmsg.BadSyncRatio, q.Store("sync_ratio", "300"))
	v, _ = q.Show("sync_ratio")
	assert.Equal(t, "10\n", v)
	assert.Nil(t, q.Store("sync_ratio", "0x1f"))
	v, _ = q.Show("sync_ratio")
	assert.Equal(t, "31\n", v)
	assert.Nil(t, q.Store("sync_ratio", "2\n"))
	v, _ = q.Show("sync_ratio")
	assert.Equal(t, "2\n", v)
	assert.Equal(t, errmsg.BadSyncRatio, q.Store("sync_ratio", "abc"))
	assert.Equal(t, errmsg.BadSyncRatio, q.Store("sync_ratio", "-1"))
	_, err = q.Show("nope")
	assert.Equal(t, errmsg.NoSuchAttr, err)
	assert.Equal(t, errmsg.NoSuchAttr, q.Store("nope", "1"))
}

func TestDispatch(t *testing.T) {
	dq := devq.New()
	q, err := New("anxiety", dq, DefaultConfig())
	assert.Nil(t, err)
	defer q.Close()
	s1 := &scheduler.Request{Sync: true, Sector: 9}
	s2 := &scheduler.Request{Sync: true, Sector: 3}
	a1 := &scheduler.Request{Sector: 1}
	q.Add(s1)
	q.Add(s2)
	q.Add(a1)
	assert.True(t, q.Dispatch())
	assert.False(t, q.Dispatch())
	assert.Equal(t, 3, dq.Len())
	assert.Equal(t, a1, dq.Pop())
	assert.Equal(t, s2, dq.Pop())
	assert.Equal(t, s1, dq.Pop())
}

func TestRemove(t *testing.T) {
	dq := devq.New()
	q, err := New("anxiety", dq, DefaultConfig())
	assert.Nil(t, err)
	defer q.Close()
	s1 := &scheduler.Request{Sync: true}
	s2 := &scheduler.Request{Sync: true}
	q.Add(s1)
	q.Add(s2)
	assert.Equal(t, s1, q.Former(s2))
	assert.Equal(t, s2, q.Latter(s1))
	assert.Nil(t, q.Remove(s2))
	assert.Equal(t, errmsg.NotQueued, q.Remove(s2))
	assert.True(t, q.Dispatch())
	assert.Equal(t, 1, dq.Len())
	assert.Equal(t, s1, dq.Pop())
}

func TestClose(t *testing.T) {
	var buf bytes.Buffer

	dq := devq.New()
	cfg := DefaultConfig()
	cfg.LogWriter = &buf
	q, err := New("anxiety", dq, cfg)
	assert.Nil(t, err)
	q.Add(&scheduler.Request{Sync: true})
	q.Add(&scheduler.Request{Sync: true})
	q.Add(&scheduler.Request{})
	assert.Nil(t, q.Close())
	assert.Equal(t, 3, dq.Len())
}

func TestCloseZeroRatio(t *testing.T) {
	dq := devq.New()
	q, err := New("anxiety", dq, DefaultConfig())
	assert.Nil(t, err)
	s1 := &scheduler.Request{Sync: true}
	q.Add(s1)
	assert.Nil(t, q.Store("sync_ratio", "0"))
	assert.Nil(t, q.Close())
	assert.Equal(t, 1, dq.Len())
	assert.Equal(t, s1, dq.Pop())
}

func TestLocking(t *testing.T) {
	var wg sync.WaitGroup

	dq := devq.New()
	q, err := New("anxiety", dq, DefaultConfig())
	assert.Nil(t, err)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				q.Add(&scheduler.Request{Sync: i%2 == 0, Sector: int64(j)})
			}
		}(i)
	}
	wg.Wait()
	for q.Dispatch() {
	}
	assert.Equal(t, 400, dq.Len())
	assert.Nil(t, q.Close())
}
