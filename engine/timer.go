package engine

import (
	"sort"
	"time"
)

// frameTimer is a one-shot callback keyed to scheduler frame time
type frameTimer struct {
	seq       uint64
	due       time.Duration
	fn        func()
	cancelled bool
}

// timerQueue keeps timers ordered by due time, then by scheduling order
type timerQueue struct {
	items []*frameTimer
	seq   uint64
}

func (q *timerQueue) add(due time.Duration, fn func()) *frameTimer {
	q.seq++
	t := &frameTimer{seq: q.seq, due: due, fn: fn}
	i := sort.Search(len(q.items), func(i int) bool {
		it := q.items[i]
		return it.due > due || (it.due == due && it.seq > t.seq)
	})
	q.items = append(q.items, nil)
	copy(q.items[i+1:], q.items[i:])
	q.items[i] = t
	return t
}

// popDue removes and returns every live timer due at or before now
func (q *timerQueue) popDue(now time.Duration) []*frameTimer {
	n := 0
	for n < len(q.items) && q.items[n].due <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]*frameTimer, 0, n)
	for _, t := range q.items[:n] {
		if !t.cancelled {
			due = append(due, t)
		}
	}
	q.items = append(q.items[:0], q.items[n:]...)
	return due
}

func (q *timerQueue) len() int {
	live := 0
	for _, t := range q.items {
		if !t.cancelled {
			live++
		}
	}
	return live
}

func (q *timerQueue) clear() {
	for _, t := range q.items {
		t.cancelled = true
	}
	q.items = nil
}
