// Package queue provides the FIFO work queue shared by scan workers.
//
// Every Put must eventually be matched by one Done. Join blocks until the
// number of outstanding tasks drops to zero.
package queue

import (
	"context"
	"errors"
	"sync"
)

// ErrTooManyDone is returned by Done when it is called more times than Put.
var ErrTooManyDone = errors.New("queue: Done called more times than Put")

type WorkQueue struct {
	mu          sync.Mutex
	items       []string      // pending tasks, head first
	outstanding int           // tasks put but not yet marked done
	available   chan struct{} // holds a token while items may be non-empty
	idle        chan struct{} // closed whenever outstanding is zero
}

func New() *WorkQueue {
	idle := make(chan struct{})
	close(idle)
	return &WorkQueue{
		available: make(chan struct{}, 1),
		idle:      idle,
	}
}

// Put enqueues task. It never blocks.
func (q *WorkQueue) Put(task string) {
	q.mu.Lock()
	q.items = append(q.items, task)
	if q.outstanding == 0 {
		q.idle = make(chan struct{})
	}
	q.outstanding++
	q.mu.Unlock()

	q.signal()
}

// Take removes and returns the head task, waiting until one is available
// or ctx is done.
func (q *WorkQueue) Take(ctx context.Context) (string, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			task := q.items[0]
			q.items[0] = ""
			q.items = q.items[1:]
			more := len(q.items) > 0
			q.mu.Unlock()
			if more {
				// pass the wakeup on to the next waiting taker
				q.signal()
			}
			return task, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-q.available:
		}
	}
}

// Done records that the processing of a previously taken task has concluded.
func (q *WorkQueue) Done() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.outstanding <= 0 {
		return ErrTooManyDone
	}
	q.outstanding--
	if q.outstanding == 0 {
		close(q.idle)
	}
	return nil
}

// Join blocks until every task put so far, and any put while waiting, has
// been marked done. It returns ctx.Err() if ctx ends first.
func (q *WorkQueue) Join(ctx context.Context) error {
	for {
		q.mu.Lock()
		if q.outstanding == 0 {
			q.mu.Unlock()
			return nil
		}
		idle := q.idle
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-idle:
			// a Put may have raced in after the close; check again
		}
	}
}

// Len returns the number of tasks waiting to be taken.
func (q *WorkQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Outstanding returns the number of tasks put but not yet marked done.
func (q *WorkQueue) Outstanding() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.outstanding
}

func (q *WorkQueue) signal() {
	select {
	case q.available <- struct{}{}:
	default:
	}
}
