package scanner

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/yingtu35/url-scanner/internal/queue"
)

// Worker drains the queue, resolving one URL at a time.
type Worker struct {
	id      int              // Stable worker identity, for logs only
	queue   *queue.WorkQueue // The queue shared by all workers
	sink    *Sink            // Where successful results go
	fetcher *Fetcher         // Fetch-with-retry over the worker's client
	pool    ClientPool       // Pool the worker's client was acquired from
	counts  *tally
	log     *logrus.Entry

	closeOnce sync.Once
	closeErr  error
}

func newWorker(id int, q *queue.WorkQueue, sink *Sink, fetcher *Fetcher, pool ClientPool, counts *tally, log *logrus.Entry) *Worker {
	return &Worker{
		id:      id,
		queue:   q,
		sink:    sink,
		fetcher: fetcher,
		pool:    pool,
		counts:  counts,
		log:     log,
	}
}

// Run processes tasks until ctx is cancelled. A failing URL never stops the
// loop; only a broken queue does.
func (w *Worker) Run(ctx context.Context) error {
	for {
		task, err := w.queue.Take(ctx)
		if err != nil {
			w.log.Debugf("worker %d stopping: %v", w.id, err)
			return nil
		}
		if err := w.process(ctx, task); err != nil {
			return err
		}
	}
}

// process resolves one task. The task is marked done on every path,
// including panics and cancellation, and counted exactly once.
func (w *Worker) process(ctx context.Context, task string) (err error) {
	recorded := false
	defer func() {
		if doneErr := w.queue.Done(); doneErr != nil {
			err = doneErr
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			if !recorded {
				w.counts.panicked.Add(1)
			}
			w.log.WithField("url", task).Errorf("worker recovered panic: %v\n%s", r, debug.Stack())
		}
	}()

	w.log.Debugf("get a url %s", task)
	out := w.fetcher.Fetch(ctx, task)

	if out.Status == StatusSuccess {
		w.sink.Append(Result{
			URL:        out.URL,
			Body:       out.Body,
			StatusCode: out.StatusCode,
			Attempts:   out.Attempts,
			Worker:     w.id,
		})
	}
	w.counts.record(out.Status)
	recorded = true

	if out.Status == StatusSuccess {
		w.log.Infof("Success detecting url %s", task)
	}
	return nil
}

// Close returns the worker's client to the pool. Later calls are no-ops.
func (w *Worker) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.pool.Release(w.id)
	})
	return w.closeErr
}
