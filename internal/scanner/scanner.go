package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yingtu35/url-scanner/internal/queue"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	MaxTries    int           // Attempts allowed per URL
	Timeout     time.Duration // Timeout of a single attempt
	Concurrency int           // Number of workers
	Pool        ClientPool    // Defaults to a fresh HTTPClientPool per run
	Log         *logrus.Logger
}

// Report is everything a run collected.
type Report struct {
	RunID   string
	Results []Result // sorted by URL
	Stats   Stats
	Elapsed time.Duration
}

// Scanner checks a batch of URLs with a fixed number of workers pulling
// from one shared queue.
type Scanner struct {
	opts Options
	log  *logrus.Logger
}

func NewScanner(opts Options) *Scanner {
	if opts.MaxTries <= 0 {
		opts.MaxTries = DefaultMaxTries
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scanner{opts: opts, log: log}
}

// Run enqueues urls, starts the workers and waits until every URL is
// resolved. Whatever happens, workers are cancelled and their clients are
// released before Run returns, and the report holds the results collected
// so far. A non-nil error means the wait was cut short.
func (s *Scanner) Run(ctx context.Context, urls []string) (report *Report, err error) {
	start := time.Now()
	runID := uuid.NewString()
	log := s.log.WithField("run", runID)

	q := queue.New()
	for _, u := range urls {
		q.Put(u)
	}
	sink := NewSink()
	counts := &tally{}

	pool := s.opts.Pool
	if pool == nil {
		pool = NewHTTPClientPool(s.opts.Concurrency)
	}

	workerCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(workerCtx)
	workers := make([]*Worker, 0, s.opts.Concurrency)

	defer func() {
		s.teardown(log, cancel, g, workers, pool)
		report = &Report{
			RunID:   runID,
			Results: sink.Drain(),
			Stats:   counts.snapshot(),
			Elapsed: time.Since(start),
		}
		log.Infof("Time used: %.3f seconds.", report.Elapsed.Seconds())
	}()

	log.Infof("scanning %d urls with %d workers", len(urls), s.opts.Concurrency)
	for i := 0; i < s.opts.Concurrency; i++ {
		client, err := pool.Acquire(i)
		if err != nil {
			log.Errorf("Error starting worker %d: %v", i, err)
			return nil, fmt.Errorf("starting worker %d: %w", i, err)
		}
		workerLog := log.WithField("worker", i)
		w := newWorker(i, q, sink, NewFetcher(client, s.opts.MaxTries, s.opts.Timeout, workerLog), pool, counts, workerLog)
		workers = append(workers, w)
		g.Go(func() error {
			return w.Run(gctx)
		})
	}

	// gctx also ends if a worker quits with an error, so Join cannot hang
	// on tasks nobody will take.
	if err := q.Join(gctx); err != nil {
		log.Errorf("Error waiting for queue: %v", err)
		return nil, fmt.Errorf("waiting for queue: %w", err)
	}
	return nil, nil
}

// teardown cancels every worker, waits for them to return and releases
// their clients exactly once, then closes the pool.
func (s *Scanner) teardown(log *logrus.Entry, cancel context.CancelFunc, g *errgroup.Group, workers []*Worker, pool ClientPool) {
	cancel()
	if err := g.Wait(); err != nil {
		log.Errorf("Error from worker: %v", err)
	}
	for _, w := range workers {
		log.Debugf("releasing worker %d", w.id)
		if err := w.Close(); err != nil {
			log.Errorf("Error releasing worker %d: %v", w.id, err)
		}
	}
	if err := pool.Close(); err != nil {
		log.Errorf("Error closing client pool: %v", err)
	}
}
