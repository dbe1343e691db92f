package scanner

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testEntry() *logrus.Entry {
	return logrus.NewEntry(testLogger())
}

// stubClient answers requests with do and counts the calls made.
type stubClient struct {
	calls atomic.Int32
	do    func(call int, req *http.Request) (*http.Response, error)
}

func (c *stubClient) Do(req *http.Request) (*http.Response, error) {
	call := int(c.calls.Add(1))
	return c.do(call, req)
}

// trackedBody counts how many times the response body is closed.
type trackedBody struct {
	io.Reader
	closed atomic.Int32
}

func (b *trackedBody) Close() error {
	b.closed.Add(1)
	return nil
}

func newResponse(status int, body string) (*http.Response, *trackedBody) {
	tb := &trackedBody{Reader: strings.NewReader(body)}
	return &http.Response{StatusCode: status, Body: tb}, tb
}

var errRefused = &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

// countingPool wraps a real client pool and records releases per worker.
type countingPool struct {
	inner  ClientPool
	failAt int // Acquire fails for this worker id, -1 for never

	mu       sync.Mutex
	released map[int]int
	closed   int
}

func newCountingPool(concurrency int) *countingPool {
	return &countingPool{
		inner:    NewHTTPClientPool(concurrency),
		failAt:   -1,
		released: make(map[int]int),
	}
}

func (p *countingPool) Acquire(worker int) (Client, error) {
	if worker == p.failAt {
		return nil, errors.New("no client available")
	}
	return p.inner.Acquire(worker)
}

func (p *countingPool) Release(worker int) error {
	p.mu.Lock()
	p.released[worker]++
	p.mu.Unlock()
	return p.inner.Release(worker)
}

func (p *countingPool) Close() error {
	p.mu.Lock()
	p.closed++
	p.mu.Unlock()
	return p.inner.Close()
}
