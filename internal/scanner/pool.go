package scanner

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

var (
	ErrPoolClosed  = errors.New("client pool is closed")
	ErrNotAcquired = errors.New("client not acquired")
)

// ClientPool hands out the HTTP client each worker uses, keyed by worker id.
// A Scanner acquires one client per worker at startup, releases each of them
// once at teardown and then closes the pool.
type ClientPool interface {
	Acquire(worker int) (Client, error)
	Release(worker int) error
	Close() error
}

// HTTPClientPool shares one *http.Client, and therefore one connection pool,
// between all workers of a run.
type HTTPClientPool struct {
	client *http.Client

	mu     sync.Mutex
	held   map[int]bool
	closed bool
}

func NewHTTPClientPool(concurrency int) *HTTPClientPool {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = concurrency

	return &HTTPClientPool{
		// CheckRedirect is left nil so every redirect is followed
		client: &http.Client{Transport: transport},
		held:   make(map[int]bool),
	}
}

func (p *HTTPClientPool) Acquire(worker int) (Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPoolClosed
	}
	if p.held[worker] {
		return nil, fmt.Errorf("worker %d already holds a client", worker)
	}
	p.held[worker] = true
	return p.client, nil
}

func (p *HTTPClientPool) Release(worker int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.held[worker] {
		return fmt.Errorf("worker %d: %w", worker, ErrNotAcquired)
	}
	delete(p.held, worker)
	return nil
}

// Close drops idle connections. Only the first call has an effect.
func (p *HTTPClientPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.client.CloseIdleConnections()
	return nil
}
