package render

import (
	"errors"
	"fmt"
	"sync"
)

// Page is one browser tab a worker renders with.
type Page interface {
	Goto(url string) error
	Screenshot(path string) error
	Close() error
}

type Browser interface {
	NewPage() (Page, error)
	Close() error
}

// PagePool owns one page per worker, indexed by worker id. Pages are
// created on first use and recreated after being discarded.
type PagePool struct {
	browser Browser // The browser pages are opened in

	mu    sync.Mutex
	pages []Page
}

func NewPagePool(browser Browser, size int) *PagePool {
	return &PagePool{
		browser: browser,
		pages:   make([]Page, size),
	}
}

// Get returns the page of worker, opening it if needed.
func (p *PagePool) Get(worker int) (Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if worker < 0 || worker >= len(p.pages) {
		return nil, fmt.Errorf("worker %d out of range", worker)
	}
	if p.pages[worker] != nil {
		return p.pages[worker], nil
	}
	page, err := p.browser.NewPage()
	if err != nil {
		return nil, err
	}
	p.pages[worker] = page
	return page, nil
}

// Discard closes the page of worker so the next Get opens a fresh one.
func (p *PagePool) Discard(worker int) error {
	p.mu.Lock()
	page := p.pages[worker]
	p.pages[worker] = nil
	p.mu.Unlock()

	if page == nil {
		return nil
	}
	return page.Close()
}

// Close closes every open page.
func (p *PagePool) Close() error {
	var errs []error
	for i := range p.pages {
		if err := p.Discard(i); err != nil {
			errs = append(errs, fmt.Errorf("closing page of worker %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
