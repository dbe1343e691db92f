package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yingtu35/url-scanner/pkg/domain"
)

// Client is the part of *http.Client a Fetcher needs.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

type fault int

const (
	faultTransient fault = iota
	faultUnclassified
)

// Fetcher runs the fetch-with-retry protocol: up to maxTries sequential
// GET attempts, with no delay between them.
type Fetcher struct {
	client   Client        // The HTTP client to use
	maxTries int           // Attempts allowed per URL
	timeout  time.Duration // Timeout of a single attempt, body read included
	log      *logrus.Entry
}

func NewFetcher(client Client, maxTries int, timeout time.Duration, log *logrus.Entry) *Fetcher {
	return &Fetcher{
		client:   client,
		maxTries: maxTries,
		timeout:  timeout,
		log:      log,
	}
}

// Fetch resolves target to an Outcome. It never returns a partial body.
func (f *Fetcher) Fetch(ctx context.Context, target string) Outcome {
	log := f.log.WithField("url", target)

	req, err := newRequest(target)
	if err != nil {
		log.Errorf("Error building request for %s: %v", target, err)
		return Outcome{URL: target, Status: StatusFatal, Err: err}
	}

	var lastErr error
	for try := 1; try <= f.maxTries; try++ {
		if err := ctx.Err(); err != nil {
			return Outcome{URL: target, Status: StatusFatal, Attempts: try - 1, Err: err}
		}

		log.Debugf("fetching page %s", target)
		out, err := f.attempt(ctx, req)
		if err == nil {
			if try > 1 {
				log.Infof("try %d for %s success", try, target)
			}
			out.URL = target
			out.Attempts = try
			return out
		}
		if ctx.Err() != nil {
			// cancelled from outside, the attempt is abandoned
			return Outcome{URL: target, Status: StatusFatal, Attempts: try, Err: ctx.Err()}
		}

		lastErr = err
		switch classify(err) {
		case faultTransient:
			log.WithField("try", try).Warnf("try %d for %s raised %v", try, target, err)
		default:
			log.WithFields(logrus.Fields{"try": try, "type": fmt.Sprintf("%T", err)}).
				Errorf("try %d for %s raised unexpected error: %+v", try, target, err)
		}
	}

	log.Warnf("%s failed after %d tries", target, f.maxTries)
	return Outcome{URL: target, Status: StatusExhausted, Attempts: f.maxTries, Err: lastErr}
}

// attempt performs one GET. A non-nil error means no response was received
// and the attempt may be retried; everything else is final.
func (f *Fetcher) attempt(ctx context.Context, req *http.Request) (Outcome, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	resp, err := f.client.Do(req.Clone(ctx))
	if err != nil {
		return Outcome{}, err
	}
	// Closing releases the connection on every path below.
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Outcome{Status: StatusDropped, StatusCode: resp.StatusCode}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.log.Warnf("Error reading body of %s: %v", req.URL, err)
		return Outcome{
			Status:     StatusFatal,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading body: %w", err),
		}, nil
	}
	return Outcome{Status: StatusSuccess, StatusCode: resp.StatusCode, Body: body}, nil
}

// newRequest builds the GET for target, which may hold characters left
// bare by percent-decoding.
func newRequest(target string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, domain.Escape(target), nil)
	if err != nil {
		return nil, err
	}
	host, err := domain.GetHost(target)
	if err != nil {
		return nil, err
	}
	referer, err := domain.Referer(target)
	if err != nil {
		return nil, err
	}
	for key, value := range defaultHeaders {
		req.Header.Set(key, value)
	}
	req.Host = host
	req.Header.Set("Referer", referer)
	return req, nil
}

// classify separates network, protocol and timeout failures from everything
// else. Both kinds are retried; only the logging differs.
func classify(err error) fault {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// *url.Error is itself a net.Error, look at what it wraps
		err = urlErr.Err
	}

	var netErr net.Error
	switch {
	case errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return faultTransient
	}
	return faultUnclassified
}
