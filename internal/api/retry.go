package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// RetryPolicy controls GetWithRetry.
type RetryPolicy struct {
	Retries        int           // total attempts, at least 1
	AttemptTimeout time.Duration // deadline for each attempt, body read included
	BaseDelay      time.Duration // wait before the second attempt, doubled after
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Retries:        3,
		AttemptTimeout: 5 * time.Second,
		BaseDelay:      time.Second,
	}
}

// Backoff returns the wait before attempt n (zero-based). Attempt 0 never waits.
func (p RetryPolicy) Backoff(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return p.BaseDelay << (n - 1)
}

// GetWithRetry issues a GET against path. A 4xx response is handed back
// untouched after a single attempt. 5xx responses, transport errors and
// attempt timeouts are retried with exponential backoff until the policy
// runs out, then an error wrapping ErrRetriesExhausted is returned.
func (c *Client) GetWithRetry(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	return c.getWithRetry(ctx, path, path, query)
}

func (c *Client) getWithRetry(ctx context.Context, endpoint, path string, query url.Values) (*http.Response, error) {
	u := c.resolve(path, query)
	attempts := max(c.policy.Retries, 1)

	var lastErr error
	for n := 0; n < attempts; n++ {
		if wait := c.policy.Backoff(n); wait > 0 {
			c.log.Debugf("retrying %s in %s (attempt %d/%d)", u, wait, n+1, attempts)
			if err := sleepCtx(ctx, wait); err != nil {
				return nil, fmt.Errorf("fetch %s: %w", u, err)
			}
		}

		resp, err := c.attempt(ctx, endpoint, http.MethodGet, u, nil)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fetch %s: %w", u, ctx.Err())
		}
		lastErr = err
		c.log.Warnf("fetch %s attempt %d/%d: %v", u, n+1, attempts, err)
	}
	return nil, fmt.Errorf("fetch %s: failed after %d attempts: %w",
		u, attempts, errors.Join(ErrRetriesExhausted, lastErr))
}

// attempt performs one request under its own timeout. 5xx responses are
// turned into a *StatusError; everything else is returned with a body that
// releases the attempt deadline on Close.
func (c *Client) attempt(ctx context.Context, endpoint, method, u string, body []byte) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	actx, cancel := context.WithTimeout(ctx, c.policy.AttemptTimeout)
	req, err := c.newRequest(actx, method, u, body)
	if err != nil {
		cancel()
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		c.metrics.observe(method, endpoint, outcomeTransport, time.Since(start))
		return nil, fmt.Errorf("%s %s: %w", method, u, err)
	}
	c.metrics.observe(method, endpoint, outcomeFor(resp.StatusCode), time.Since(start))

	if resp.StatusCode >= 500 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		cancel()
		return nil, &StatusError{Code: resp.StatusCode, URL: u}
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
