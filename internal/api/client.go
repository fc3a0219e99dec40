package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const userAgent = "api-watchdog/1.0"

// Client talks to the watchdog REST backend.
type Client struct {
	base     *url.URL
	http     *http.Client
	policy   RetryPolicy
	limiter  *rate.Limiter
	metrics  *Metrics
	log      *zap.SugaredLogger
	language string
}

type Option func(*Client)

func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.policy = p }
}

// WithRateLimit caps outgoing attempts. rps <= 0 disables the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) { c.log = l }
}

// WithLanguage sets the default Accept-Language for localized endpoints.
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// New builds a client for baseURL, e.g. "http://localhost:8000".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	c := &Client{
		base:     u,
		http:     &http.Client{},
		policy:   DefaultRetryPolicy(),
		limiter:  rate.NewLimiter(rate.Inf, 0),
		log:      zap.NewNop().Sugar(),
		language: "en",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string { return c.base.String() }

// resolve joins an already escaped path onto the base URL.
func (c *Client) resolve(path string, query url.Values) string {
	s := strings.TrimRight(c.base.String(), "/") + path
	if len(query) > 0 {
		s += "?" + query.Encode()
	}
	return s
}

func (c *Client) newRequest(ctx context.Context, method, u string, body []byte) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang := languageFrom(ctx); lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	return req, nil
}

// getJSON runs a retried GET and decodes a 2xx body into out.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	resp, err := c.getWithRetry(ctx, endpoint, path, query)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// sendJSON runs a single POST or DELETE attempt. in may be nil.
func (c *Client) sendJSON(ctx context.Context, endpoint, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = b
	}
	resp, err := c.attempt(ctx, endpoint, method, c.resolve(path, nil), body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

func decodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		u := ""
		if resp.Request != nil {
			u = resp.Request.URL.String()
		}
		return &StatusError{Code: resp.StatusCode, URL: u}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, ErrInvalidPayload) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

type languageKey struct{}

// ContextWithLanguage overrides the Accept-Language header for requests made with ctx.
func ContextWithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

func languageFrom(ctx context.Context) string {
	s, _ := ctx.Value(languageKey{}).(string)
	return s
}
