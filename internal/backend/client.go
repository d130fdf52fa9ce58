package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

// Client is the single configured binding to the commerce REST API. Every
// resource module goes through it; it owns the base URL, the timeout and the
// circuit breaker.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[httpResult]
	log     *slog.Logger
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *slog.Logger
}

type httpResult struct {
	status int
	body   []byte
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	cb := gobreaker.NewCircuitBreaker[httpResult](gobreaker.Settings{
		Name:        "commerce-api",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit_state_change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		breaker: cb,
		log:     log,
	}
}

// do executes one request through the breaker and returns the raw body.
// Transport failures and 5xx responses count against the breaker; 4xx do not
// (a validation rejection from the backend is not an outage).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.breaker.Execute(func() (httpResult, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return httpResult{}, err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return httpResult{}, fmt.Errorf("read response: %w", err)
		}
		if resp.StatusCode >= 500 {
			return httpResult{status: resp.StatusCode, body: b},
				fmt.Errorf("backend %s %s: status %d", method, path, resp.StatusCode)
		}
		return httpResult{status: resp.StatusCode, body: b}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Error("backend_unavailable", slog.String("method", method), slog.String("path", path), slog.Any("err", err))
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if res.status >= 500 {
			c.log.Error("backend_server_error", slog.String("method", method), slog.String("path", path), slog.Int("status", res.status))
			return nil, apiErrorFrom(res.status, res.body)
		}
		c.log.Error("backend_request_failed", slog.String("method", method), slog.String("path", path), slog.Any("err", err))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if res.status == http.StatusNotFound {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if res.status >= 400 {
		c.log.Warn("backend_rejected",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", res.status),
		)
		return nil, apiErrorFrom(res.status, res.body)
	}
	return res.body, nil
}

func (c *Client) getRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload for %s %s: %w", method, path, err)
	}
	return c.do(ctx, method, path, nil, bytes.NewReader(b), "application/json")
}

// sendMultipart builds a multipart/form-data body via the supplied writer
// callback and sends it. Used by the banner and product image endpoints.
func (c *Client) sendMultipart(ctx context.Context, method, path string, build func(*multipart.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := build(mw); err != nil {
		return nil, fmt.Errorf("build multipart body for %s %s: %w", method, path, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}
	return c.do(ctx, method, path, nil, &buf, mw.FormDataContentType())
}

func (c *Client) deleteRaw(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return err
}
