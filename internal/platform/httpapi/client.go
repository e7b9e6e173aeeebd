package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// TokenSource yields the stored, scheme-prefixed bearer token for the
// session bound to ctx. An empty string means "no token": the request
// goes out unauthenticated.
type TokenSource func(ctx context.Context) (string, error)

// Config configures one client instance. One instance exists per backend
// resource group (auth, profile, sessions, tutors, progress), each with
// its own base URL path, timeout and status override table.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	Tokens    TokenSource
	Overrides Overrides
}

// Client is a thin JSON caller for one backend resource group. Every
// request is attempted exactly once; there is no retry and no backoff.
type Client struct {
	base      *url.URL
	http      *http.Client
	tokens    TokenSource
	overrides Overrides
}

// NewClient creates a client for one resource group.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		base: base,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		tokens:    cfg.Tokens,
		overrides: cfg.Overrides,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) Put(ctx context.Context, path string, query url.Values, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

// serverEnvelope matches the backend's error body: either "message" or
// "error" carries the human detail.
type serverEnvelope struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (s serverEnvelope) detail() string {
	if s.Message != "" {
		return s.Message
	}
	return s.Err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Attach the stored token verbatim: it is persisted already prefixed
	// with its scheme ("Bearer ..."), so no formatting happens here.
	if c.tokens != nil {
		token, err := c.tokens(ctx)
		if err != nil {
			return NetworkError(fmt.Errorf("token source: %w", err))
		}
		if token != "" {
			req.Header.Set("Authorization", token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Str("path", path).Msg("Backend unreachable")
		return NetworkError(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return NetworkError(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope serverEnvelope
		_ = json.Unmarshal(bodyBytes, &envelope) // non-JSON error bodies keep an empty detail
		apiErr := MapStatus(resp.StatusCode, envelope.detail(), c.overrides)
		log.Error().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("code", string(apiErr.Code)).
			Str("detail", apiErr.Detail).
			Msg("Backend call failed")
		return apiErr
	}

	if out != nil && len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return &Error{
				Code:    CodeUnknown,
				Status:  resp.StatusCode,
				Message: GetResultMessage(CodeUnknown),
				Detail:  fmt.Sprintf("failed to unmarshal response: %v", err),
				cause:   err,
			}
		}
	}
	return nil
}

// Head issues a best-effort availability probe against an absolute URL.
// It reports whether any response came back; the status itself is ignored.
func Head(ctx context.Context, rawURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
