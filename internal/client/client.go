// Package client is the REST client for the salesops admin API. It
// speaks the envelope wire format and adapts list endpoints to the
// tablekit fetch contract so terminal hosts can drive them directly
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	perr "salesops/internal/platform/errors"
)

// DefaultTimeout bounds a single API call
const DefaultTimeout = 30 * time.Second

// Client calls the admin API
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option mutates the client during construction
type Option func(*Client)

// WithToken sets the bearer token explicitly, bypassing the token store
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient swaps the underlying http client, mainly for tests
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New constructs a client for the given base URL, e.g.
// "http://localhost:4000". The /api/v1 prefix is appended per call
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	if c.token == "" {
		c.token, _ = LoadToken()
	}
	return c
}

// envelope mirrors the server response wrapper
type envelope struct {
	StatusCode int             `json:"status_code"`
	Status     string          `json:"status"`
	Code       string          `json:"code,omitempty"`
	Error      string          `json:"error,omitempty"`
	RequestID  string          `json:"request_id,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// Post sends a JSON body to an API path and decodes the envelope data
// into out. A nil out discards the data
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Get fetches an API path and decodes the envelope data into out
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "client: encode body")
		}
		rd = bytes.NewReader(buf)
	}

	url := c.baseURL + "/api/v1" + path
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "client: build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "client: "+path)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "client: read response")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "client: decode envelope from %s", path)
	}
	if resp.StatusCode >= 400 || env.Error != "" {
		return apiError(resp.StatusCode, env)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "client: decode data from %s", path)
	}
	return nil
}

// apiError maps an error envelope back onto a typed error
func apiError(httpStatus int, env envelope) error {
	msg := env.Error
	if msg == "" {
		msg = fmt.Sprintf("http %d", httpStatus)
	}
	switch httpStatus {
	case http.StatusNotFound:
		return perr.NotFoundf("%s", msg)
	case http.StatusUnauthorized:
		return perr.Unauthorizedf("%s", msg)
	case http.StatusConflict:
		return perr.Conflictf("%s", msg)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return perr.InvalidArgf("%s", msg)
	default:
		return perr.Newf(perr.ErrorCodeUnknown, "%s", msg)
	}
}
