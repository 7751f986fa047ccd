// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// client.go - HTTP plumbing shared by all endpoint groups.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// MaxResponseSize caps response bodies. Submission listings carry
	// base64 CVs, so this is generous.
	MaxResponseSize = 10 * 1024 * 1024

	// MaxUploadSize caps avatar images and CV attachments.
	MaxUploadSize = 5 * 1024 * 1024

	// defaultBurst is the rate limiter burst when throttling is on.
	defaultBurst = 3
)

// =============================================================================
// ERRORS
// =============================================================================

// APIError is a worker response the caller cannot treat as success: either
// a non-2xx status or an envelope with success=false.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("le serveur a répondu %d", e.Status)
}

// =============================================================================
// CLIENT
// =============================================================================

// Doer sends an HTTP request. The session manager implements it for the
// authenticated path.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the worker API.
type Client struct {
	baseURL string
	authed  Doer
	public  *http.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

// New builds a Client. authed carries the session (see auth.Manager.Do);
// public is used for login and the contact form. baseURL has no trailing
// slash.
func New(baseURL string, authed Doer, public *http.Client) *Client {
	if public == nil {
		public = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		authed:  authed,
		public:  public,
		limiter: rate.NewLimiter(rate.Inf, 0),
		logger:  log.Default(),
	}
}

// WithRateLimit throttles outgoing requests to rps per second. Zero or
// negative disables throttling. Returns the client for chaining.
func (c *Client) WithRateLimit(rps float64) *Client {
	if rps <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
	} else {
		c.limiter = rate.NewLimiter(rate.Limit(rps), defaultBurst)
	}
	return c
}

// WithLogger replaces the default logger. Returns the client for chaining.
func (c *Client) WithLogger(l *log.Logger) *Client {
	c.logger = l
	return c
}

// envelope is the worker's response wrapper. Payload fields live next to
// it in each endpoint's own response struct.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// do sends one request and decodes the enveloped response into out (which
// may be nil when only success matters). payload, when non-nil, is sent as
// a JSON body.
func (c *Client) do(ctx context.Context, method, path string, payload, out any, authed bool) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Content-Type", "application/json")

	var resp *http.Response
	if authed {
		resp, err = c.authed.Do(req)
	} else {
		resp, err = c.public.Do(req)
	}
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	// Best effort: error pages are not always JSON.
	json.Unmarshal(data, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Printf("api: %s %s -> %d %s", method, path, resp.StatusCode, env.Message)
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	if !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPost, path, payload, out, true)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}
