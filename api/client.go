// Package api is the typed client for the remote food-court REST
// service. Every call forwards the stored bearer token when one is
// present; the backend owns all authorization decisions.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Verah-Mokaya/foodcourt-sub000/session"
)

// Error is a non-2xx answer from the backend, carrying the message
// field the server put in its JSON body (if any).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     zerolog.Logger
}

func NewClient(baseURL string, sess *session.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		session: sess,
		log:     log,
	}
}

// do issues one request and decodes the JSON answer into out (when
// out is non-nil). Non-2xx statuses come back as *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("Request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("API call")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return c.asError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// asError extracts the server's message/error field, tolerating
// non-JSON bodies.
func (c *Client) asError(res *http.Response) error {
	apiErr := &Error{Status: res.StatusCode}
	var body struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else {
			apiErr.Message = body.Err
		}
	}
	return apiErr
}
