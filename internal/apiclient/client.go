// Package apiclient talks to the remote admin service. Every call carries
// the bearer token of the current session, and every non-2xx answer becomes
// a *RemoteError after a destructive notification has been sent.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"sasyak-admin/internal/models"
	"sasyak-admin/internal/notify"
)

const maxErrorBody = 1 << 20

// SessionSource yields the current session, if any.
type SessionSource interface {
	Load(ctx context.Context) (models.Session, bool, error)
}

type Client struct {
	baseURL  string
	http     *http.Client
	sessions SessionSource
	notifier notify.Notifier
	log      zerolog.Logger
	timeout  time.Duration
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

func WithNotifier(n notify.Notifier) Option { return func(c *Client) { c.notifier = n } }

func WithLogger(l zerolog.Logger) Option { return func(c *Client) { c.log = l } }

// WithTimeout caps each call at d. Zero leaves the transport's own limits.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }

// New builds a client for baseURL. sessions may be nil for a client that
// never authenticates.
func New(baseURL string, sessions SessionSource, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		sessions: sessions,
		notifier: notify.Discard{},
		log:      zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	c.log = c.log.With().Str("component", "apiclient").Logger()
	return c
}

type callOptions struct {
	anonymous bool
}

type CallOption func(*callOptions)

// Anonymous skips the Authorization header even when a session exists.
func Anonymous() CallOption { return func(o *callOptions) { o.anonymous = true } }

// Do sends one request to path (which may carry a query string). body, when
// non-nil, is sent as JSON. On 2xx the response is decoded into out, or
// discarded when out is nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...CallOption) error {
	var co callOptions
	for _, o := range opts {
		o(&co)
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if !co.anonymous {
		if err := c.authorize(ctx, req); err != nil {
			return err
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", reqID).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Str("request_id", reqID).
		Msg("request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(ctx, resp, reqID)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.sessions == nil {
		return nil
	}
	s, ok, err := c.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if ok && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	return nil
}

func (c *Client) fail(ctx context.Context, resp *http.Response, reqID string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	rerr := &RemoteError{Status: resp.StatusCode, Message: resolveMessage(body)}

	c.log.Warn().
		Int("status", rerr.Status).
		Str("request_id", reqID).
		Msg(rerr.Message)
	c.notifier.Notify(ctx, models.Notification{
		Variant:     models.VariantDestructive,
		Title:       "Error " + strconv.Itoa(rerr.Status),
		Description: rerr.Message,
	})
	return rerr
}
