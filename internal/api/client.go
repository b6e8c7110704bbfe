// Package api is the StudyWise backend client. One Client is built per run
// and carries the resolved base address and session identity into every
// call; see Request for the failure model.
package api

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"studywise-client/internal/config"
	"studywise-client/internal/pkg/logger"
	"studywise-client/internal/session"
)

// Identity is what the client needs from the session.
type Identity interface {
	Email() string
	Mode(ctx context.Context) session.Mode
	SetMode(ctx context.Context, m session.Mode) error
}

var _ Identity = (*session.Session)(nil)

type Client struct {
	baseURL string
	http    *http.Client
	sess    Identity
	log     logger.ILogger
	now     func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log logger.ILogger) Option {
	return func(c *Client) { c.log = log }
}

// WithClock overrides the clock used for plan start dates.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithBaseURL skips host sniffing entirely.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func New(cfg config.APIConfig, sess Identity, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(ResolveBaseURL(cfg.Host, cfg.LocalBaseURL, cfg.RemoteBaseURL), "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		sess:    sess,
		log:     logger.NewNopLogger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Email() string { return c.sess.Email() }

// ResolveBaseURL picks local for loopback hosts and remote for everything
// else. host may carry a port.
func ResolveBaseURL(host, local, remote string) string {
	if isLoopback(host) {
		return local
	}
	return remote
}

func isLoopback(host string) bool {
	h := strings.ToLower(strings.TrimSpace(host))
	if hh, _, err := net.SplitHostPort(h); err == nil {
		h = hh
	}
	h = strings.Trim(h, "[]")
	if h == "localhost" {
		return true
	}
	ip := net.ParseIP(h)
	return ip != nil && ip.IsLoopback()
}
