package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/compozy/members/cli/helpers"
	"github.com/compozy/members/engine/user"
	"github.com/compozy/members/pkg/config"
	"github.com/compozy/members/pkg/logger"
	"github.com/compozy/members/pkg/version"
	"github.com/go-resty/resty/v2"
)

// MembersClient reads the members feed
type MembersClient interface {
	ListMembers(ctx context.Context) ([]user.User, error)
}

// Client fetches the members feed over HTTP
type Client struct {
	http    *resty.Client
	url     string
	timeout time.Duration
}

var _ MembersClient = (*Client)(nil)

// NewClient creates a members client from the source configuration
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if err := validateURL(cfg.Source.URL); err != nil {
		return nil, err
	}
	timeout := cfg.Source.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    buildHTTPClient(&cfg.Source, timeout),
		url:     cfg.Source.URL,
		timeout: timeout,
	}, nil
}

func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid source URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("source URL must be absolute, got: %s", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("source URL scheme must be http or https, got: %s", parsed.Scheme)
	}
	return nil
}

func buildHTTPClient(src *config.SourceConfig, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", contentTypeJSON).
		SetHeader("User-Agent", version.UserAgent()).
		SetRetryCount(src.Retries).
		SetRetryWaitTime(DefaultRetryWait).
		SetRetryMaxWaitTime(DefaultRetryMaxWait)
	client.AddRetryCondition(retryCondition)
	client.OnAfterResponse(logResponse)
	return client
}

func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	return isRetryableStatus(r.StatusCode())
}

func logResponse(_ *resty.Client, r *resty.Response) error {
	logger.FromContext(r.Request.Context()).Debug(
		"members feed response",
		"status", r.StatusCode(),
		"duration", r.Time(),
		"bytes", len(r.Body()),
	)
	return nil
}

// ListMembers fetches and decodes the feed
func (c *Client) ListMembers(ctx context.Context) ([]user.User, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		var netErr net.Error
		if ctx.Err() == nil && errors.As(err, &netErr) && netErr.Timeout() {
			return nil, helpers.NewTimeoutError(operationListMembers, c.timeout.String())
		}
		return nil, helpers.NewNetworkError(operationListMembers, err)
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{Code: resp.StatusCode(), URL: c.url}
	}
	users, err := DecodeMembers(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", operationListMembers, err)
	}
	return users, nil
}
