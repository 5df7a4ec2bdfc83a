// Package secureapi is the authenticated HTTP client the dashboard uses to
// reach the property API.
package secureapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxBody caps how much of a response body is read.
const maxBody = 1 << 20

// TokenSource yields a bearer token for one request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client calls the property API on behalf of one signed-in user.
// No retries are attempted.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  TokenSource
	Log     *zap.Logger
}

// GetProperties fetches the caller's property list.
func (c *Client) GetProperties(ctx context.Context) ([]Property, error) {
	body, err := c.get(ctx, "/properties", nil)
	if err != nil {
		return nil, err
	}
	props, err := ParseListResponse(body)
	if err != nil {
		c.logger().Warn("property list parse failed", zap.Error(err))
		return nil, err
	}
	return props, nil
}

// GetRevenueSummary fetches the revenue summary for propertyID.
func (c *Client) GetRevenueSummary(ctx context.Context, propertyID string) (RevenueSummary, error) {
	q := url.Values{}
	q.Set("property_id", propertyID)

	body, err := c.get(ctx, "/dashboard/summary", q)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return RevenueSummary{}, fmt.Errorf("%w: %s", ErrPropertyNotFound, propertyID)
		}
		return RevenueSummary{}, err
	}
	s, err := ParseRevenueSummary(body)
	if err != nil {
		c.logger().Warn("revenue summary parse failed", zap.String("property_id", propertyID), zap.Error(err))
		return RevenueSummary{}, err
	}
	return s, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	log := c.logger()
	if c.Tokens == nil {
		return nil, ErrNoCredentials
	}
	token, err := c.Tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("secureapi: token: %w", err)
	}

	target := strings.TrimRight(c.BaseURL, "/") + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("secureapi: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		log.Warn("api request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("secureapi: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("secureapi: read %s: %w", path, err)
	}
	log.Debug("api response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Method: http.MethodGet, Path: path, Code: resp.StatusCode, Detail: detail(body)}
		log.Warn("api non-2xx", zap.String("path", path), zap.Int("status", resp.StatusCode), zap.String("detail", se.Detail))
		return nil, se
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) logger() *zap.Logger {
	if c.Log != nil {
		return c.Log
	}
	return zap.NewNop()
}
