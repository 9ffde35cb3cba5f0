package remote

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

// Client talks to the venue booking REST API. Every call goes through a
// threshold circuit breaker; an open breaker fails fast as KindUnavailable.
type Client struct {
	cfg     config.RemoteConfig
	baseURL string
	http    *circuit.HTTPClient
	logger  *slog.Logger
}

func NewClient(cfg config.RemoteConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    circuit.NewHTTPClient(cfg.Timeout, cfg.BreakerThreshold, &http.Client{}),
		logger:  logger,
	}
}

// do sends body as JSON and decodes the response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	raw, err := c.send(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Kind: KindUnknown, Method: method, Path: path, Detail: "malformed response", err: err}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrapf(err, "encode %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errs.Wrapf(err, "build %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := &APIError{Kind: KindUnavailable, Method: method, Path: path, err: err}
		if errors.Is(err, circuit.ErrBreakerOpen) {
			apiErr.Detail = "remote API circuit open"
		}
		c.logger.WarnContext(ctx, "remote call failed",
			"method", method,
			"path", path,
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, apiErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindUnavailable, Method: method, Path: path, StatusCode: resp.StatusCode, err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		detail, fields := parseErrorBody(raw)
		apiErr := &APIError{
			Kind:       kindForStatus(resp.StatusCode),
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Detail:     detail,
			Fields:     fields,
		}
		c.logger.WarnContext(ctx, "remote call rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"message", apiErr.Message(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, apiErr
	}

	c.logger.DebugContext(ctx, "remote call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return raw, nil
}
