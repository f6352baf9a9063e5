// Package services provides external service integrations and technical concerns like downstream clients and tokens
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// doJSON issues a JSON request against a downstream service and decodes the
// response body into out (skipped when out is nil). Non-2xx statuses are
// returned as errors carrying the status code and a truncated body excerpt.
func doJSON(ctx context.Context, client *http.Client, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &DownstreamError{
			StatusCode: resp.StatusCode,
			Method:     method,
			URL:        url,
			Body:       string(excerpt),
		}
	}

	if out == nil {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}

	return nil
}

// DownstreamError describes a non-2xx response from a downstream service
type DownstreamError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("downstream %s %s returned status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a downstream 404
func IsNotFound(err error) bool {
	var de *DownstreamError
	return errors.As(err, &de) && de.StatusCode == http.StatusNotFound
}
