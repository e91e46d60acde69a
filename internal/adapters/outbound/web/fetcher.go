// Package web crawls the blog: it downloads pages, finds article links on the
// listing page and turns article pages into documents.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MaxPageSize bounds, in bytes, how much of a page body is read.
const MaxPageSize = 10 << 20

// HTTPFetcher implements domain.PageFetcher with an *http.Client.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates an HTTPFetcher sending userAgent with every request.
func NewHTTPFetcher(client *http.Client, userAgent string) HTTPFetcher {
	return HTTPFetcher{client: client, userAgent: userAgent}
}

// Fetch returns the body of the page at url. Non-2xx answers are errors.
func (f HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("url", url),
	))
	defer span.End()

	req, err := http.NewRequestWithContext(spanCtx, http.MethodGet, url, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("create request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxPageSize))
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", fmt.Errorf("read %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}
	return string(body), nil
}
