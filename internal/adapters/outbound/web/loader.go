package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// DefaultLoaderConcurrency is the number of pages fetched at the same time.
const DefaultLoaderConcurrency = 4

// ErrNoContent reports a page from which no text could be extracted.
var ErrNoContent = errors.New("no readable content")

// Loader implements domain.DocumentLoader: it fetches each page and extracts it
// with the ExtractFunc it was built with. Failing pages are skipped; the load
// fails only when no page could be loaded.
type Loader struct {
	fetcher     domain.PageFetcher
	extract     ExtractFunc
	concurrency int
	logger      *log.Logger
}

// NewLoader creates a Loader. A concurrency below 1 uses DefaultLoaderConcurrency.
func NewLoader(fetcher domain.PageFetcher, extract ExtractFunc, concurrency int, logger *log.Logger) Loader {
	if concurrency < 1 {
		concurrency = DefaultLoaderConcurrency
	}
	return Loader{
		fetcher:     fetcher,
		extract:     extract,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Load returns the documents of the pages at urls, in input order.
func (l Loader) Load(ctx context.Context, urls []string) ([]domain.Document, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("urls", len(urls)),
		attribute.Int("concurrency", l.concurrency),
	))
	defer span.End()

	if len(urls) == 0 {
		return []domain.Document{}, nil
	}

	docs := make([]*domain.Document, len(urls))
	errs := make([]error, len(urls))

	g, gctx := errgroup.WithContext(spanCtx)
	g.SetLimit(l.concurrency)
	for i, u := range urls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := l.loadPage(gctx, u)
			if err != nil {
				errs[i] = err
				return nil
			}
			docs[i] = &doc
			return nil
		})
	}
	if err := g.Wait(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	out := make([]domain.Document, 0, len(urls))
	var failed []error
	for i, d := range docs {
		if d == nil {
			l.logger.Printf("Loader: skipping %s: %v", urls[i], errs[i])
			failed = append(failed, errs[i])
			continue
		}
		out = append(out, *d)
	}

	if len(out) == 0 {
		err := fmt.Errorf("failed to load any of the %d pages: %w", len(urls), failed[0])
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("loaded", len(out)), attribute.Int("skipped", len(failed)))
	return out, nil
}

func (l Loader) loadPage(ctx context.Context, pageURL string) (domain.Document, error) {
	html, err := l.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return domain.Document{}, err
	}

	article, err := l.extract(pageURL, html)
	if err != nil {
		return domain.Document{}, err
	}
	if strings.TrimSpace(article.Text) == "" {
		return domain.Document{}, fmt.Errorf("%s: %w", pageURL, ErrNoContent)
	}

	doc := domain.NewDocument(pageURL, article.Title, article.Text)
	doc.PublishedAt = article.PublishedAt
	return doc, nil
}
