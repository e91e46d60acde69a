package web

import (
	"context"
	"log"
	"net/http"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitWeb registers the page fetcher, the link extractor and the document loader.
type InitWeb struct {
	HttpClient   *http.Client               `resolve:""`
	Logger       *log.Logger                `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	UserAgent    string                     `config:"CRAWLER_USER_AGENT" default:"marvins-market/1.0 (+https://prefect.io/blog/)"`
	Extractor    string                     `config:"ARTICLE_EXTRACTOR" default:"trafilatura"`
	Concurrency  int                        `config:"LOADER_CONCURRENCY" default:"4"`
}

// Initialize registers the web adapters in the dependency container.
func (i InitWeb) Initialize(ctx context.Context) (context.Context, error) {
	extract, err := ExtractorByName(i.Extractor, i.TimeProvider)
	if err != nil {
		return ctx, err
	}

	fetcher := NewHTTPFetcher(i.HttpClient, i.UserAgent)
	depend.Register[domain.PageFetcher](fetcher)
	depend.Register[domain.LinkExtractor](LinkExtractor{})
	depend.Register[domain.DocumentLoader](NewLoader(fetcher, extract, i.Concurrency, i.Logger))

	i.Logger.Printf("InitWeb: using the %s article extractor with %d concurrent page loads", i.Extractor, i.Concurrency)
	return ctx, nil
}
