package web

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
)

// Article is the readable content of an article page.
type Article struct {
	Title       string
	Text        string
	PublishedAt *time.Time
}

// ExtractFunc turns the HTML of the page at pageURL into an Article.
type ExtractFunc func(pageURL, html string) (Article, error)

const (
	// ExtractorTrafilatura selects TrafilaturaExtract.
	ExtractorTrafilatura = "trafilatura"
	// ExtractorReadability selects ReadabilityExtract.
	ExtractorReadability = "readability"
)

// ExtractorByName returns the ExtractFunc registered under name.
func ExtractorByName(name string, clock domain.CurrentTimeProvider) (ExtractFunc, error) {
	switch name {
	case ExtractorTrafilatura:
		return TrafilaturaExtract, nil
	case ExtractorReadability:
		return NewReadabilityExtract(clock), nil
	default:
		return nil, domain.NewValidationErr(fmt.Sprintf(
			"unknown article extractor: %q (expected %q or %q)", name, ExtractorTrafilatura, ExtractorReadability,
		))
	}
}

// TrafilaturaExtract extracts the main content with go-trafilatura, falling back
// to its readability and dom-distiller extractors when the main pass finds little.
func TrafilaturaExtract(pageURL, html string) (Article, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return Article{}, fmt.Errorf("invalid page URL %q: %w", pageURL, err)
	}

	res, err := trafilatura.Extract(strings.NewReader(html), trafilatura.Options{
		OriginalURL:    u,
		EnableFallback: true,
	})
	if err != nil {
		return Article{}, fmt.Errorf("extract %s: %w", pageURL, err)
	}

	article := Article{
		Title: strings.TrimSpace(res.Metadata.Title),
		Text:  normalizeSpace(res.ContentText),
	}
	if !res.Metadata.Date.IsZero() {
		date := res.Metadata.Date.UTC()
		article.PublishedAt = &date
	}
	return article, nil
}

var (
	blankLinesRe  = regexp.MustCompile(`\n{3,}`)
	inlineSpaceRe = regexp.MustCompile(`[ \t\r\f\v]+`)
	lineEdgeRe    = regexp.MustCompile(` ?\n ?`)
)

func normalizeSpace(s string) string {
	s = inlineSpaceRe.ReplaceAllString(s, " ")
	s = lineEdgeRe.ReplaceAllString(s, "\n")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// NewReadabilityExtract returns an ExtractFunc built on go-readability. The
// publication date comes from the article metadata, or else from the byline,
// where "today" and "yesterday" are resolved against clock.
func NewReadabilityExtract(clock domain.CurrentTimeProvider) ExtractFunc {
	return func(pageURL, html string) (Article, error) {
		u, err := url.Parse(pageURL)
		if err != nil {
			return Article{}, fmt.Errorf("invalid page URL %q: %w", pageURL, err)
		}

		res, err := readability.FromReader(strings.NewReader(html), u)
		if err != nil {
			return Article{}, fmt.Errorf("extract %s: %w", pageURL, err)
		}

		article := Article{
			Title: strings.TrimSpace(res.Title),
			Text:  normalizeSpace(res.TextContent),
		}
		switch {
		case res.PublishedTime != nil && !res.PublishedTime.IsZero():
			t := res.PublishedTime.UTC()
			article.PublishedAt = &t
		case res.Byline != "":
			if t, ok := domain.ExtractPublishedDate(res.Byline, clock.Now(), time.UTC); ok {
				t = t.UTC()
				article.PublishedAt = &t
			}
		}
		return article, nil
	}
}
