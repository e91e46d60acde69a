package domain

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// RecommendationCandidates is the number of nearest documents retrieved from the
	// vector store for a recommendation query.
	RecommendationCandidates = 10
	// RecommendationCount is the number of recommendations requested from the model.
	// It must never exceed RecommendationCandidates.
	RecommendationCount = 3
	// BlogLinkMarker is the path fragment identifying blog post links on the listing page.
	BlogLinkMarker = "/blog/"
)

// BlogRecommendation is a blog post selected by the model as relevant to a query.
type BlogRecommendation struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Validate checks that every field of the recommendation is filled.
func (b BlogRecommendation) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return NewValidationErr("recommendation title cannot be empty")
	}
	if strings.TrimSpace(b.URL) == "" {
		return NewValidationErr("recommendation url cannot be empty")
	}
	if strings.TrimSpace(b.Description) == "" {
		return NewValidationErr("recommendation description cannot be empty")
	}
	return nil
}

// Document is an ingested blog article.
type Document struct {
	ID          uuid.UUID
	URL         string
	Title       string
	Text        string
	PublishedAt *time.Time
}

// NewDocument creates a Document whose identity is derived from its source URL.
func NewDocument(sourceURL, title, text string) Document {
	return Document{
		ID:    DocumentID(sourceURL),
		URL:   sourceURL,
		Title: title,
		Text:  text,
	}
}

// DocumentID returns the stable identifier of the document loaded from sourceURL.
func DocumentID(sourceURL string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(sourceURL))
}

// Metadata returns the metadata stored alongside the document vector.
func (d Document) Metadata() map[string]string {
	md := map[string]string{
		"link":  d.URL,
		"title": d.Title,
	}
	if u, err := url.Parse(d.URL); err == nil && u.Host != "" {
		md["source"] = u.Host
	}
	if d.PublishedAt != nil {
		md["published_at"] = d.PublishedAt.UTC().Format(time.RFC3339)
	}
	return md
}

// EmbeddedDocument is a document paired with its embedding vector.
type EmbeddedDocument struct {
	Document
	Vector []float64
}
