package domain

import (
	"context"
	"strings"
	"time"
)

// KnowledgeUpdateRequest describes one ingestion run.
type KnowledgeUpdateRequest struct {
	Collection string     `json:"collection"`
	StoreMode  StoreMode  `json:"store_mode"`
	Mode       UpdateMode `json:"mode"`
}

// Validate checks the request modes and collection name.
func (r KnowledgeUpdateRequest) Validate() error {
	if _, err := ParseUpdateMode(string(r.Mode)); err != nil {
		return err
	}
	if _, err := ParseStoreMode(string(r.StoreMode)); err != nil {
		return err
	}
	if strings.TrimSpace(r.Collection) == "" {
		return NewValidationErr("collection cannot be empty")
	}
	return nil
}

// KnowledgeUpdateRequestedEvent is the event type of published knowledge update requests.
const KnowledgeUpdateRequestedEvent = "KNOWLEDGE_UPDATE_REQUESTED"

// KnowledgeUpdateReport summarizes an ingestion run.
type KnowledgeUpdateReport struct {
	Collection string
	Mode       UpdateMode
	Discovered int
	Loaded     int
	Persisted  int
}

// KnowledgeUpdatePublisher hands knowledge update requests to the background workers.
type KnowledgeUpdatePublisher interface {
	PublishKnowledgeUpdate(ctx context.Context, req KnowledgeUpdateRequest) error
}

// PageFetcher downloads HTML pages.
type PageFetcher interface {
	// Fetch returns the body of the page at url.
	Fetch(ctx context.Context, url string) (string, error)
}

// LinkExtractor finds the article links on a listing page.
type LinkExtractor interface {
	// ExtractLinks returns the absolute, de-duplicated links of html whose target
	// contains marker, resolved against baseURL.
	ExtractLinks(html, baseURL, marker string) ([]string, error)
}

// DocumentLoader loads and extracts the articles at the given URLs.
type DocumentLoader interface {
	Load(ctx context.Context, urls []string) ([]Document, error)
}

// CurrentTimeProvider is the clock used to stamp stored documents and expire cached task results.
type CurrentTimeProvider interface {
	// Now returns the current time in UTC.
	Now() time.Time
}

// TaskResult is a persisted result of a cached task run.
type TaskResult struct {
	Key       string
	Payload   []byte
	CreatedAt time.Time
	ExpiresAt time.Time
}

// TaskResultRepository persists task results keyed by a hash of the task input.
type TaskResultRepository interface {
	// GetTaskResult returns the unexpired result stored under key, if any.
	GetTaskResult(ctx context.Context, key string, now time.Time) (TaskResult, bool, error)
	// StoreTaskResult stores or replaces the result under its key.
	StoreTaskResult(ctx context.Context, result TaskResult) error
}
