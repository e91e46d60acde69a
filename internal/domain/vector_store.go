package domain

import (
	"context"
	"fmt"
)

// StoreMode selects which vector store backs a collection.
type StoreMode string

const (
	// StoreMode_Base is an ephemeral store living in the process memory.
	StoreMode_Base StoreMode = "base"
	// StoreMode_Persistent is the Postgres + pgvector store.
	StoreMode_Persistent StoreMode = "persistent"
	// StoreMode_HTTP is a remote vector database service (Qdrant).
	StoreMode_HTTP StoreMode = "http"
)

// ParseStoreMode validates a store mode string.
func ParseStoreMode(s string) (StoreMode, error) {
	switch m := StoreMode(s); m {
	case StoreMode_Base, StoreMode_Persistent, StoreMode_HTTP:
		return m, nil
	default:
		return "", NewValidationErr(fmt.Sprintf("unknown store mode: %q (expected 'base', 'persistent' or 'http')", s))
	}
}

// DependencyName is the name the store backing m is registered under.
func (m StoreMode) DependencyName() string {
	return "vector-store-" + string(m)
}

// UpdateMode selects how freshly loaded documents are written to a collection.
type UpdateMode string

const (
	// UpdateMode_Upsert merges documents into the collection, replacing entries with the same identity.
	UpdateMode_Upsert UpdateMode = "upsert"
	// UpdateMode_Reset clears the collection before adding the documents.
	UpdateMode_Reset UpdateMode = "reset"
)

// ParseUpdateMode validates an update mode string.
func ParseUpdateMode(s string) (UpdateMode, error) {
	switch m := UpdateMode(s); m {
	case UpdateMode_Upsert, UpdateMode_Reset:
		return m, nil
	default:
		return "", NewValidationErr(fmt.Sprintf("unknown mode: %q (expected 'upsert' or 'reset')", s))
	}
}

// VectorStore stores document embeddings in named collections.
type VectorStore interface {
	// Query returns the n nearest documents to vector, ordered by increasing distance.
	// It returns a NotFoundErr if the collection does not exist.
	Query(ctx context.Context, collection string, vector []float64, n int) (SearchResult, error)
	// Add inserts documents as new entries and returns how many were written.
	Add(ctx context.Context, collection string, docs []EmbeddedDocument) (int, error)
	// Upsert inserts documents, replacing entries with the same ID, and returns how many were written.
	Upsert(ctx context.Context, collection string, docs []EmbeddedDocument) (int, error)
	// ResetCollection removes every entry of the collection.
	ResetCollection(ctx context.Context, collection string) error
	// Replace removes every entry of the collection and adds docs in their place.
	// Stores that can do so keep the previous entries when adding fails.
	Replace(ctx context.Context, collection string, docs []EmbeddedDocument) (int, error)
	// Count returns the number of entries in the collection.
	Count(ctx context.Context, collection string) (int, error)
}

// VectorStoreRegistry resolves the vector store for a store mode.
type VectorStoreRegistry interface {
	Get(mode StoreMode) (VectorStore, error)
}
