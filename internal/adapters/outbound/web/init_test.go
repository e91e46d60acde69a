package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"testing"

	"github.com/cleitonmarx/marvins-market/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitWeb_Initialize(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	tests := map[string]struct {
		extractor string
		expectErr bool
	}{
		"trafilatura": {extractor: ExtractorTrafilatura},
		"readability": {extractor: ExtractorReadability},
		"unknown":     {extractor: "unknown", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := InitWeb{
				HttpClient:   http.DefaultClient,
				Logger:       logger,
				TimeProvider: domain.NewMockCurrentTimeProvider(t),
				Extractor:    tt.extractor,
				Concurrency:  2,
			}
			_, err := i.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			_, err = depend.Resolve[domain.PageFetcher]()
			assert.NoError(t, err)
			_, err = depend.Resolve[domain.LinkExtractor]()
			assert.NoError(t, err)
			_, err = depend.Resolve[domain.DocumentLoader]()
			assert.NoError(t, err)
		})
	}
}
