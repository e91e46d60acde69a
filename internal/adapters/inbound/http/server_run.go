package http

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/marvins-market/internal/telemetry"
	"github.com/cleitonmarx/marvins-market/internal/usecases"
	"github.com/rs/cors"
)

// MarvinServer is the REST API, MCP endpoint and UI HTTP server of Marvin.
type MarvinServer struct {
	Port                          int                             `config:"HTTP_PORT" default:"8080"`
	Logger                        *log.Logger                     `resolve:""`
	QueryBlogsUseCase             usecases.QueryBlogs             `resolve:""`
	SearchPostsUseCase            usecases.SearchPosts            `resolve:""`
	RequestKnowledgeUpdateUseCase usecases.RequestKnowledgeUpdate `resolve:""`
}

//go:embed webappdist/*
var embedFS embed.FS

// Handler builds the routes of the server.
func (api MarvinServer) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	// Serve webapp static files
	sub, err := fs.Sub(embedFS, "webappdist")
	if err != nil {
		return nil, fmt.Errorf("failed to create sub filesystem for webapp: %w", err)
	}
	mux.Handle("GET /", http.FileServerFS(sub))

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	mux.HandleFunc("POST /api/v1/recommendations", api.Recommend)
	mux.HandleFunc("GET /api/v1/posts/search", api.SearchPosts)
	mux.HandleFunc("POST /api/v1/knowledge/updates", api.RequestKnowledgeUpdate)
	mux.Handle("/mcp", api.MCPHandler())

	h := telemetry.Middleware("marvin-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h), nil
}

// Run starts the HTTP server for the MarvinServer.
func (api MarvinServer) Run(ctx context.Context) error {
	h, err := api.Handler()
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler:           h,
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("MarvinServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("MarvinServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("MarvinServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the MarvinServer is ready by performing a health check.
func (api MarvinServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
