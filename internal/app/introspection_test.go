package app

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/marvins-market/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/require"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "KEY1",
				UsedDefault: true,
			},
		},
	}
	ctx := context.Background()

	err := introspector.Introspect(ctx, report)
	require.NoError(t, err)
	t.Cleanup(depend.ClearContainer)
	mermaidGraph, err := depend.ResolveNamed[string](http.IntrospectionGraphName)
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	var buf bytes.Buffer
	introspector := ReportLoggerIntrospector{Logger: log.New(&buf, "", 0)}

	err := introspector.Introspect(context.Background(), introspection.Report{
		Configs: []introspection.ConfigAccess{
			{Key: "HTTP_PORT", UsedDefault: true},
			{Key: "LLM_MODEL"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Config: HTTP_PORT (default)\nConfig: LLM_MODEL (set)\n", buf.String())
}
