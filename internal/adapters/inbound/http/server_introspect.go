package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// IntrospectionGraphName is the dependency name of the rendered mermaid graph.
const IntrospectionGraphName = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

// IntrospectHandler renders the dependency graph of the running application.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string](IntrospectionGraphName)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	var page bytes.Buffer
	err = tmpl.Execute(&page, struct {
		Graph string
		Title string
	}{
		Title: "Marvin Introspection Graph",
		Graph: mermaidGraph,
	})
	if err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = page.WriteTo(w)
}
