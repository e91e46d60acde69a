//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
)

var articles = map[string]struct {
	title string
	date  string
	body  string
}{
	"/blog/retries": {
		title: "Retries that work",
		date:  "2025-01-10",
		body:  "Prefect retries failed tasks. Configure retries and retry delays so flaky APIs stop breaking your flows. Retries retries retries.",
	},
	"/blog/dbt": {
		title: "Orchestrating dbt with Prefect",
		date:  "2025-02-03",
		body:  "Run dbt models as Prefect tasks, schedule the dbt project and observe every dbt run from the Prefect UI.",
	},
}

// newBlogServer serves a listing page linking every article plus a few links that must be ignored.
func newBlogServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /blog/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/blog/" {
			fmt.Fprint(w, `<html><body>
				<a href="/blog/retries">Retries</a>
				<a href="/blog/dbt">dbt</a>
				<a href="/blog/retries#comments">Comments</a>
				<a href="/about">About</a>
			</body></html>`)
			return
		}
		a, ok := articles[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `<html><head><title>%s</title>
			<meta property="article:published_time" content="%s"></head>
			<body><nav>Home Blog</nav><article><h1>%s</h1><p>%s</p></article></body></html>`,
			a.title, a.date, a.title, a.body)
	})
	return httptest.NewServer(mux)
}

const embeddingSize = 32

// embed is a bag-of-words hash embedding, close enough for ranking in tests.
func embed(text string) []float64 {
	v := make([]float64, embeddingSize)
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,:;!?\"'")
		if w == "" {
			continue
		}
		h := fnv.New32a()
		_, _ = h.Write([]byte(w))
		v[h.Sum32()%embeddingSize]++
	}
	var norm float64
	for _, x := range v {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		v[0] = 1
		return v
	}
	for i := range v {
		v[i] /= norm
	}
	return v
}

var blogURLPattern = regexp.MustCompile(`https?://[^\s",|]+/blog/[a-z-]+`)

// newLLMServer speaks the OpenAI-compatible chat and embeddings endpoints.
func newLLMServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/embeddings", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data := make([]map[string]any, len(req.Input))
		for i, in := range req.Input {
			data[i] = map[string]any{"object": "embedding", "index": i, "embedding": embed(in)}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model": req.Model,
			"data":  data,
			"usage": map[string]int{"prompt_tokens": len(req.Input), "total_tokens": len(req.Input)},
		})
	})
	mux.HandleFunc("POST /v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var prompt strings.Builder
		for _, m := range req.Messages {
			prompt.WriteString(m.Content)
		}

		recs := []map[string]string{}
		seen := map[string]bool{}
		for _, u := range blogURLPattern.FindAllString(prompt.String(), -1) {
			if seen[u] || len(recs) == 3 {
				continue
			}
			seen[u] = true
			recs = append(recs, map[string]string{
				"title":       "Recommended post",
				"url":         u,
				"description": "Relevant to the question.",
			})
		}
		content, _ := json.Marshal(map[string]any{"recommendations": recs})

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   req.Model,
			"choices": []map[string]any{{"index": 0, "finish_reason": "stop", "message": map[string]string{"role": "assistant", "content": string(content)}}},
			"usage":   map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	})
	return httptest.NewServer(mux)
}
