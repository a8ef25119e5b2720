package handlers

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"tagtemanin/internal/contextutil"
)

//go:embed usage.md
var usageMarkdown []byte

// UsageHandler serves the API usage guide rendered from markdown.
type UsageHandler struct {
	page []byte
}

// usagePageData holds template data for the usage page.
type usagePageData struct {
	Title   string
	Content template.HTML
}

var usageTemplate = template.Must(template.New("usage").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 860px;
      line-height: 1.7;
      background: #fdf7ff;
      color: #2e1065;
    }
    h1, h2 {
      color: #6d28d9;
    }
    pre {
      background: #1e1b4b;
      color: #ede9fe;
      padding: 1rem;
      overflow-x: auto;
      border-radius: 10px;
    }
    code {
      font-family: 'SFMono-Regular', Consolas, 'Liberation Mono', Menlo, monospace;
    }
    table {
      border-collapse: collapse;
    }
    th, td {
      border: 1px solid #ddd6fe;
      padding: 0.4rem 0.8rem;
    }
  </style>
</head>
<body>
  <article>{{.Content}}</article>
</body>
</html>`))

// NewUsageHandler renders the embedded usage guide once and returns a handler serving it.
func NewUsageHandler() (*UsageHandler, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	var body bytes.Buffer
	if err := md.Convert(usageMarkdown, &body); err != nil {
		return nil, fmt.Errorf("convert usage markdown: %w", err)
	}

	var page bytes.Buffer
	if err := usageTemplate.Execute(&page, usagePageData{
		Title:   "TagTemanin API",
		Content: template.HTML(body.String()),
	}); err != nil {
		return nil, fmt.Errorf("execute usage template: %w", err)
	}

	return &UsageHandler{page: page.Bytes()}, nil
}

// ServeHTTP writes the rendered usage page.
func (h *UsageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.page); err != nil {
		ctx := r.Context()
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to write usage page", "error", err)
	}
}
