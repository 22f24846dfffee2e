package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dgallion1/booksum/internal/booktree"
	"github.com/dgallion1/booksum/internal/summary"
	"github.com/go-chi/chi/v5"
)

// handleSummary renders the generated summary as an HTML page.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	res, err := summary.Generate(s.opts, s.log)
	if err != nil {
		if errors.Is(err, booktree.ErrEmptyTree) {
			jsonError(w, "no markdown files under "+s.opts.NotesDir, http.StatusNotFound)
			return
		}
		jsonError(w, "generate failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeMarkdownPage(w, s.opts.Title, []byte(res.Document))
}

// handleSummaryRaw serves the generated summary markdown as-is.
func (s *Server) handleSummaryRaw(w http.ResponseWriter, r *http.Request) {
	res, err := summary.Generate(s.opts, s.log)
	if err != nil {
		if errors.Is(err, booktree.ErrEmptyTree) {
			jsonError(w, "no markdown files under "+s.opts.NotesDir, http.StatusNotFound)
			return
		}
		jsonError(w, "generate failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(res.Document))
}

// handleNote renders a single markdown file from the notes directory.
func (s *Server) handleNote(w http.ResponseWriter, r *http.Request) {
	rel := path.Clean(chi.URLParam(r, "*"))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		jsonError(w, "invalid path", http.StatusBadRequest)
		return
	}
	ext := strings.ToLower(path.Ext(rel))
	if ext != ".md" && ext != ".markdown" {
		jsonError(w, "not a markdown file", http.StatusNotFound)
		return
	}

	src, err := os.ReadFile(filepath.Join(s.opts.NotesDir, filepath.FromSlash(rel)))
	if err != nil {
		jsonError(w, "note not found: "+rel, http.StatusNotFound)
		return
	}
	s.writeMarkdownPage(w, rel, src)
}

// writeMarkdownPage converts markdown to HTML and wraps it in a minimal page.
func (s *Server) writeMarkdownPage(w http.ResponseWriter, title string, src []byte) {
	var body bytes.Buffer
	if err := s.md.Convert(src, &body); err != nil {
		jsonError(w, "render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageTemplate, html.EscapeString(title), body.String())
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>body{max-width:48rem;margin:2rem auto;font-family:sans-serif;line-height:1.5;padding:0 1rem}</style>
</head>
<body>
%s</body>
</html>
`

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
