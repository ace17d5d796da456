// Package site serves the embedded signup front-end.
package site

import (
	"context"
	"errors"
	"net/http"
)

// ErrServe is returned when an embedded asset cannot be read.
var ErrServe = errors.New("site serve failed")

// IndexPath is where the root path redirects to.
const IndexPath = "/static/index.html"

// Register attaches the front-end routes to mux:
//
//	GET /          -> 307 to /static/index.html
//	GET /static/*  -> embedded assets
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	root := NewRootHandler()
	mux.Handle("GET /static/", http.StripPrefix("/static", http.FileServer(FS())))
	mux.HandleFunc("GET "+IndexPath, root.HandleIndex)
	mux.HandleFunc("GET /{$}", root.HandleRoot)
}

// RootHandler handles root path requests.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot redirects GET / to the front-end index page.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
}

// HandleIndex serves the index page directly; http.FileServer would
// redirect a path ending in /index.html back to the directory.
func (h *RootHandler) HandleIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := Index()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
