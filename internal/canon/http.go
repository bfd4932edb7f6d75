// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package canon

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blessy228/daily-scripture-path/internal/platform/apperr"
	"github.com/blessy228/daily-scripture-path/internal/platform/respond"
	"github.com/blessy228/daily-scripture-path/pkg/slice"
)

// Handler serves the read-only canon reference endpoints.
type Handler struct{}

// NewHandler constructs a new [Handler]. The canon is static, so there are
// no dependencies to inject.
func NewHandler() *Handler {
	return &Handler{}
}

// Routes returns a [chi.Router] with the canon endpoints.
//
// # Endpoints
//   - GET /        : Full book table in canonical order (optional ?testament=old|new).
//   - GET /{slug}  : Single book lookup.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listBooks)
	router.Get("/{slug}", handler.getBook)
	return router
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books := Books()

	// Optional ?testament=old|new narrowing.
	if wanted := request.URL.Query().Get("testament"); wanted != "" {
		books = slice.Filter(books, func(book Book) bool {
			return string(book.Testament) == wanted
		})
	}

	respond.OK(writer, map[string]any{
		"books":          books,
		"total_chapters": TotalChapters,
	})
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	book, ok := BySlug(chi.URLParam(request, "slug"))
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Book"))
		return
	}
	respond.OK(writer, book)
}
