// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package note

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blessy228/daily-scripture-path/internal/platform/middleware"
	requestutil "github.com/blessy228/daily-scripture-path/internal/platform/request"
	"github.com/blessy228/daily-scripture-path/internal/platform/respond"
	"github.com/blessy228/daily-scripture-path/pkg/pagination"
	"github.com/blessy228/daily-scripture-path/pkg/query"
)

// Handler implements the note HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the note CRUD endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.createNote)
	router.Get("/", handler.listNotes)
	router.Put("/{id}", handler.updateNote)
	router.Delete("/{id}", handler.deleteNote)

	return router
}

type noteRequest struct {
	Content  string  `json:"content"`
	BookName *string `json:"book_name"`
	Chapter  *int    `json:"chapter"`
	EntryID  *string `json:"entry_id"`
}

func (payload *noteRequest) toInput() Input {
	return Input{
		Content:  payload.Content,
		BookName: payload.BookName,
		Chapter:  payload.Chapter,
		EntryID:  payload.EntryID,
	}
}

func (handler *Handler) createNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload noteRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.service.CreateNote(request.Context(), userID, payload.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, note)
}

func (handler *Handler) listNotes(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{Books: query.StringSlice(request.URL.Query().Get("books"))}
	params := pagination.FromRequest(request)
	notes, meta, err := handler.service.ListNotes(request.Context(), userID, filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, notes, meta)
}

func (handler *Handler) updateNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload noteRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	note, err := handler.service.UpdateNote(request.Context(), userID, requestutil.ID(request, "id"), payload.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, note)
}

func (handler *Handler) deleteNote(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteNote(request.Context(), userID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
