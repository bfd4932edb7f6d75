// Copyright (c) 2026 Daily Scripture Path. All rights reserved.
// Author: blessy228@gmail.com

package reading

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blessy228/daily-scripture-path/internal/platform/middleware"
	requestutil "github.com/blessy228/daily-scripture-path/internal/platform/request"
	"github.com/blessy228/daily-scripture-path/internal/platform/respond"
	"github.com/blessy228/daily-scripture-path/internal/platform/validate"
	"github.com/blessy228/daily-scripture-path/pkg/convert"
	"github.com/blessy228/daily-scripture-path/pkg/pagination"
)

// Handler implements the reading ledger HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the ledger and analytics endpoints.
// Everything here operates on the authenticated user's own ledger.
//
// # Endpoints
//   - POST   /          : Log a reading interval.
//   - GET    /          : Paginated ledger, newest first.
//   - PUT    /{id}      : Replace an entry wholesale.
//   - DELETE /{id}      : Remove an entry.
//   - GET    /overview  : Lifetime totals and pacing numbers.
//   - GET    /stats     : Coverage, testament, and weekly views.
//   - GET    /streak    : Current/longest streak state.
//   - GET    /plan      : Day-by-day pacing preview (?days=30).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.logReading)
	router.Get("/", handler.listReadings)
	router.Put("/{id}", handler.editReading)
	router.Delete("/{id}", handler.deleteReading)

	router.Get("/overview", handler.overview)
	router.Get("/stats", handler.stats)
	router.Get("/streak", handler.streak)
	router.Get("/plan", handler.plan)

	return router
}

// # Request Payloads

type logReadingRequest struct {
	ReadingDate  Date   `json:"reading_date"`
	BookName     string `json:"book_name"`
	StartChapter int    `json:"start_chapter"`
	EndChapter   int    `json:"end_chapter"`
	StartVerse   *int   `json:"start_verse"`
	EndVerse     *int   `json:"end_verse"`
}

func (payload *logReadingRequest) validate() error {
	v := &validate.Validator{}
	v.Required(FieldBookName, payload.BookName)
	v.Custom(FieldReadingDate, payload.ReadingDate.IsZero(), "A reading date is required")
	v.Custom(FieldStartChapter, payload.StartChapter < 1, "Must be at least 1")
	return v.Err()
}

func (payload *logReadingRequest) toInput() LogInput {
	return LogInput{
		ReadingDate:  payload.ReadingDate,
		BookName:     payload.BookName,
		StartChapter: payload.StartChapter,
		EndChapter:   payload.EndChapter,
		StartVerse:   payload.StartVerse,
		EndVerse:     payload.EndVerse,
	}
}

// # Ledger Endpoints

func (handler *Handler) logReading(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload logReadingRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := payload.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.LogReading(request.Context(), userID, payload.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, entry)
}

func (handler *Handler) listReadings(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	entries, meta, err := handler.service.ListReadings(request.Context(), userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, entries, meta)
}

func (handler *Handler) editReading(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload logReadingRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := payload.validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.EditReading(request.Context(), userID, requestutil.ID(request, "id"), payload.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

func (handler *Handler) deleteReading(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteReading(request.Context(), userID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Analytics Endpoints

func (handler *Handler) overview(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	overview, err := handler.service.Overview(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, overview)
}

func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	stats, err := handler.service.Stats(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

func (handler *Handler) streak(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := handler.service.Streak(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

// Plan preview bounds: a year at most, a month by default.
const (
	defaultPlanDays = 30
	maxPlanDays     = 366
)

func (handler *Handler) plan(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	days := convert.ToIntD(request.URL.Query().Get("days"), defaultPlanDays)
	if days < 1 || days > maxPlanDays {
		days = defaultPlanDays
	}

	plan, err := handler.service.Plan(request.Context(), userID, days)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, plan)
}
