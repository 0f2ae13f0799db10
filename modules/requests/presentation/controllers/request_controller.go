package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/iota-uz/servicedesk/modules/requests/domain/aggregates/request"
	"github.com/iota-uz/servicedesk/modules/requests/presentation/mappers"
	"github.com/iota-uz/servicedesk/modules/requests/services"
	"github.com/iota-uz/servicedesk/pkg/application"
	"github.com/iota-uz/servicedesk/pkg/serrors"
)

type RequestAPIController struct {
	app      application.Application
	requests *services.RequestService
	stats    *services.StatsService
	exports  *services.ExportService
	basePath string
}

func NewRequestAPIController(app application.Application) application.Controller {
	return &RequestAPIController{
		app:      app,
		requests: app.Service(services.RequestService{}).(*services.RequestService),
		stats:    app.Service(services.StatsService{}).(*services.StatsService),
		exports:  app.Service(services.ExportService{}).(*services.ExportService),
		basePath: "/requests",
	}
}

func (c *RequestAPIController) Key() string {
	return c.basePath
}

func (c *RequestAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()

	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/stats", c.Stats).Methods(http.MethodGet)
	router.HandleFunc("/stats/export", c.ExportStatsReport).Methods(http.MethodGet)
	router.HandleFunc("/export", c.ExportCSV).Methods(http.MethodGet)
	router.HandleFunc("/export/xlsx", c.ExportExcel).Methods(http.MethodGet)

	// Keyed routes come last so fixed paths never match as an id.
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *RequestAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto request.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "REQUEST_INVALID_JSON", "invalid json")
		return
	}

	created, err := c.requests.Create(r.Context(), &dto)
	if err != nil {
		var validationErr *serrors.ValidationError
		if errors.As(err, &validationErr) {
			writeValidationError(w, r, validationErr.Fields)
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "REQUEST_INTERNAL", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, mappers.RequestToViewModel(created))
}

func (c *RequestAPIController) List(w http.ResponseWriter, r *http.Request) {
	params := &request.FindParams{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
	}

	items, err := c.requests.Find(r.Context(), params)
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "REQUEST_INTERNAL", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, mappers.RequestsToListPage(items))
}

func (c *RequestAPIController) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	found, err := c.requests.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, request.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "REQUEST_NOT_FOUND", "request not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "REQUEST_INTERNAL", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, mappers.RequestToViewModel(found))
}

func (c *RequestAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var dto request.UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "REQUEST_INVALID_JSON", "invalid json")
		return
	}

	updated, err := c.requests.Update(r.Context(), id, &dto)
	if err != nil {
		if errors.Is(err, request.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "REQUEST_NOT_FOUND", "request not found")
			return
		}
		var validationErr *serrors.ValidationError
		if errors.As(err, &validationErr) {
			writeValidationError(w, r, validationErr.Fields)
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "REQUEST_INTERNAL", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, mappers.RequestToViewModel(updated))
}

func (c *RequestAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := c.requests.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, request.ErrNotFound) {
			writeAPIError(w, r, http.StatusNotFound, "REQUEST_NOT_FOUND", "request not found")
			return
		}
		writeAPIError(w, r, http.StatusInternalServerError, "REQUEST_INTERNAL", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, mappers.RequestToViewModel(deleted))
}

func (c *RequestAPIController) Stats(w http.ResponseWriter, r *http.Request) {
	summary, err := c.stats.Summary(r.Context())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "REQUEST_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (c *RequestAPIController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	out, err := c.exports.RequestsCSV(r.Context())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "REQUEST_INTERNAL", "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="it_requests.csv"`)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, out)
}

func (c *RequestAPIController) ExportExcel(w http.ResponseWriter, r *http.Request) {
	data, err := c.exports.RequestsExcel(r.Context())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "REQUEST_INTERNAL", "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="it_requests.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (c *RequestAPIController) ExportStatsReport(w http.ResponseWriter, r *http.Request) {
	report, err := c.exports.SummaryReport(r.Context())
	if err != nil {
		writeAPIError(w, r, http.StatusInternalServerError, "REQUEST_INTERNAL", "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="it_request_statistics.txt"`)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, report)
}
