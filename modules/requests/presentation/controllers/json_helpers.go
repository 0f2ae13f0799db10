package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/iota-uz/servicedesk/modules/requests/presentation/controllers/dtos"
	"github.com/iota-uz/servicedesk/pkg/configuration"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		panic(err)
	}
}

func ensureRequestID(w http.ResponseWriter, r *http.Request) string {
	if r == nil {
		return ""
	}
	header := strings.TrimSpace(configuration.Use().RequestIDHeader)
	if header == "" {
		header = "X-Request-ID"
	}

	requestID := strings.TrimSpace(r.Header.Get(header))
	if requestID == "" {
		requestID = strings.TrimSpace(r.Header.Get("X-Request-Id"))
	}
	if requestID == "" {
		requestID = uuid.NewString()
		w.Header().Set(header, requestID)
	}
	return requestID
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code string, message string) {
	meta := map[string]string{
		"request_id": ensureRequestID(w, r),
	}
	writeJSON(w, status, dtos.APIError{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// writeValidationError reports the per-field messages in the error meta so
// clients can highlight individual form fields.
func writeValidationError(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	meta := map[string]string{
		"request_id": ensureRequestID(w, r),
	}
	for field, message := range fields {
		meta[field] = message
	}
	writeJSON(w, http.StatusUnprocessableEntity, dtos.APIError{
		Code:    "REQUEST_VALIDATION_FAILED",
		Message: "validation failed",
		Meta:    meta,
	})
}
