// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/practice-partner/backend/internal/domain/questionbank"
	"github.com/practice-partner/backend/internal/service"
)

// maxBodyBytes bounds request bodies; answers are short free text.
const maxBodyBytes = 64 << 10

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	interviews      *service.InterviewService
	banks           questionbank.Lookup
	placeholderPath string
	logger          *slog.Logger
	validate        *validator.Validate
}

// NewHandler creates a Handler. placeholderPath may be empty, in which case
// the built-in image is served.
func NewHandler(
	interviews *service.InterviewService,
	banks questionbank.Lookup,
	placeholderPath string,
	logger *slog.Logger,
) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names in validation errors.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		interviews:      interviews,
		banks:           banks,
		placeholderPath: placeholderPath,
		logger:          logger,
		validate:        v,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid session_id"`
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON reads the request body into v. On failure it writes a 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// validateRequest runs the struct's validate tags. On failure it writes a
// 400 naming the first offending field and returns false.
func (h *Handler) validateRequest(w http.ResponseWriter, v any) bool {
	err := h.validate.Struct(v)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		respondError(w, http.StatusBadRequest, validationMessage(verrs[0]))
		return false
	}
	h.logger.Error("request validation failed", "error", err)
	respondError(w, http.StatusBadRequest, "invalid request")
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
