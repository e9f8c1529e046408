package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/karolbystrek/Todo-Rails-Elite/internal/domain"
)

// DecodeJSON decodes the request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// getPathUUID extracts a UUID from the URL path parameters.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", nil)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// pathParam extracts a raw string path parameter from the chi route.
func pathParam(r *http.Request, paramName string) string {
	return chi.URLParam(r, paramName)
}

// parseDueDate parses a YYYY-MM-DD due date string into a UTC calendar date.
func parseDueDate(value string) (time.Time, error) {
	due, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, domain.NewValidationError("due_date", "must be a date in YYYY-MM-DD form", nil)
	}
	return due, nil
}

// sanitizeValidationError converts a go-playground validation error into a
// short field-level message without leaking struct internals.
func sanitizeValidationError(err error) string {
	errMsg := err.Error()
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := strings.ToLower(fieldParts[1])
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				switch tag {
				case "required":
					return fmt.Sprintf("%s is required", field)
				case "email":
					return fmt.Sprintf("%s should be valid", field)
				case "max":
					return fmt.Sprintf("%s is too long", field)
				case "datetime":
					return fmt.Sprintf("%s must be a date in YYYY-MM-DD form", field)
				default:
					return fmt.Sprintf("%s is invalid", field)
				}
			}
		}
	}
	return "Validation error"
}
