package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/url-shortener/internal/entity"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// shortenRequest represents the body of a request to shorten a URL.
// The URL is stored as given, so only its presence is validated.
type shortenRequest struct {
	OriginalURL string `json:"original_url" validate:"required"`
}

// shortenResponse carries the public short URL of a created mapping.
type shortenResponse struct {
	ShortURL string `json:"short_url"`
}

// toAnalyticsResponse renders each record as "<timestamp> <address>".
func toAnalyticsResponse(records []entity.AccessRecord) []string {
	resp := make([]string, 0, len(records))
	for _, rec := range records {
		resp = append(resp, rec.String())
	}
	return resp
}

type healthResponse struct {
	Status     string `json:"status"`
	InstanceID string `json:"instance_id"`
	URLs       int    `json:"urls"`
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	urlNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "url not found",
	}

	analyticsNotFoundResponse = errorResponse{
		Status:  statusError,
		Message: "analytics not found",
	}

	generationExhaustedResponse = errorResponse{
		Status:  statusError,
		Message: "failed to generate a unique short code",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}
)

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	default:
		return "invalid value"
	}
}

func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}
