package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/straye-as/finch-collector/internal/domain"
	"github.com/straye-as/finch-collector/internal/repository"
	"github.com/straye-as/finch-collector/internal/service"
	"go.uber.org/zap"
)

// BasePath is the prefix of every versioned route
const BasePath = "/api/v1"

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	fieldErrors := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fieldErrors[toJSONFieldName(fe.Field())] = formatValidationError(fe)
		}
	}

	respondJSON(w, http.StatusBadRequest, domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: fieldErrors,
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", toJSONFieldName(fe.Field()))
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.APIError{
		Type:   getErrorType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return domain.ErrorTypeBadRequest
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	default:
		return domain.ErrorTypeInternal
	}
}

// respondServiceError maps a service error to a response: not found
// becomes 404, anything else is logged and becomes 500.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, action string) {
	switch {
	case errors.Is(err, service.ErrFinchNotFound):
		respondWithError(w, http.StatusNotFound, "Finch not found")
	case errors.Is(err, service.ErrToyNotFound):
		respondWithError(w, http.StatusNotFound, "Toy not found")
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Resource not found")
	default:
		logger.Error("failed to "+action, zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

// redirect answers a write with 303 See Other and the workflow outcome
func redirect(w http.ResponseWriter, r *http.Request, location, outcome string) {
	w.Header().Set(domain.OutcomeHeader, outcome)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// outcomeFor names how a write workflow ended
func outcomeFor(err error) string {
	switch {
	case err == nil:
		return domain.OutcomeOK
	case errors.Is(err, service.ErrNoPhotoFile):
		return domain.OutcomeNoFile
	case errors.Is(err, service.ErrInvalidFilename):
		return domain.OutcomeInvalidFilename
	case errors.Is(err, service.ErrUploadFailed):
		return domain.OutcomeUploadFailed
	default:
		return domain.OutcomeInvalidInput
	}
}

// parseIDParam parses a UUID path parameter, answering 400 when it is malformed
func parseIDParam(w http.ResponseWriter, r *http.Request, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID format", label))
		return uuid.Nil, false
	}
	return id, true
}

// parseListFilter reads the search and sort query parameters of list views
func parseListFilter(r *http.Request) repository.ListFilter {
	sort := repository.DefaultSortConfig()
	if sortBy := r.URL.Query().Get("sortBy"); sortBy != "" {
		sort.Field = sortBy
	}
	if sortOrder := r.URL.Query().Get("sortOrder"); sortOrder != "" {
		sort.Order = repository.ParseSortOrder(sortOrder)
	}

	return repository.ListFilter{
		Search: r.URL.Query().Get("search"),
		Sort:   sort,
	}
}

func finchPath(id uuid.UUID) string {
	return BasePath + "/finches/" + id.String()
}

func toyPath(id uuid.UUID) string {
	return BasePath + "/toys/" + id.String()
}
