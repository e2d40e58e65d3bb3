// Package api holds the request decoding and response encoding shared by the
// HTTP handlers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mytheresa/go-catalog-service/models"
)

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Code   string `json:"code"`
	Error  string `json:"error"`
	Entity string `json:"entity,omitempty"`
	Field  string `json:"field,omitempty"`
}

type errorMapping struct {
	kind   error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{models.ErrNotFound, http.StatusNotFound, "not_found"},
	{models.ErrDuplicateName, http.StatusConflict, "duplicate_name"},
	{models.ErrForeignKeyViolation, http.StatusConflict, "foreign_key_violation"},
	{models.ErrInvalidFilterRange, http.StatusBadRequest, "invalid_filter_range"},
	{models.ErrInvalidPagination, http.StatusBadRequest, "invalid_pagination"},
	{models.ErrInvalidSortKey, http.StatusBadRequest, "invalid_sort_key"},
	{models.ErrValidation, http.StatusUnprocessableEntity, "validation_error"},
}

// WriteJSON writes data with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// WriteError maps err to its status and writes an ErrorResponse.
// Errors outside the catalog taxonomy are logged and hidden behind a 500.
func WriteError(w http.ResponseWriter, log *zap.Logger, err error) {
	status, body := Describe(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	} else {
		log.Debug("request rejected", zap.String("code", body.Code), zap.Error(err))
	}
	WriteJSON(w, status, body)
}

// Describe returns the status and body WriteError would send for err.
func Describe(err error) (int, ErrorResponse) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}

		body := ErrorResponse{Code: m.code, Error: err.Error()}
		var domainErr *models.Error
		if errors.As(err, &domainErr) {
			body.Entity = domainErr.Entity
			body.Field = domainErr.Field
		}
		return m.status, body
	}

	return http.StatusInternalServerError, ErrorResponse{Code: "internal_error", Error: "internal server error"}
}

// Money renders an amount with exactly two decimals, as a JSON number.
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
