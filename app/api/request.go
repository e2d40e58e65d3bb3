package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mytheresa/go-catalog-service/models"
)

const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dst. Unknown fields, trailing
// data and type mismatches are reported as validation errors.
func DecodeJSON(w http.ResponseWriter, r *http.Request, entity string, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return bodyError(entity, err)
	}
	if dec.More() {
		return &models.Error{Kind: models.ErrValidation, Entity: entity, Message: "request body must hold a single JSON object"}
	}
	return nil
}

func bodyError(entity string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &models.Error{
			Kind:    models.ErrValidation,
			Entity:  entity,
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s.%s must be a %s", entity, typeErr.Field, typeErr.Type),
		}
	}
	if errors.Is(err, io.EOF) {
		return &models.Error{Kind: models.ErrValidation, Entity: entity, Message: "request body is required"}
	}
	return &models.Error{Kind: models.ErrValidation, Entity: entity, Message: "malformed request body: " + err.Error()}
}

// ParseID reads a positive integer path parameter.
func ParseID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, &models.Error{
			Kind:    models.ErrValidation,
			Entity:  "path",
			Field:   name,
			Message: fmt.Sprintf("%s must be a positive integer, got %q", name, raw),
		}
	}
	return uint(id), nil
}

// ParsePageRequest reads offset, limit, page and size. Bounds are checked
// later by models.ComposePage; here only the syntax is.
func ParsePageRequest(query url.Values) (models.PageRequest, error) {
	var (
		req models.PageRequest
		err error
	)
	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"offset", &req.Offset},
		{"limit", &req.Limit},
		{"page", &req.Page},
		{"size", &req.Size},
	} {
		if *p.dst, err = optionalInt(query, p.name); err != nil {
			return models.PageRequest{}, err
		}
	}
	return req, nil
}

// ParseProductFilters reads the product listing parameters.
func ParseProductFilters(query url.Values) (models.ProductFilters, error) {
	page, err := ParsePageRequest(query)
	if err != nil {
		return models.ProductFilters{}, err
	}

	filters := models.ProductFilters{
		Name:        query.Get("name"),
		SortBy:      query.Get("sort_by"),
		SortOrder:   query.Get("sort_order"),
		PageRequest: page,
	}

	if filters.MinPrice, err = optionalPrice(query, "min_price"); err != nil {
		return models.ProductFilters{}, err
	}
	if filters.MaxPrice, err = optionalPrice(query, "max_price"); err != nil {
		return models.ProductFilters{}, err
	}
	if filters.CategoryID, err = optionalID(query, "category_id"); err != nil {
		return models.ProductFilters{}, err
	}
	if filters.DepartmentID, err = optionalID(query, "department_id"); err != nil {
		return models.ProductFilters{}, err
	}

	return filters, nil
}

func optionalInt(query url.Values, name string) (*int, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, models.Invalid(models.ErrInvalidPagination, name, "%s must be an integer, got %q", name, raw)
	}
	return &v, nil
}

func optionalPrice(query url.Values, name string) (*decimal.Decimal, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, models.Invalid(models.ErrInvalidFilterRange, name, "%s must be a decimal number, got %q", name, raw)
	}
	return &v, nil
}

func optionalID(query url.Values, name string) (*uint, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return nil, models.Invalid(models.ErrValidation, name, "%s must be a positive integer, got %q", name, raw)
	}
	id := uint(v)
	return &id, nil
}
