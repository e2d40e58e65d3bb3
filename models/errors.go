package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds shared by the gateway, the service layer and the HTTP surface.
var (
	ErrNotFound            = errors.New("not found")
	ErrDuplicateName       = errors.New("duplicate name")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrInvalidFilterRange  = errors.New("invalid filter range")
	ErrInvalidPagination   = errors.New("invalid pagination")
	ErrInvalidSortKey      = errors.New("invalid sort key")
	ErrValidation          = errors.New("validation error")
)

// Error carries one of the error kinds above together with the entity and
// field it refers to. errors.Is(err, ErrNotFound) matches on Kind.
type Error struct {
	Kind    error
	Entity  string
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NotFound(entity string, id uint) error {
	return &Error{
		Kind:    ErrNotFound,
		Entity:  entity,
		Field:   "id",
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}

func DuplicateName(entity, name string) error {
	return &Error{
		Kind:    ErrDuplicateName,
		Entity:  entity,
		Field:   "name",
		Message: fmt.Sprintf("%s named %q already exists", entity, name),
	}
}

func MissingParent(entity, field string, id uint) error {
	return &Error{
		Kind:    ErrForeignKeyViolation,
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf("%s: %s %d does not reference an existing row", entity, field, id),
	}
}

func Invalid(kind error, field, format string, args ...any) error {
	return &Error{
		Kind:    kind,
		Entity:  "query",
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// translateError maps store level failures to the error kinds above.
// Errors it does not recognise are returned wrapped with op.
func translateError(op, entity string, err error) error {
	if err == nil {
		return nil
	}

	var domainErr *Error
	if errors.As(err, &domainErr) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: ErrNotFound, Entity: entity, Field: "id", Message: entity + " not found"}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: ErrDuplicateName, Entity: entity, Field: "name", Message: entity + " name already exists"}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Kind: ErrForeignKeyViolation, Entity: entity, Message: entity + " references a missing parent"}
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &Error{Kind: ErrValidation, Entity: entity, Message: entity + " violates a check constraint"}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func isDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}

func isForeignKey(err error) bool {
	return errors.Is(err, ErrForeignKeyViolation)
}
