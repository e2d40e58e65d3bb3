package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mytheresa/go-catalog-service/models"
)

// maxPrice is the first value that no longer fits numeric(12,2).
var maxPrice = decimal.New(1, 10)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimals are validated through their canonical string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	must(v.RegisterValidation("money", isMoney))
	must(v.RegisterValidation("notblank", isNotBlank))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func isMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && d.Exponent() >= -2 && d.LessThan(maxPrice)
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateInput runs the struct tags of in and reports the first violation
// as a validation error naming the offending field.
func validateInput(entity string, in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &models.Error{Kind: models.ErrValidation, Entity: entity, Message: err.Error()}
	}

	fe := fieldErrs[0]
	return &models.Error{
		Kind:    models.ErrValidation,
		Entity:  entity,
		Field:   fe.Field(),
		Message: fmt.Sprintf("%s.%s %s", entity, fe.Field(), describe(fe)),
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "money":
		return "must be a non-negative amount below 10000000000 with at most 2 decimal places"
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
