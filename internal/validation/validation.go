// Package validation wraps go-playground/validator for the record DTOs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	storeerrors "github.com/abgdnv/storekeeper/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a validator that understands decimal.Decimal fields.
// A decimal is validated through its sign (-1, 0, 1), so only comparisons with zero
// such as `gt=0` or `gte=0` are meaningful on monetary amounts.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Struct validates s and converts any failure into an ErrValidation-wrapped error
// listing each offending field and the rule it broke.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", storeerrors.ErrValidation, err)
	}
	parts := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		parts = append(parts, fmt.Sprintf("%s failed on rule %s", fieldErr.Field(), rule))
	}
	return fmt.Errorf("%w: %s", storeerrors.ErrValidation, strings.Join(parts, "; "))
}
