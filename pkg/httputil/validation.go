package httputil

import (
	"fmt"
	"strings"

	"github.com/bahtledger/backend/pkg/models"
	"github.com/bahtledger/backend/pkg/validation"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers the ledger specific binding tags
// with gin's validator:
//
//	isodate      a date in YYYY-MM-DD format
//	period       a period in YYYY-MM format
//	accounttype  one of the account types
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	validators := map[string]validator.Func{
		"isodate": func(fl validator.FieldLevel) bool {
			return validation.IsValidDate(fl.Field().String())
		},
		"period": func(fl validator.FieldLevel) bool {
			return validation.IsValidPeriod(fl.Field().String())
		},
		"accounttype": func(fl validator.FieldLevel) bool {
			return validation.IsValidAccountType(fl.Field().String())
		},
	}

	for tag, fn := range validators {
		err := v.RegisterValidation(tag, fn)
		if err != nil {
			return err
		}
	}

	return nil
}

// validationError converts binding errors into ledger validation errors
// so that clients get a meaningful message.
func validationError(errs validator.ValidationErrors) error {
	// Report the first error only, the ledger operations do the same
	e := errs[0]

	switch e.Tag() {
	case "isodate":
		return models.ErrInvalidDate
	case "period":
		return models.ErrInvalidPeriod
	case "accounttype":
		return models.ErrInvalidType
	case "required":
		return fmt.Errorf("%w: %s is required", models.ErrValidation, fieldName(e))
	}

	return fmt.Errorf("%w: %s is not valid", models.ErrValidation, fieldName(e))
}

func fieldName(e validator.FieldError) string {
	name := e.Field()
	if name == "" {
		return "a field"
	}

	return strings.ToLower(name[:1]) + name[1:]
}
