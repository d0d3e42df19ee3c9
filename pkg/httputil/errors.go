package httputil

import (
	"fmt"

	"github.com/bahtledger/backend/pkg/models"
)

var (
	ErrRequestBodyEmpty   = fmt.Errorf("%w: request body must not be empty", models.ErrValidation)
	ErrInvalidBody        = fmt.Errorf("%w: the body of your request contains invalid or un-parseable data. Please check and try again", models.ErrValidation)
	ErrInvalidQueryString = fmt.Errorf("%w: the query string contains unparseable data. Please check the values", models.ErrValidation)
	ErrInvalidID          = fmt.Errorf("%w: the specified resource ID is not a valid positive integer", models.ErrValidation)
)
