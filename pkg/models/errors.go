package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid input")
	ErrConstraint       = errors.New("the request violates a ledger constraint")
)

// ErrStorage is returned when the storage layer fails in a way the caller cannot fix.
var ErrStorage = ErrGeneral

// Not found errors
var (
	ErrAccountNotFound     = fmt.Errorf("%w account matching your query", ErrResourceNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w transaction matching your query", ErrResourceNotFound)
	ErrReportNotFound      = fmt.Errorf("%w report matching your query", ErrResourceNotFound)
)

// Validation errors
var (
	ErrInvalidType       = fmt.Errorf("%w: account type must be one of asset, liability, equity, income, expense", ErrValidation)
	ErrInvalidDate       = fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrValidation)
	ErrInvalidPeriod     = fmt.Errorf("%w: period must be in YYYY-MM format", ErrValidation)
	ErrAmountNotPositive = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	ErrNameEmpty         = fmt.Errorf("%w: name must not be empty", ErrValidation)
	ErrCategoryEmpty     = fmt.Errorf("%w: category must not be empty", ErrValidation)
)

// Constraint errors
var (
	ErrSameAccount      = fmt.Errorf("%w: debit and credit accounts must differ", ErrConstraint)
	ErrDuplicateName    = fmt.Errorf("%w: the account name must be unique", ErrConstraint)
	ErrReferenceMissing = fmt.Errorf("%w: a referenced account does not exist", ErrConstraint)
)
