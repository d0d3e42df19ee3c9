// Package validation contains the input checks every mutating ledger
// operation runs before it writes to storage.
//
// All functions are pure and never panic.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/bahtledger/backend/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var (
	datePattern   = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])$`)
	periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

// IsValidDate reports whether s is a date in YYYY-MM-DD format.
//
// Only the shape and the month and day ranges are checked, "2025-02-31"
// is accepted.
func IsValidDate(s string) bool {
	return len(s) == 10 && datePattern.MatchString(s)
}

// IsValidPeriod reports whether s is a period in YYYY-MM format.
func IsValidPeriod(s string) bool {
	return len(s) == 7 && periodPattern.MatchString(s)
}

// IsPositiveAmount reports whether v can be converted to a number
// greater than zero.
func IsPositiveAmount(v any) bool {
	d, ok := toDecimal(v)
	return ok && d.IsPositive()
}

// IsValidAccountType reports whether t is one of the account types.
func IsValidAccountType[T ~string](t T) bool {
	return slices.Contains(models.AccountTypes, models.AccountType(t))
}

// toDecimal converts numeric values and numeric strings to a decimal.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return n, true
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero, false
		}
		return *n, true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(val.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromUint64(val.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := val.Float()

		// NaN and infinities are not numbers a ledger can hold
		if f != f || f > 1e300 || f < -1e300 {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(f), true
	}

	return decimal.Zero, false
}
