package entity

import (
	"math"
	"strconv"
	"unicode/utf8"

	domainerrors "farmlink/internal/domain/errors"
)

// Column limits shared by the entities and their tables.
const (
	MaxEmailLength        = 254
	MaxShortTextLength    = 255
	MaxNameLength         = 100
	MaxSlugLength         = 120
	MaxIdentifierLength   = 100
	MaxIDCardLength       = 50
	quantityIntegerDigits = 8 // decimal(10,2)
	quantityDecimals      = 2
)

// checkLength rejects values longer than limit characters.
func checkLength(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return domainerrors.ErrValidationFailed.WithDetails(
			field + " must be at most " + strconv.Itoa(limit) + " characters")
	}

	return nil
}

// checkLengths runs checkLength over field/value pairs sharing one limit.
func checkLengths(limit int, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := checkLength(pairs[i], pairs[i+1], limit); err != nil {
			return err
		}
	}

	return nil
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkQuantity accepts positive values that fit a decimal(10,2) column without rounding.
func checkQuantity(field string, v float64) error {
	switch {
	case !IsFinite(v) || v <= 0:
		return domainerrors.ErrValidationFailed.WithDetails(field + " must be greater than zero")
	case v >= math.Pow10(quantityIntegerDigits):
		return domainerrors.ErrValidationFailed.WithDetails(
			field + " must have at most " + strconv.Itoa(quantityIntegerDigits) + " digits before the decimal point")
	case math.Round(v*100)/100 != v:
		return domainerrors.ErrValidationFailed.WithDetails(
			field + " must have at most " + strconv.Itoa(quantityDecimals) + " decimal places")
	}

	return nil
}
