package policy

import "errors"

var (
	// ErrNoBackstop indicates a nil or empty backstop price table.
	ErrNoBackstop = errors.New("policy: nil or empty backstop table")

	// ErrBackstopDomain indicates a backstop entry that is zero, negative,
	// or NaN; abatement is undefined at such a price.
	ErrBackstopDomain = errors.New("policy: non-positive backstop price")

	// ErrTaxLength indicates a tax vector longer than the horizon allows.
	ErrTaxLength = errors.New("policy: tax vector longer than horizon")

	// ErrBadExponent indicates an abatement-cost exponent at or below 1.
	ErrBadExponent = errors.New("policy: abatement cost exponent must exceed 1")
)
