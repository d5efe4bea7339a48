package rentcycle

import "errors"

var (
	// ErrInvalidDate is returned when an evaluator receives a zero date.
	// Evaluators fail loudly instead of producing garbage day arithmetic.
	ErrInvalidDate = errors.New("rentcycle: invalid date")

	// ErrNoActiveLease is returned when a rent cycle is evaluated for a
	// property without an active lease. Vacant properties are not billed.
	ErrNoActiveLease = errors.New("rentcycle: property has no active lease")
)
