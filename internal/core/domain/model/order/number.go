package order

import (
	"fmt"
	"regexp"
	"strconv"

	"flowerorder/internal/pkg/errs"
)

// Bounds of the six-digit order number range.
const (
	MinNumber = 100000
	MaxNumber = 999999
)

var numberPattern = regexp.MustCompile(`^\d{6}$`)

// Number is the six-digit public order identifier, distinct from the internal UUID.
type Number struct {
	value string
}

// NewNumber parses a six-digit number in [MinNumber, MaxNumber].
func NewNumber(value string) (Number, error) {
	if !numberPattern.MatchString(value) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%q is not six digits", value),
		)
	}
	n, _ := strconv.Atoi(value)
	return NumberFromInt(n)
}

// NumberFromInt builds a Number from an integer draw.
//
// Parameters:
//   - n: A value in [MinNumber, MaxNumber]
//
// Returns:
//   - the Number for n
//   - *errs.ValueIsOutOfRangeError if n is outside the range
func NumberFromInt(n int) (Number, error) {
	if n < MinNumber || n > MaxNumber {
		return Number{}, errs.NewValueIsOutOfRangeError("order number", n, MinNumber, MaxNumber)
	}
	return Number{value: strconv.Itoa(n)}, nil
}

// String returns the six digits, or "" for the zero Number.
func (n Number) String() string {
	return n.value
}

// IsZero reports whether no number has been assigned.
func (n Number) IsZero() bool {
	return n.value == ""
}
