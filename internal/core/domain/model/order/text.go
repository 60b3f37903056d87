package order

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"flowerorder/internal/pkg/errs"
)

// checkText enforces presence (when required) and a maximum rune length.
func checkText(param, value string, required bool, maxLen int) error {
	if required && strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if n := utf8.RuneCountInString(value); n > maxLen {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("length %d exceeds %d", n, maxLen))
	}
	return nil
}
