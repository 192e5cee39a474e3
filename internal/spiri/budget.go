package spiri

import (
	"strings"

	"fjacquet/sef-spiri/internal/converterror"
)

// BudgetYear returns the part of an expected payment date before the first
// hyphen. Dates without a hyphen, or with nothing before it, are rejected.
func BudgetYear(expectedPaymentDate string) (string, error) {
	idx := strings.Index(expectedPaymentDate, "-")
	if idx <= 0 {
		return "", &converterror.DateFormatError{Value: expectedPaymentDate}
	}
	return expectedPaymentDate[:idx], nil
}
