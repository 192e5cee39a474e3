// Package spiri maps extracted SEF invoices onto the SPIRI budget-commitment
// document and serializes it.
package spiri

import (
	"strings"

	"fjacquet/sef-spiri/internal/models"
)

const (
	accountPrefixLen = 3
	accountBodyLen   = 15
)

// NormalizeAccountNumber keeps the bank prefix (first three characters) and
// left-pads the hyphen-free remainder with zeros to fifteen characters. A
// longer remainder is kept whole. An empty account becomes the all-zero
// placeholder.
func NormalizeAccountNumber(raw string) string {
	if raw == "" {
		raw = models.PlaceholderAccount
	}

	runes := []rune(raw)
	if len(runes) <= accountPrefixLen {
		return raw + zeroFill("", accountBodyLen)
	}

	prefix := string(runes[:accountPrefixLen])
	body := strings.ReplaceAll(string(runes[accountPrefixLen:]), "-", "")
	return prefix + zeroFill(body, accountBodyLen)
}

// zeroFill pads s on the left with zeros up to width runes. A leading sign
// stays in front of the padding.
func zeroFill(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := strings.Repeat("0", width-len(runes))
	if len(runes) > 0 && (runes[0] == '+' || runes[0] == '-') {
		return string(runes[0]) + pad + string(runes[1:])
	}
	return pad + s
}
