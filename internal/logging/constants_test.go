package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	fields := []string{
		FieldFile, FieldOrdinal, FieldInvoiceNumber, FieldExternalID,
		FieldReasonCode, FieldBudgetYear, FieldOperation, FieldStatus,
		FieldError, FieldCount, FieldSkipped, FieldOutputFile,
		FieldReportFile, FieldRunID,
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		assert.NotEmpty(t, f)
		assert.False(t, seen[f], "duplicate field name %q", f)
		seen[f] = true
	}
	assert.Equal(t, "file_path", FieldFile)
	assert.Equal(t, "invoice_number", FieldInvoiceNumber)
}
