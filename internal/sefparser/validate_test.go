package sefparser

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/sef-spiri/internal/converterror"
	"fjacquet/sef-spiri/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFormat_Table(t *testing.T) {
	tmpDir := t.TempDir()
	garbage := filepath.Join(tmpDir, "garbage.xml")
	require.NoError(t, os.WriteFile(garbage, []byte("this is not xml <"), 0600))
	noAmount := filepath.Join(tmpDir, "no_amount.xml")
	require.NoError(t, os.WriteFile(noAmount, []byte(`<Invoice><ID>1</ID></Invoice>`), 0600))

	tests := []struct {
		name       string
		path       string
		wantReason string
	}{
		{name: "enveloped invoice", path: filepath.Join("testdata", "invoice_envelope.xml")},
		{name: "plain invoice", path: filepath.Join("testdata", "invoice_plain.xml")},
		{name: "credit note", path: filepath.Join("testdata", "not_invoice.xml"), wantReason: "no Invoice element"},
		{name: "not xml", path: garbage, wantReason: "not a well-formed XML document"},
		{name: "invoice without amount", path: noAmount, wantReason: "Invoice has no PayableAmount"},
	}

	p := New(logging.NewMockLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.CheckFormat(tt.path)
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			var formatErr *converterror.InvalidFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, tt.wantReason, formatErr.Msg)
		})
	}
}

func TestCheckFormat(t *testing.T) {
	p := New(logging.NewMockLogger())

	assert.NoError(t, p.CheckFormat(filepath.Join("testdata", "invoice_plain.xml")))

	err := p.CheckFormat(filepath.Join("testdata", "not_invoice.xml"))
	var formatErr *converterror.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "no Invoice element", formatErr.Msg)
	assert.Equal(t, ExpectedFormat, formatErr.ExpectedFormat)

	err = p.CheckFormat(filepath.Join(t.TempDir(), "missing.xml"))
	var readErr *converterror.FileReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestInspectFormat(t *testing.T) {
	p := New(logging.NewMockLogger())

	info, err := p.InspectFormat(filepath.Join("testdata", "invoice_envelope.xml"))
	require.NoError(t, err)
	assert.True(t, info.Enveloped)
	assert.Equal(t, "RN-2025-0042", info.InvoiceNumber)

	info, err = p.InspectFormat(filepath.Join("testdata", "invoice_plain.xml"))
	require.NoError(t, err)
	assert.False(t, info.Enveloped)
	assert.Equal(t, "F-17/25", info.InvoiceNumber)

	_, err = p.InspectFormat(filepath.Join("testdata", "not_invoice.xml"))
	var formatErr *converterror.InvalidFormatError
	assert.ErrorAs(t, err, &formatErr)
}
