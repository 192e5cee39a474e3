package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/sef-spiri/internal/logging"
	"fjacquet/sef-spiri/internal/sefparser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validInvoice = `<Invoice xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">
  <cbc:ID>RN-1</cbc:ID>
  <cbc:PayableAmount>10.00</cbc:PayableAmount>
</Invoice>`

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.xml")
	bad := filepath.Join(dir, "b.xml")
	require.NoError(t, os.WriteFile(good, []byte(validInvoice), 0600))
	require.NoError(t, os.WriteFile(bad, []byte(`<CreditNote/>`), 0600))

	logger := logging.NewMockLogger()
	p := sefparser.New(logger)

	tests := []struct {
		name      string
		selection []string
		wantErr   string
		wantOut   []string
	}{
		{
			name:      "valid file",
			selection: []string{good},
			wantOut:   []string{"OK      " + good + " (RN-1, plain)"},
		},
		{
			name:      "directory with an invalid file",
			selection: []string{dir},
			wantErr:   "1 of 2 files are not valid SEF invoices",
			wantOut:   []string{"OK      " + good, "INVALID " + bad},
		},
		{
			name:      "missing path",
			selection: []string{filepath.Join(dir, "missing.xml")},
			wantErr:   "path does not exist",
		},
		{
			name:      "no xml files",
			selection: []string{t.TempDir()},
			wantErr:   "no .xml files in selection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := ValidateFiles(p, tt.selection, &out, logger)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, line := range tt.wantOut {
				assert.Contains(t, out.String(), line)
			}
		})
	}
}
