package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/sef-spiri/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestIsValidInputPath(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "racun.xml")
	err := os.WriteFile(testFile, []byte("<Invoice/>"), 0600)
	assert.NoError(t, err)

	tests := []struct {
		name        string
		path        string
		expectError bool
		errContains string
	}{
		{
			name: "Existing file",
			path: testFile,
		},
		{
			name: "Existing directory",
			path: tmpDir,
		},
		{
			name:        "Non-existent path",
			path:        filepath.Join(tmpDir, "missing.xml"),
			expectError: true,
			errContains: "path does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidInputPath(tt.path)
			if tt.expectError {
				assert.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "spiri.xml")
	assert.NoError(t, os.WriteFile(existing, []byte("<commitments/>"), 0600))

	tests := []struct {
		name        string
		path        string
		expectError bool
		errContains string
	}{
		{name: "New file", path: filepath.Join(tmpDir, "out", "spiri.xml")},
		{name: "Existing file is overwritten", path: existing},
		{name: "Empty", path: "  ", expectError: true, errContains: "output path is empty"},
		{name: "Directory", path: tmpDir, expectError: true, errContains: "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidOutputPath(tt.path)
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidReportFormat(t *testing.T) {
	tests := []struct {
		format      string
		expectError bool
	}{
		{format: "yaml"},
		{format: "csv"},
		{format: "xlsx"},
		{format: "json"},
		{format: "xml", expectError: true},
		{format: "", expectError: true},
		{format: "YAML", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := validation.IsValidReportFormat(tt.format)
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported report format")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReportFormatForPath(t *testing.T) {
	tests := []struct {
		path     string
		fallback string
		want     string
	}{
		{"izvestaj.csv", "yaml", "csv"},
		{"izvestaj.XLSX", "yaml", "xlsx"},
		{"izvestaj.yml", "json", "yaml"},
		{"izvestaj.json", "yaml", "json"},
		{"izvestaj.txt", "csv", "csv"},
		{"izvestaj", "yaml", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.ReportFormatForPath(tt.path, tt.fallback))
		})
	}
}

func TestIsValidIndent(t *testing.T) {
	for indent := -2; indent <= validation.MaxIndent+2; indent++ {
		err := validation.IsValidIndent(indent)
		if indent < 0 || indent > validation.MaxIndent {
			assert.Error(t, err, "indent %d", indent)
		} else {
			assert.NoError(t, err, "indent %d", indent)
		}
	}
}
