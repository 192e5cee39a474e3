package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	isolateConfig(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, 2, config.Output.Indent)
	assert.Equal(t, "", config.Output.DefaultFile)
	assert.True(t, config.Form.RequestPayment)
	assert.Empty(t, config.Form.Defaults)
	assert.Equal(t, "yaml", config.Report.Format)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolateConfig(t)

	testEnvVars := map[string]string{
		"SPIRI_LOG_LEVEL":                    "debug",
		"SPIRI_LOG_FORMAT":                   "json",
		"SPIRI_OUTPUT_INDENT":                "4",
		"SPIRI_OUTPUT_DEFAULT_FILE":          "spiri.xml",
		"SPIRI_FORM_REQUEST_PAYMENT":         "false",
		"SPIRI_FORM_DEFAULTS_BUDGET_USER_ID": "12345",
		"SPIRI_REPORT_FORMAT":                "csv",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 4, config.Output.Indent)
	assert.Equal(t, "spiri.xml", config.Output.DefaultFile)
	assert.False(t, config.Form.RequestPayment)
	assert.Equal(t, "12345", config.Form.Defaults["budget_user_id"])
	assert.Equal(t, "csv", config.Report.Format)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	tempDir := isolateConfig(t)

	configContent := `
log:
  level: "warn"
  format: "json"
output:
  indent: 0
  default_file: "izlaz/spiri.xml"
form:
  request_payment: false
  defaults:
    budget_user_id: "01234"
    program_code: "0602"
report:
  format: "xlsx"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, 0, config.Output.Indent)
	assert.Equal(t, "izlaz/spiri.xml", config.Output.DefaultFile)
	assert.False(t, config.Form.RequestPayment)
	assert.Equal(t, map[string]string{
		"budget_user_id": "01234",
		"program_code":   "0602",
	}, config.Form.Defaults)
	assert.Equal(t, "xlsx", config.Report.Format)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	tempDir := isolateConfig(t)

	configContent := `
log:
  level: "warn"
output:
  indent: 3
form:
  defaults:
    budget_user_id: "01234"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))

	t.Setenv("SPIRI_LOG_LEVEL", "error")
	t.Setenv("SPIRI_FORM_DEFAULTS_BUDGET_USER_ID", "99999")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)                       // env var wins
	assert.Equal(t, 3, config.Output.Indent)                         // config file value
	assert.Equal(t, "99999", config.Form.Defaults["budget_user_id"]) // env var wins
}

func TestInitializeConfig_InvalidFile(t *testing.T) {
	tempDir := isolateConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte("log: [unclosed"), 0600))

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "invalid" },
			expectError:  "invalid log format",
		},
		{
			name:         "negative indent",
			modifyConfig: func(c *Config) { c.Output.Indent = -1 },
			expectError:  "output.indent must be between 0 and 8",
		},
		{
			name:         "indent too wide",
			modifyConfig: func(c *Config) { c.Output.Indent = 9 },
			expectError:  "output.indent must be between 0 and 8",
		},
		{
			name:         "unsupported report format",
			modifyConfig: func(c *Config) { c.Report.Format = "pdf" },
			expectError:  "unsupported report format: pdf",
		},
		{
			name:         "unknown form default",
			modifyConfig: func(c *Config) { c.Form.Defaults["iban"] = "x" },
			expectError:  "unknown form default: iban",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			require.NoError(t, validateConfig(config))

			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{name: "text format info level", level: "info", format: "text", wantLevel: logrus.InfoLevel},
		{name: "json format debug level", level: "debug", format: "json", wantLevel: logrus.DebugLevel, wantJSON: true},
		{name: "bad level falls back to info", level: "loud", format: "text", wantLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			config.Log.Level = tt.level
			config.Log.Format = tt.format

			logger := ConfigureLoggingFromConfig(config)
			require.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel, logger.GetLevel())
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}

func validConfig() *Config {
	config := &Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.Output.Indent = 2
	config.Form.Defaults = map[string]string{"budget_user_id": "12345"}
	config.Form.RequestPayment = true
	config.Report.Format = "yaml"
	return config
}

// isolateConfig clears SPIRI_ variables, points HOME at an empty directory
// and changes into a fresh working directory that is returned.
func isolateConfig(t *testing.T) string {
	t.Helper()

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, EnvPrefix+"_") {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}

	t.Setenv("HOME", t.TempDir())

	tempDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
	require.NoError(t, os.Chdir(tempDir))

	return tempDir
}
