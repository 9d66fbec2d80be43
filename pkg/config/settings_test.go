// pkg/config/settings_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (temp dir), environment variables
// PURPOSE: Test settings layering, format normalization and validation

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/minigrep/pkg/errors"
	"github.com/arthur-debert/minigrep/pkg/paths"
)

// isolate points the config directory at an empty temp dir and clears
// every environment override so the host cannot leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	for _, key := range []string{
		EnvIgnoreCase,
		EnvPrefix + "IGNORE_CASE",
		EnvPrefix + "LINE_NUMBERS",
		EnvPrefix + "FORMAT",
		EnvPrefix + "HIGHLIGHT",
		EnvPrefix + "FILTER",
		EnvPrefix + "HEADER",
		EnvPrefix + "MAX_FILE_SIZE",
	} {
		unsetEnv(t, key)
	}
	return dir
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // restores the original value on cleanup
	require.NoError(t, os.Unsetenv(key))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadSettings_Defaults(t *testing.T) {
	isolate(t)

	s, err := LoadSettings(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, Settings{
		IgnoreCase:  false,
		LineNumbers: false,
		Format:      "auto",
		Highlight:   true,
		Filter:      true,
		Header:      true,
		MaxFileSize: 0,
	}, s)
}

func TestLoadSettings_ConfigFiles(t *testing.T) {
	t.Run("toml in config dir", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "config.toml"), "ignore_case = true\nformat = \"json\"\n")

		s, err := LoadSettings(LoadOptions{})
		require.NoError(t, err)
		assert.True(t, s.IgnoreCase)
		assert.Equal(t, "json", s.Format)
		assert.True(t, s.Header, "untouched keys keep their defaults")
	})

	t.Run("yaml in config dir", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "config.yml"), "line_numbers: true\nmax_file_size: 1024\n")

		s, err := LoadSettings(LoadOptions{})
		require.NoError(t, err)
		assert.True(t, s.LineNumbers)
		assert.Equal(t, int64(1024), s.MaxFileSize)
	})

	t.Run("explicit file wins over config dir", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "config.toml"), "format = \"json\"\n")
		explicit := filepath.Join(t.TempDir(), "custom.toml")
		writeFile(t, explicit, "format = \"text\"\n")

		s, err := LoadSettings(LoadOptions{ConfigFile: explicit})
		require.NoError(t, err)
		assert.Equal(t, "text", s.Format)
	})

	t.Run("explicit Paths", func(t *testing.T) {
		isolate(t)
		other := t.TempDir()
		writeFile(t, filepath.Join(other, "config.toml"), "header = false\n")
		t.Setenv(paths.EnvConfigDir, other)

		s, err := LoadSettings(LoadOptions{Paths: paths.New()})
		require.NoError(t, err)
		assert.False(t, s.Header)
	})
}

func TestLoadSettings_ConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		wantCode errors.ErrorCode
	}{
		{
			name: "missing explicit file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.toml")
			},
			wantCode: errors.ErrConfigLoad,
		},
		{
			name: "unsupported extension",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "config.ini")
				writeFile(t, path, "ignore_case=true")
				return path
			},
			wantCode: errors.ErrConfigParse,
		},
		{
			name: "malformed toml",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "config.toml")
				writeFile(t, path, "ignore_case = = true")
				return path
			},
			wantCode: errors.ErrConfigParse,
		},
		{
			name: "unknown format value",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "config.toml")
				writeFile(t, path, "format = \"xml\"\n")
				return path
			},
			wantCode: errors.ErrConfigValid,
		},
		{
			name: "negative size limit",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "config.yaml")
				writeFile(t, path, "max_file_size: -1\n")
				return path
			},
			wantCode: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := LoadSettings(LoadOptions{ConfigFile: tt.setup(t)})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
		})
	}
}

func TestLoadSettings_Environment(t *testing.T) {
	t.Run("prefixed variables", func(t *testing.T) {
		isolate(t)
		t.Setenv("MINIGREP_LINE_NUMBERS", "true")
		t.Setenv("MINIGREP_FORMAT", "text")
		t.Setenv("MINIGREP_MAX_FILE_SIZE", "2048")

		s, err := LoadSettings(LoadOptions{})
		require.NoError(t, err)
		assert.True(t, s.LineNumbers)
		assert.Equal(t, "text", s.Format)
		assert.Equal(t, int64(2048), s.MaxFileSize)
	})

	t.Run("IGNORE_CASE set to any value", func(t *testing.T) {
		for _, value := range []string{"1", "true", "no", ""} {
			isolate(t)
			t.Setenv(EnvIgnoreCase, value)

			s, err := LoadSettings(LoadOptions{})
			require.NoError(t, err)
			assert.True(t, s.IgnoreCase, "IGNORE_CASE=%q", value)
		}
	})

	t.Run("environment beats config file", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "config.toml"), "format = \"json\"\n")
		t.Setenv("MINIGREP_FORMAT", "term")

		s, err := LoadSettings(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "term", s.Format)
	})
}

func TestLoadSettings_FlagsWin(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), "ignore_case = true\nformat = \"json\"\n")
	t.Setenv(EnvIgnoreCase, "1")

	s, err := LoadSettings(LoadOptions{Flags: map[string]interface{}{
		KeyIgnoreCase: false,
		KeyFormat:     "text",
		KeyFilter:     false,
	}})
	require.NoError(t, err)
	assert.False(t, s.IgnoreCase)
	assert.Equal(t, "text", s.Format)
	assert.False(t, s.Filter)
}

func TestSettingsValidate(t *testing.T) {
	for _, f := range Formats {
		assert.NoError(t, Settings{Format: f}.Validate(), f)
	}
	assert.Error(t, Settings{Format: ""}.Validate())
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"json", "json"},
		{"JSON", "json"},
		{" Text ", "text"},
		{"plain", "text"},
		{"PLAIN", "text"},
		{"terminal", "term"},
		{"Term", "term"},
		{"xml", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeFormat(tt.in))
		})
	}
}

func TestLoadSettings_FormatAliases(t *testing.T) {
	dir := isolate(t)

	s, err := LoadSettings(LoadOptions{Flags: map[string]interface{}{KeyFormat: "PLAIN"}})
	require.NoError(t, err)
	assert.Equal(t, "text", s.Format)

	writeFile(t, filepath.Join(dir, "config.toml"), "format = \"Terminal\"\n")
	s, err = LoadSettings(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "term", s.Format)

	_, err = LoadSettings(LoadOptions{Flags: map[string]interface{}{KeyFormat: "XML"}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigValid, errors.GetErrorCode(err))
}
