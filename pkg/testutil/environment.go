package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/minigrep/pkg/config"
	"github.com/arthur-debert/minigrep/pkg/filesystem"
	"github.com/arthur-debert/minigrep/pkg/paths"
	"github.com/arthur-debert/minigrep/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// settingVars are every variable LoadSettings reads
var settingVars = []string{
	config.EnvIgnoreCase,
	config.EnvPrefix + "IGNORE_CASE",
	config.EnvPrefix + "LINE_NUMBERS",
	config.EnvPrefix + "FORMAT",
	config.EnvPrefix + "HIGHLIGHT",
	config.EnvPrefix + "FILTER",
	config.EnvPrefix + "HEADER",
	config.EnvPrefix + "MAX_FILE_SIZE",
	"NO_COLOR",
}

// TestEnvironment holds the filesystem and directories of one test
type TestEnvironment struct {
	// Root is where WriteFile puts files: a temp dir for EnvIsolated,
	// "/data" in memory otherwise
	Root      string
	ConfigDir string
	StateDir  string

	FS   types.FS
	Type EnvType

	t   *testing.T
	mem afero.Fs
}

// NewTestEnvironment creates a new test environment. The host config
// file, log directory and environment overrides are hidden for the
// duration of the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:         t,
		Type:      envType,
		ConfigDir: t.TempDir(),
		StateDir:  t.TempDir(),
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	for _, key := range settingVars {
		UnsetEnv(t, key)
	}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/data"
		env.mem = afero.NewMemMapFs()
		if err := env.mem.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("Failed to create root: %v", err)
		}
		env.FS = filesystem.NewAferoFS(env.mem)
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	return env
}

// Path returns name joined to the environment root
func (env *TestEnvironment) Path(name string) string {
	return filepath.Join(env.Root, name)
}

// WriteFile creates name under Root with content and returns its path
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()

	path := env.Path(name)
	var err error
	if env.mem != nil {
		err = afero.WriteFile(env.mem, path, []byte(content), 0644)
	} else {
		err = os.WriteFile(path, []byte(content), 0644)
	}
	if err != nil {
		env.t.Fatalf("Failed to write file %s: %v", name, err)
	}
	return path
}

// WriteConfig writes a config file into the isolated config directory
func (env *TestEnvironment) WriteConfig(name, content string) string {
	env.t.Helper()

	path := filepath.Join(env.ConfigDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write config %s: %v", name, err)
	}
	return path
}

// UnsetEnv removes key for the rest of the test; the original value is
// restored on cleanup
func UnsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Failed to unset %s: %v", key, err)
	}
}
