package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for minigrep
	EnvConfigDir = "MINIGREP_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for minigrep
	EnvStateDir = "MINIGREP_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for minigrep-specific files
	AppDirName = "minigrep"

	// LogFileName is the name of the log file
	LogFileName = "minigrep.log"
)

// ConfigFileNames are tried in order inside the config directory.
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Paths resolves where minigrep keeps its own files.
type Paths interface {
	ConfigDir() string
	StateDir() string
	LogFilePath() string
	// ConfigFile returns the first existing config file, if any.
	ConfigFile() (string, bool)
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance from the current environment.
// Call xdg.Reload first when XDG_* variables changed after startup.
func New() Paths {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.xdgConfig = expandHome(dir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.xdgState = expandHome(dir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

func (p *paths) ConfigFile() (string, bool) {
	for _, name := range ConfigFileNames {
		path := filepath.Join(p.xdgConfig, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home := os.Getenv(EnvHome)
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return path
			}
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
