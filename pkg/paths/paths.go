package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/actionq/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for actionq
	EnvConfigDir = "ACTIONQ_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for actionq
	EnvStateDir = "ACTIONQ_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for actionq-specific files
	AppDirName = "actionq"

	// UserConfigFile is the name of the user configuration file
	UserConfigFile = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "actionq.log"
)

// ProjectConfigFiles are looked up, in order, in a project directory
var ProjectConfigFiles = []string{".actionq.toml", "actionq.toml"}

// Paths resolves the locations actionq reads and writes
type Paths interface {
	ConfigDir() string
	StateDir() string
	UserConfigPath() string
	LogFilePath() string
	ProjectConfigPath(dir string) (string, bool)
	NormalizePath(path string) (string, error)
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance from the environment
func New() Paths {
	return &paths{
		xdgConfig: ConfigDir(),
		xdgState:  StateDir(),
	}
}

// ConfigDir returns the configuration directory, honouring ACTIONQ_CONFIG_DIR
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the state directory, honouring ACTIONQ_STATE_DIR.
// XDG_STATE_HOME is read directly so that changes after startup are seen.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(xdg.StateHome, AppDirName)
	}
	return filepath.Join(homeDir, ".local", "state", AppDirName)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) StateDir() string {
	return p.xdgState
}

// UserConfigPath returns the path to the user configuration file
func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ProjectConfigPath returns the first project config file found in dir
func (p *paths) ProjectConfigPath(dir string) (string, bool) {
	for _, name := range ProjectConfigFiles {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

func (p *paths) NormalizePath(path string) (string, error) {
	return NormalizePath(path)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
