package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/confname/pkg/errors"
)

// Environment variable names
const (
	// EnvProject selects the project root when no flag is given
	EnvProject = "CONFNAME_PROJECT"

	// EnvConfigDir overrides the XDG config directory for confname
	EnvConfigDir = "CONFNAME_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for confname
	EnvStateDir = "CONFNAME_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "confname"

	// UserConfigFile is the name of the user configuration file
	UserConfigFile = "config.toml"

	// ProjectConfigFile is the name of the per-project configuration file
	ProjectConfigFile = ".confname.toml"

	// DefaultProfilesFile is the profiles file relative to the project root
	DefaultProfilesFile = ".confname/profiles.toml"

	// LogFileName is the name of the log file
	LogFileName = "confname.log"
)

// Paths provides centralized path management for confname
type Paths interface {
	ProjectRoot() string
	UsedFallback() bool
	ConfigDir() string
	StateDir() string
	UserConfigPath() string
	ProjectConfigPath() string
	ProfilesPath(configured string) string
	LogFilePath() string
	NormalizePath(path string) (string, error)
	IsInProject(path string) (bool, error)
}

type paths struct {
	projectRoot  string
	xdgConfig    string
	xdgState     string
	usedFallback bool
}

// New creates a Paths instance rooted at projectRoot. An empty projectRoot
// is resolved from the environment, then git, then the working directory.
func New(projectRoot string) (Paths, error) {
	p := &paths{}

	if projectRoot == "" {
		root, usedFallback, err := findProjectRoot()
		if err != nil {
			return nil, err
		}
		p.projectRoot = root
		p.usedFallback = usedFallback
	} else {
		p.projectRoot = expandHome(projectRoot)
	}

	absRoot, err := filepath.Abs(p.projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.projectRoot = absRoot

	p.setupXDGDirs()
	return p, nil
}

func (p *paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		p.xdgConfig = filepath.Join(base, AppDirName)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		p.xdgState = filepath.Join(base, AppDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}
}

// findProjectRoot returns the resolved root and whether the working
// directory was used as a fallback.
func findProjectRoot() (string, bool, error) {
	if root := os.Getenv(EnvProject); root != "" {
		return expandHome(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

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

// ExpandHome expands a leading ~ in path
func ExpandHome(path string) string {
	return expandHome(path)
}

// ProjectRoot returns the absolute project root
func (p *paths) ProjectRoot() string {
	return p.projectRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// ConfigDir returns the XDG config directory for confname
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for confname
func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}

func (p *paths) ProjectConfigPath() string {
	return filepath.Join(p.projectRoot, ProjectConfigFile)
}

// ProfilesPath resolves the configured profiles file. Relative paths are
// taken from the project root and an empty value means the default.
func (p *paths) ProfilesPath(configured string) string {
	if configured == "" {
		configured = DefaultProfilesFile
	}
	configured = expandHome(configured)
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Join(p.projectRoot, configured)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath expands home, makes the path absolute and cleans it
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}
	return filepath.Clean(abs), nil
}

// IsInProject checks if a path is within the project root
func (p *paths) IsInProject(path string) (bool, error) {
	normalized, err := p.NormalizePath(path)
	if err != nil {
		return false, err
	}

	rel, err := filepath.Rel(p.projectRoot, normalized)
	if err != nil {
		return false, nil
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}
