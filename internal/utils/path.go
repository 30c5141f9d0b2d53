package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppDirName is the directory name used under the platform config dir
const AppDirName = "wordlearn"

// PathResolver resolves config and corpus locations relative to the
// executable, the working directory and the user's config dir.
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  filepath.Dir(execPath),
		homeDir:        homeDir,
		configDir:      getConfigDir(homeDir),
	}

	log.Debugf("PathResolver initialized: exec=%s, configDir=%s", execPath, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", AppDirName)
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppDirName)
		}
		return filepath.Join(homeDir, ".config", AppDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppDirName)
	default:
		return filepath.Join(homeDir, "."+AppDirName)
	}
}

// GetConfigPath returns the full path for a config file.
// It falls back to other writable dirs when the config dir is read-only.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if ensureWritableDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename), nil
	}

	fallbackDirs := []string{
		filepath.Join(pr.homeDir, "."+AppDirName),
		filepath.Join(os.TempDir(), AppDirName),
		pr.executableDir,
	}

	for _, dir := range fallbackDirs {
		if ensureWritableDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path, nil
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// ResolveCorpusPath finds a corpus file or dir. Absolute paths are used as
// given; relative ones are tried against the working dir, the executable dir
// and the config dir, in that order. The working dir candidate is returned
// when none exist so the caller can report it.
func (pr *PathResolver) ResolveCorpusPath(userPath string) string {
	if filepath.IsAbs(userPath) {
		return userPath
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, userPath),
	)

	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found corpus at: %s", path)
			return path
		}
		log.Debugf("Corpus candidate not found: %s", path)
	}
	return candidates[0]
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}

// ensureWritableDir creates dir if needed and checks it accepts writes
func ensureWritableDir(dir string) bool {
	if err := EnsureDir(dir); err != nil {
		log.Debugf("Cannot create directory %s: %v", dir, err)
		return false
	}

	testFile := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		log.Debugf("Directory %s is not writable: %v", dir, err)
		return false
	}
	os.Remove(testFile)
	return true
}
