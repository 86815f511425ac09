// Package taskly resolves the per-user application state directory
// where the task document and id counter live.
package taskly

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "taskly"

// StateDir returns the platform-appropriate state directory for
// taskly, creating it if it does not exist yet. An explicit override
// takes precedence over platform conventions.
//
// On Linux the directory follows the XDG state convention
// ($XDG_STATE_HOME/taskly, falling back to ~/.local/state/taskly).
// On macOS it is ~/Library/Application Support/taskly, on Windows
// %LocalAppData%\taskly.
func StateDir(override string) (string, error) {
	dir, err := resolveStateDir(override)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create state directory %s: %w", dir, err)
	}
	return dir, nil
}

func resolveStateDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", appDirName), nil
	case "windows":
		if dir := os.Getenv("LocalAppData"); dir != "" {
			return filepath.Join(dir, appDirName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, "AppData", "Local", appDirName), nil
	default:
		if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
			return filepath.Join(dir, appDirName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, ".local", "state", appDirName), nil
	}
}

// ConfigDir returns the directory searched for the optional config
// file. It is not created when absent.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}
