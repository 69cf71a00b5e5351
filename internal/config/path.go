// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}

// DefaultSessionPath returns the default location of the session
// database, honoring XDG_DATA_HOME when set.
func DefaultSessionPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "krishi", "krishi.db")
	}
	return ExpandPath("~/.local/share/krishi/krishi.db")
}

// DefaultReportDir returns the directory where saved recommendation
// reports are written, honoring XDG_DATA_HOME when set.
func DefaultReportDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "krishi", "reports")
	}
	return ExpandPath("~/.local/share/krishi/reports")
}
