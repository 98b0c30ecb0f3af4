// Package homepath converts paths between their absolute and ~/ forms.
package homepath

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Friendly converts an absolute path to a ~/-based path if it's under the user's home directory.
func Friendly(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir

	if homeDir == "" || !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}

	if absPath == homeDir {
		return "~"
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// Expand resolves a leading ~/ against the user's home directory.
func Expand(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
