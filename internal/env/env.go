package env

import (
	"os"
	"path/filepath"
)

// (default: %USERPROFILE%/.sysconf on Windows, $HOME/.sysconf on Linux)
var SysconfDir string = GetSysconfDir()

/**
 * Get sysconf directory path
 * @returns {string} Returns sysconf directory path
 */
func GetSysconfDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".sysconf")
}
