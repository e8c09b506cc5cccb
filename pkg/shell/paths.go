package shell

import (
	"os"
	"path/filepath"

	"src.3code.sh/pkg/env"
)

// RCPath returns the path of the RC file, evaluated before the first prompt in
// interactive mode.
func RCPath() (string, error) {
	return inDir(env.XDG_CONFIG_HOME, ".config", "rc.3c")
}

// ConfigPath returns the path of the configuration file.
func ConfigPath() (string, error) {
	return inDir(env.XDG_CONFIG_HOME, ".config", "config.yaml")
}

// DBPath returns the path of the history database.
func DBPath() (string, error) {
	return inDir(env.XDG_STATE_HOME, filepath.Join(".local", "state"), "history.db")
}

// Returns $xdgVar/3code/name, or ~/fallback/3code/name if $xdgVar is not set.
func inDir(xdgVar, fallback, name string) (string, error) {
	if dir := os.Getenv(xdgVar); dir != "" {
		return filepath.Join(dir, "3code", name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, "3code", name), nil
}
