package testutil

import (
	"os"
	"path/filepath"

	"src.3code.sh/pkg/env"
	"src.3code.sh/pkg/must"
)

// TempDirer wraps the TempDir method of testing.TB.
type TempDirer interface {
	Cleanuper
	TempDir() string
}

// TempDir returns a temporary directory for the duration of a test, with
// symlinks in its path resolved.
func TempDir(c TempDirer) string {
	return must.OK1(filepath.EvalSymlinks(c.TempDir()))
}

// InTempDir creates a temporary directory and changes the working directory
// into it for the duration of a test. It returns the directory.
func InTempDir(c TempDirer) string {
	dir := TempDir(c)
	old := must.OK1(os.Getwd())
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(old) })
	return dir
}

// TempHome points $HOME, $XDG_CONFIG_HOME and $XDG_STATE_HOME into a fresh
// temporary directory for the duration of a test, so that code looking for
// per-user files does not see the real ones. It returns the home directory.
func TempHome(c TempDirer) string {
	home := TempDir(c)
	Setenv(c, env.HOME, home)
	Setenv(c, env.XDG_CONFIG_HOME, filepath.Join(home, ".config"))
	Setenv(c, env.XDG_STATE_HOME, filepath.Join(home, ".local", "state"))
	return home
}

// Dir describes the content of a directory: each key is a file name
// relative to the directory and each value the file's content.
type Dir map[string]string

// ApplyDir creates the files described by dir under the working directory.
func ApplyDir(dir Dir) {
	for name, content := range dir {
		must.WriteFile(name, content)
	}
}
