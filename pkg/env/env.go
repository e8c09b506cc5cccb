// Package env keeps names of environment variables with special significance to
// 3code.
package env

// Environment variables with special significance to 3code.
const (
	HOME            = "HOME"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
	XDG_STATE_HOME  = "XDG_STATE_HOME"
)
