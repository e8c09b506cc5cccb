package prog

import "flag"

// FlagSet wraps a [flag.FlagSet]. It provides methods for flags shared by more
// than one subprogram, so that each subprogram can register them without
// causing a conflict.
type FlagSet struct {
	*flag.FlagSet
	json   *bool
	config *string
}

// JSON returns a pointer to the value of the -json flag.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output from -buildinfo, -compileonly or -version in JSON")
		fs.json = &json
	}
	return fs.json
}

// Config returns a pointer to the value of the -config flag.
func (fs *FlagSet) Config() *string {
	if fs.config == nil {
		var config string
		fs.StringVar(&config, "config", "",
			"path to the configuration file; defaults to $XDG_CONFIG_HOME/3code/config.yaml")
		fs.config = &config
	}
	return fs.config
}
