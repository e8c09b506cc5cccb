package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"gopkg.in/yaml.v3"
)

// Config is the content of the configuration file.
type Config struct {
	// Prompt is shown before reading each line in interactive mode, if the
	// input is a terminal.
	Prompt string `yaml:"prompt"`
	// Banner is shown once when an interactive session starts, if the input
	// is a terminal.
	Banner string `yaml:"banner"`
	// History controls whether lines entered interactively are recorded.
	History bool `yaml:"history"`
	// DB is the path of the history database. If empty, DBPath is used.
	DB string `yaml:"db"`
	// Encoding is the output encoding of the write function.
	Encoding string `yaml:"encoding"`
}

// DefaultConfig returns the configuration used when there is no
// configuration file. Keys missing from the file also take these values.
func DefaultConfig() *Config {
	return &Config{
		Prompt:   "=> ",
		Banner:   "Welcome to 3code.",
		History:  true,
		Encoding: "utf-8",
	}
}

// LoadConfig reads the configuration file at path. A missing file, or an
// empty path, is not an error; the default configuration is returned in that
// case. Unknown keys are errors.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Println("no config file at", path)
			return cfg, nil
		}
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("cannot parse config file %s: %w", path, err)
	}
	logger.Println("loaded config", repr.String(cfg))
	return cfg, nil
}
