package common

import (
	"os"
	"path/filepath"

	"github.com/bsthun/gut"
	"gopkg.in/yaml.v3"
)

const configFileName = "glyph.yml"

// Config loads and validates the project configuration from directory,
// unless GLYPH_CONFIG_PATH points somewhere else. Configuration problems
// are unrecoverable for a single-run tool.
func Config[T any](directory string) *T {
	// * resolve configuration path
	path := os.Getenv("GLYPH_CONFIG_PATH")
	if path == "" {
		path = filepath.Join(directory, configFileName)
	}

	// * declare struct
	config := new(T)

	// * read config
	yml, err := os.ReadFile(path)
	if err != nil {
		gut.Fatal("unable to read configuration file", err)
	}

	// * parse config
	if err := yaml.Unmarshal(yml, config); err != nil {
		gut.Fatal("unable to parse configuration file", err)
	}

	// * validate config
	if err := gut.Validate(config); err != nil {
		gut.Fatal("invalid configuration", err)
	}

	return config
}
