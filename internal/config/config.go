package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"
	"go.uber.org/config"
)

// Reader populates a config struct from layered YAML sources, in order of
// increasing priority: built-in defaults, a file from the standard config
// directory, an explicitly provided path.
type Reader struct {
	basename      string
	explicitPath  string
	defaultConfig string
}

func New(basename string, opts ...Option) *Reader {
	r := &Reader{basename: basename}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reader) Read(cfg interface{}) error {
	copts, err := r.sources()
	if err != nil {
		return err
	}

	provider, err := config.NewYAML(copts...)
	if err != nil {
		return err
	}

	return provider.Get(config.Root).Populate(cfg)
}

func (r *Reader) sources() ([]config.YAMLOption, error) {
	options := make([]config.YAMLOption, 0, 3)

	if r.defaultConfig != "" {
		options = append(options, config.Source(strings.NewReader(r.defaultConfig)))
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	altPath := filepath.Join(home, ".config", r.basename)
	if configHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		altPath = filepath.Join(configHome, r.basename)
	}

	if content, err := os.ReadFile(altPath); err == nil {
		log.Debug().Str("path", altPath).Msg("Using config file")
		options = append(options, config.Source(bytes.NewReader(content)))
	}

	if r.explicitPath != "" {
		absPath, err := homedir.Expand(r.explicitPath)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", absPath).Msg("Using config file")
		options = append(options, config.File(absPath))
	}

	return options, nil
}
