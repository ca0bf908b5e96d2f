package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/cinegraph/rsrc-engine/mactext"
)

// Config is the optional TOML configuration file.
type Config struct {
	// Script selects the default text encoding for name and string decoding,
	// as a classic script code (0 = Roman).
	Script int `toml:"script"`

	// Sources lists directories served as flat-namespace fallback sources
	// (files named <TYPE>/<num>).
	Sources []string `toml:"sources"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) selection() mactext.Selection {
	return mactext.Selection{Script: mactext.ScriptCode(c.Script)}
}
