package config

import (
	"github.com/pelletier/go-toml/v2"
)

type dumpQuery struct {
	Timeout string `toml:"timeout"`
}

type dumpFeatures struct {
	Enabled    bool   `toml:"enabled"`
	MinVersion string `toml:"min_version"`
	Dism       string `toml:"dism"`
}

type dumpShortcuts struct {
	Extension string `toml:"extension"`
	CacheSize int    `toml:"cache_size"`
}

type dumpMatching struct {
	Mode string `toml:"mode"`
}

type dumpConfig struct {
	Query     dumpQuery         `toml:"query"`
	Features  dumpFeatures      `toml:"features"`
	Shortcuts dumpShortcuts     `toml:"shortcuts"`
	Matching  dumpMatching      `toml:"matching"`
	Folders   map[string]string `toml:"folders"`
}

// Dump renders the effective configuration as TOML. Durations are written
// the way they are read, e.g. "40s".
func Dump(cfg *Config) (string, error) {
	folders := cfg.Folders
	if folders == nil {
		folders = map[string]string{}
	}
	out, err := toml.Marshal(dumpConfig{
		Query:     dumpQuery{Timeout: cfg.Query.Timeout.String()},
		Features:  dumpFeatures(cfg.Features),
		Shortcuts: dumpShortcuts(cfg.Shortcuts),
		Matching:  dumpMatching(cfg.Matching),
		Folders:   folders,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
