package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/residue/pkg/errors"
	"github.com/arthur-debert/residue/pkg/junk"
	"github.com/arthur-debert/residue/pkg/types"
)

// Config is the complete residue configuration
type Config struct {
	Query     Query             `koanf:"query"`
	Features  Features          `koanf:"features"`
	Shortcuts Shortcuts         `koanf:"shortcuts"`
	Matching  Matching          `koanf:"matching"`
	Folders   map[string]string `koanf:"folders"`
}

// Query bounds external queries
type Query struct {
	Timeout time.Duration `koanf:"timeout"`
}

// Features configures OS feature enumeration
type Features struct {
	Enabled    bool   `koanf:"enabled"`
	MinVersion string `koanf:"min_version"`
	Dism       string `koanf:"dism"`
}

// Shortcuts configures the shortcut inventory
type Shortcuts struct {
	Extension string `koanf:"extension"`
	CacheSize int    `koanf:"cache_size"`
}

// Matching configures junk correlation
type Matching struct {
	Mode string `koanf:"mode"`
}

var knownFolders = map[string]types.KnownFolder{
	string(types.FolderPrograms):       types.FolderPrograms,
	string(types.FolderCommonPrograms): types.FolderCommonPrograms,
	string(types.FolderDesktop):        types.FolderDesktop,
	string(types.FolderCommonDesktop):  types.FolderCommonDesktop,
	string(types.FolderWindows):        types.FolderWindows,
}

// Validate checks values the loader cannot type check
func (c *Config) Validate() error {
	if c.Query.Timeout <= 0 {
		return errors.Newf(errors.ErrConfigValid, "query.timeout must be positive, got %s", c.Query.Timeout).
			WithDetail("key", "query.timeout")
	}
	if _, err := c.MinimumVersion(); err != nil {
		return err
	}
	if !strings.HasPrefix(c.Shortcuts.Extension, ".") {
		return errors.Newf(errors.ErrConfigValid, "shortcuts.extension must start with a dot, got %q", c.Shortcuts.Extension).
			WithDetail("key", "shortcuts.extension")
	}
	if c.Shortcuts.CacheSize < 0 {
		return errors.Newf(errors.ErrConfigValid, "shortcuts.cache_size cannot be negative, got %d", c.Shortcuts.CacheSize).
			WithDetail("key", "shortcuts.cache_size")
	}
	if _, err := c.MatchMode(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid matching.mode").
			WithDetail("key", "matching.mode")
	}
	if _, err := c.FolderOverrides(); err != nil {
		return err
	}
	return nil
}

// MinimumVersion parses features.min_version ("major.minor")
func (c *Config) MinimumVersion() (types.OSVersion, error) {
	invalid := func() error {
		return errors.Newf(errors.ErrConfigValid, "features.min_version must look like 6.1, got %q", c.Features.MinVersion).
			WithDetail("key", "features.min_version")
	}

	major, minor, ok := strings.Cut(strings.TrimSpace(c.Features.MinVersion), ".")
	if !ok {
		return types.OSVersion{}, invalid()
	}
	ma, err := strconv.ParseUint(major, 10, 32)
	if err != nil {
		return types.OSVersion{}, invalid()
	}
	mi, err := strconv.ParseUint(minor, 10, 32)
	if err != nil {
		return types.OSVersion{}, invalid()
	}
	return types.OSVersion{Major: uint32(ma), Minor: uint32(mi)}, nil
}

// MatchMode parses matching.mode
func (c *Config) MatchMode() (junk.MatchMode, error) {
	return junk.ParseMatchMode(c.Matching.Mode)
}

// FolderOverrides converts the folders section, skipping empty values
func (c *Config) FolderOverrides() (map[types.KnownFolder]string, error) {
	out := make(map[types.KnownFolder]string, len(c.Folders))
	for key, dir := range c.Folders {
		folder, ok := knownFolders[strings.ToLower(key)]
		if !ok {
			return nil, errors.Newf(errors.ErrConfigValid, "unknown folder %q in folders section", key).
				WithDetail("key", fmt.Sprintf("folders.%s", key))
		}
		if dir != "" {
			out[folder] = dir
		}
	}
	return out, nil
}
