package cli

import (
	"github.com/arthur-debert/residue/pkg/config"
	"github.com/arthur-debert/residue/pkg/features"
	"github.com/arthur-debert/residue/pkg/paths"
	"github.com/arthur-debert/residue/pkg/shortcuts"
	"github.com/arthur-debert/residue/pkg/types"
	"github.com/spf13/afero"
)

// Environment holds the machine facing collaborators. Nil fields are
// replaced with host implementations configured from Config.
type Environment struct {
	Fs         afero.Fs
	Folders    types.KnownFolders
	Resolver   types.LinkResolver
	Enumerator types.FeatureEnumerator
	Version    types.OSVersionProvider
}

// HostEnvironment talks to the real machine
func HostEnvironment() Environment {
	return Environment{Fs: afero.NewOsFs()}
}

type app struct {
	env        Environment
	cfg        *config.Config
	verbosity  int
	configPath string
}

func (a *app) folders() (types.KnownFolders, error) {
	if a.env.Folders != nil {
		return a.env.Folders, nil
	}
	overrides, err := a.cfg.FolderOverrides()
	if err != nil {
		return nil, err
	}
	return paths.NewHostFolders(overrides), nil
}

func (a *app) inventory() (*shortcuts.Builder, error) {
	folders, err := a.folders()
	if err != nil {
		return nil, err
	}

	// one pass per process; the cache only pays off for embedders that keep
	// the Builder across passes
	resolver := a.env.Resolver
	if resolver == nil {
		resolver, err = shortcuts.NewCachingResolver(a.env.Fs, shortcuts.NewLnkResolver(a.env.Fs), a.cfg.Shortcuts.CacheSize)
		if err != nil {
			return nil, err
		}
	}

	return shortcuts.NewBuilder(a.env.Fs, folders, resolver,
		shortcuts.WithExtension(a.cfg.Shortcuts.Extension)), nil
}

func (a *app) featureFactory() (*features.Factory, error) {
	minVersion, err := a.cfg.MinimumVersion()
	if err != nil {
		return nil, err
	}

	var enumerator types.FeatureEnumerator = features.NewCIMEnumerator(nil)
	if a.env.Enumerator != nil {
		enumerator = a.env.Enumerator
	}
	var version types.OSVersionProvider = features.HostVersion{}
	if a.env.Version != nil {
		version = a.env.Version
	}

	return features.NewFactory(enumerator, features.DismCommands{Executable: a.cfg.Features.Dism}, version,
		features.WithTimeout(a.cfg.Query.Timeout),
		features.WithMinimumVersion(minVersion),
	), nil
}
