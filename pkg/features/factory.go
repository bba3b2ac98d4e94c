package features

import (
	"time"

	"github.com/arthur-debert/residue/pkg/logging"
	"github.com/arthur-debert/residue/pkg/query"
	"github.com/arthur-debert/residue/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single feature enumeration
const DefaultTimeout = 40 * time.Second

// MinimumVersion is Windows 7; older systems have no usable feature provider
var MinimumVersion = types.OSVersion{Major: 6, Minor: 1}

// Factory produces uninstall entries for enabled OS features
type Factory struct {
	enumerator types.FeatureEnumerator
	commands   types.CommandBuilder
	version    types.OSVersionProvider
	timeout    time.Duration
	minVersion types.OSVersion
	machine    types.MachineType
	logger     zerolog.Logger
}

// Option configures a Factory
type Option func(*Factory)

// WithTimeout overrides DefaultTimeout
func WithTimeout(d time.Duration) Option {
	return func(f *Factory) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithMinimumVersion overrides MinimumVersion
func WithMinimumVersion(v types.OSVersion) Option {
	return func(f *Factory) { f.minVersion = v }
}

// WithMachine overrides the process bitness reported on entries
func WithMachine(m types.MachineType) Option {
	return func(f *Factory) { f.machine = m }
}

// NewFactory creates a feature factory
func NewFactory(enumerator types.FeatureEnumerator, commands types.CommandBuilder, version types.OSVersionProvider, opts ...Option) *Factory {
	f := &Factory{
		enumerator: enumerator,
		commands:   commands,
		version:    version,
		timeout:    DefaultTimeout,
		minVersion: MinimumVersion,
		machine:    types.CurrentProcessMachine(),
		logger:     logging.GetLogger("features"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Entries enumerates enabled features. Every call runs a fresh query. A
// failed or hung query is returned as ErrQueryFailed or ErrQueryTimedOut.
func (f *Factory) Entries() ([]types.UninstallEntry, error) {
	v, err := f.version.Version()
	if err != nil {
		f.logger.Warn().Err(err).Msg("Cannot determine OS version, skipping OS features")
		return nil, nil
	}
	if !v.AtLeast(f.minVersion) {
		f.logger.Debug().
			Uint32("major", v.Major).
			Uint32("minor", v.Minor).
			Msg("OS version below feature baseline, skipping OS features")
		return nil, nil
	}

	records, err := query.Run("windows feature query", f.timeout, f.enumerator.Features)
	if err != nil {
		return nil, err
	}

	entries := Adapt(records, f.commands, f.machine)
	f.logger.Info().Int("records", len(records)).Int("enabled", len(entries)).Msg("OS features collected")
	return entries, nil
}
