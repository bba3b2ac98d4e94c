package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/residue/pkg/errors"
	"github.com/arthur-debert/residue/pkg/types"
)

const appDirName = "residue"

// HostFolders resolves well-known folders for the current user. Overrides
// take precedence over the host lookup and may contain %VAR% references.
type HostFolders struct {
	Overrides map[types.KnownFolder]string
}

// NewHostFolders returns a resolver for this machine
func NewHostFolders(overrides map[types.KnownFolder]string) *HostFolders {
	return &HostFolders{Overrides: overrides}
}

// Path implements types.KnownFolders
func (h *HostFolders) Path(folder types.KnownFolder) (string, error) {
	if o, ok := h.Overrides[folder]; ok && o != "" {
		return expandWindowsEnv(expandHome(o)), nil
	}
	p, err := hostFolderPath(folder)
	if err != nil {
		return "", err
	}
	if p == "" {
		return "", errors.Newf(errors.ErrNotFound, "known folder %s is not available on this machine", folder).
			WithDetail("folder", string(folder))
	}
	return p, nil
}

// StaticFolders is a fixed folder table, used by tests and tooling
type StaticFolders map[types.KnownFolder]string

// Path implements types.KnownFolders
func (s StaticFolders) Path(folder types.KnownFolder) (string, error) {
	p, ok := s[folder]
	if !ok || p == "" {
		return "", errors.Newf(errors.ErrNotFound, "known folder %s is not configured", folder).
			WithDetail("folder", string(folder))
	}
	return p, nil
}

// DefaultConfigFile is the user config location under XDG_CONFIG_HOME
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, appDirName, "config.toml")
}
