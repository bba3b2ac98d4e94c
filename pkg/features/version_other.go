//go:build !windows

package features

import "github.com/arthur-debert/residue/pkg/types"

// HostVersion reports 0.0 outside Windows, which is below every feature
// baseline
type HostVersion struct{}

// Version implements types.OSVersionProvider
func (HostVersion) Version() (types.OSVersion, error) {
	return types.OSVersion{}, nil
}
