//go:build windows

package features

import (
	"github.com/arthur-debert/residue/pkg/types"
	"golang.org/x/sys/windows"
)

// HostVersion reports the real Windows version, unaffected by manifest
// compatibility shims
type HostVersion struct{}

// Version implements types.OSVersionProvider
func (HostVersion) Version() (types.OSVersion, error) {
	v := windows.RtlGetVersion()
	return types.OSVersion{Major: v.MajorVersion, Minor: v.MinorVersion, Build: v.BuildNumber}, nil
}
