package types

import (
	"fmt"
	"strconv"
	"strings"
)

// UninstallerKind identifies the subsystem an entry was produced from
type UninstallerKind string

const (
	UninstallerKindUnknown        UninstallerKind = "unknown"
	UninstallerKindRegistry       UninstallerKind = "registry"
	UninstallerKindMsiexec        UninstallerKind = "msiexec"
	UninstallerKindStoreApp       UninstallerKind = "store-app"
	UninstallerKindWindowsFeature UninstallerKind = "windows-feature"
)

var uninstallerKinds = []UninstallerKind{
	UninstallerKindUnknown,
	UninstallerKindRegistry,
	UninstallerKindMsiexec,
	UninstallerKindStoreApp,
	UninstallerKindWindowsFeature,
}

func (k UninstallerKind) String() string {
	return string(k)
}

// ParseUninstallerKind accepts kind names case-insensitively. The empty
// string parses as unknown.
func ParseUninstallerKind(s string) (UninstallerKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UninstallerKindUnknown, nil
	}
	for _, k := range uninstallerKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return UninstallerKindUnknown, fmt.Errorf("unknown uninstaller kind %q", s)
}

func (k UninstallerKind) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

func (k *UninstallerKind) UnmarshalText(text []byte) error {
	parsed, err := ParseUninstallerKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MachineType is the architecture view an entry was registered under
type MachineType string

const (
	MachineTypeUnknown MachineType = "unknown"
	MachineTypeX86     MachineType = "x86"
	MachineTypeX64     MachineType = "x64"
)

func (m MachineType) String() string {
	return string(m)
}

// ParseMachineType accepts x86, x64 and their common aliases
func ParseMachineType(s string) (MachineType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown":
		return MachineTypeUnknown, nil
	case "x86", "i386", "386", "32":
		return MachineTypeX86, nil
	case "x64", "amd64", "x86_64", "64":
		return MachineTypeX64, nil
	default:
		return MachineTypeUnknown, fmt.Errorf("unknown machine type %q", s)
	}
}

func (m MachineType) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

func (m *MachineType) UnmarshalText(text []byte) error {
	parsed, err := ParseMachineType(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// CurrentProcessMachine reports the bitness of the running process. Feature
// enumeration reflects the caller's view, not the operating system's.
func CurrentProcessMachine() MachineType {
	if strconv.IntSize == 64 {
		return MachineTypeX64
	}
	return MachineTypeX86
}

// UninstallEntry is the canonical record of one installed, removable unit.
// Entries are produced by factories and treated as immutable afterwards.
type UninstallEntry struct {
	DisplayName          string          `yaml:"display_name" json:"display_name"`
	Comment              string          `yaml:"comment,omitempty" json:"comment,omitempty"`
	InstallLocation      string          `yaml:"install_location,omitempty" json:"install_location,omitempty"`
	UninstallerLocation  string          `yaml:"uninstaller_location,omitempty" json:"uninstaller_location,omitempty"`
	UninstallString      string          `yaml:"uninstall_string,omitempty" json:"uninstall_string,omitempty"`
	QuietUninstallString string          `yaml:"quiet_uninstall_string,omitempty" json:"quiet_uninstall_string,omitempty"`
	ReinstallString      string          `yaml:"reinstall_string,omitempty" json:"reinstall_string,omitempty"`
	Kind                 UninstallerKind `yaml:"kind,omitempty" json:"kind,omitempty"`
	IsValid              bool            `yaml:"is_valid" json:"is_valid"`
	Machine              MachineType     `yaml:"machine,omitempty" json:"machine,omitempty"`
	Publisher            string          `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	RatingID             string          `yaml:"rating_id,omitempty" json:"rating_id,omitempty"`
}

// FeatureRecord is a raw result from the OS feature enumeration subsystem.
// It only lives until it is converted into an UninstallEntry.
type FeatureRecord struct {
	Name        string
	DisplayName string
	Description string
	Enabled     bool
}
