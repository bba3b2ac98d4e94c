package types

import "context"

// EntryProvider supplies the already scanned set of installed entries
type EntryProvider interface {
	Entries() ([]UninstallEntry, error)
}

// FeatureEnumerator lists optional OS features. Implementations may hang; the
// context is cancelled when the caller gives up waiting, and implementations
// that spawn processes should tie them to it.
type FeatureEnumerator interface {
	Features(ctx context.Context) ([]FeatureRecord, error)
}

// CommandBuilder formats the command line that removes a feature
type CommandBuilder interface {
	UninstallCommand(feature string, silent bool) string
}

// ReinstallCommandBuilder is implemented by command builders that can also
// format the command restoring a removed feature
type ReinstallCommandBuilder interface {
	EnableCommand(feature string, silent bool) string
}

// LinkResolver resolves a shell link file to its target path
type LinkResolver interface {
	Resolve(linkPath string) (string, error)
}

// KnownFolder is a symbolic well-known directory
type KnownFolder string

const (
	FolderPrograms       KnownFolder = "programs"
	FolderCommonPrograms KnownFolder = "common_programs"
	FolderDesktop        KnownFolder = "desktop"
	FolderCommonDesktop  KnownFolder = "common_desktop"
	FolderWindows        KnownFolder = "windows"
)

// KnownFolders maps symbolic directories to concrete paths on this machine
type KnownFolders interface {
	Path(folder KnownFolder) (string, error)
}

// OSVersion is a major.minor.build operating system version
type OSVersion struct {
	Major uint32
	Minor uint32
	Build uint32
}

// AtLeast compares major and minor components only
func (v OSVersion) AtLeast(min OSVersion) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	return v.Minor >= min.Minor
}

// OSVersionProvider reports the running operating system version
type OSVersionProvider interface {
	Version() (OSVersion, error)
}
