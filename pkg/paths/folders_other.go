//go:build !windows

package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/residue/pkg/errors"
	"github.com/arthur-debert/residue/pkg/types"
)

// Outside Windows the folders are derived from the environment a Windows
// profile would export (for example under Wine), so the same layout applies.
func hostFolderPath(folder types.KnownFolder) (string, error) {
	switch folder {
	case types.FolderPrograms:
		return underEnv("APPDATA", "Microsoft", "Windows", "Start Menu", "Programs"), nil
	case types.FolderCommonPrograms:
		return underEnv("ProgramData", "Microsoft", "Windows", "Start Menu", "Programs"), nil
	case types.FolderDesktop:
		if p := underEnv("USERPROFILE", "Desktop"); p != "" {
			return p, nil
		}
		return xdg.UserDirs.Desktop, nil
	case types.FolderCommonDesktop:
		return underEnv("PUBLIC", "Desktop"), nil
	case types.FolderWindows:
		if p := os.Getenv("SystemRoot"); p != "" {
			return p, nil
		}
		return os.Getenv("windir"), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown folder %s", folder)
	}
}

func underEnv(name string, elem ...string) string {
	base := os.Getenv(name)
	if base == "" {
		return ""
	}
	return filepath.Join(append([]string{base}, elem...)...)
}
