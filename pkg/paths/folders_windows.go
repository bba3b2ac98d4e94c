//go:build windows

package paths

import (
	"github.com/arthur-debert/residue/pkg/errors"
	"github.com/arthur-debert/residue/pkg/types"
	"golang.org/x/sys/windows"
)

var folderIDs = map[types.KnownFolder]*windows.KNOWNFOLDERID{
	types.FolderPrograms:       windows.FOLDERID_Programs,
	types.FolderCommonPrograms: windows.FOLDERID_CommonPrograms,
	types.FolderDesktop:        windows.FOLDERID_Desktop,
	types.FolderCommonDesktop:  windows.FOLDERID_PublicDesktop,
	types.FolderWindows:        windows.FOLDERID_Windows,
}

func hostFolderPath(folder types.KnownFolder) (string, error) {
	id, ok := folderIDs[folder]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown folder %s", folder)
	}
	p, err := windows.KnownFolderPath(id, 0)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound, "failed to resolve known folder %s", folder).
			WithDetail("folder", string(folder))
	}
	return p, nil
}
