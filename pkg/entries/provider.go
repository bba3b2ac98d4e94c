// Package entries supplies the already-scanned set of installed entries.
// Registry and installer database scanning happen elsewhere; this package
// reads their exported result.
package entries

import (
	"bytes"
	"os"

	"github.com/arthur-debert/residue/pkg/errors"
	"github.com/arthur-debert/residue/pkg/logging"
	"github.com/arthur-debert/residue/pkg/types"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// document is the wrapped form: a top level "entries" key
type document struct {
	Entries []types.UninstallEntry `yaml:"entries"`
}

// FileProvider loads entries from a YAML or JSON file. The file holds either
// a bare list of entries or a mapping with an "entries" key.
type FileProvider struct {
	Fs   afero.Fs
	Path string
}

// NewFileProvider creates a provider reading path from fs
func NewFileProvider(fs afero.Fs, path string) *FileProvider {
	return &FileProvider{Fs: fs, Path: path}
}

// Entries implements types.EntryProvider
func (p *FileProvider) Entries() ([]types.UninstallEntry, error) {
	logger := logging.GetLogger("entries")

	data, err := afero.ReadFile(p.Fs, p.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "installed entries file %s not found", p.Path).
				WithDetail("path", p.Path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read installed entries file %s", p.Path).
			WithDetail("path", p.Path)
	}

	list, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse installed entries file %s", p.Path).
			WithDetail("path", p.Path)
	}

	logger.Debug().Str("path", p.Path).Int("count", len(list)).Msg("Installed entries loaded")
	return list, nil
}

// Parse decodes entries from YAML or JSON
func Parse(data []byte) ([]types.UninstallEntry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	if root.Content[0].Kind == yaml.MappingNode {
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Entries, nil
	}

	var list []types.UninstallEntry
	if err := root.Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}
