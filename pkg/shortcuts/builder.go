package shortcuts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/residue/pkg/errors"
	"github.com/arthur-debert/residue/pkg/logging"
	"github.com/arthur-debert/residue/pkg/paths"
	"github.com/arthur-debert/residue/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultExtension is the file extension of shell links
const DefaultExtension = ".lnk"

type location struct {
	folder    types.KnownFolder
	recursive bool
}

// Start menus are searched recursively, desktops only at the top level.
var wellKnownLocations = []location{
	{folder: types.FolderPrograms, recursive: true},
	{folder: types.FolderCommonPrograms, recursive: true},
	{folder: types.FolderDesktop, recursive: false},
	{folder: types.FolderCommonDesktop, recursive: false},
}

// Builder enumerates and resolves shell links
type Builder struct {
	fs        afero.Fs
	folders   types.KnownFolders
	resolver  types.LinkResolver
	extension string
	logger    zerolog.Logger
}

// Option configures a Builder
type Option func(*Builder)

// WithExtension overrides the link file extension
func WithExtension(ext string) Option {
	return func(b *Builder) {
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		b.extension = ext
	}
}

// NewBuilder creates an inventory builder
func NewBuilder(fs afero.Fs, folders types.KnownFolders, resolver types.LinkResolver, opts ...Option) *Builder {
	b := &Builder{
		fs:        fs,
		folders:   folders,
		resolver:  resolver,
		extension: DefaultExtension,
		logger:    logging.GetLogger("shortcuts"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns the resolved shortcut inventory. The result is ordered by
// location, then by walk order, and is not modified afterwards.
func (b *Builder) Build() []types.Shortcut {
	done := logging.LogOperationStart(b.logger, "build-shortcut-inventory")
	defer done()

	osDir, err := b.folders.Path(types.FolderWindows)
	if err != nil {
		b.logger.Warn().Err(err).Msg("OS directory unknown, system shortcuts will not be filtered")
		osDir = ""
	}

	seen := make(map[string]struct{})
	var inventory []types.Shortcut

	for _, loc := range wellKnownLocations {
		for _, link := range b.linkFiles(loc) {
			key := strings.ToLower(paths.Normalize(link))
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			target, err := b.resolve(link)
			if err != nil {
				b.logger.Debug().
					Err(errors.Wrap(err, errors.ErrResolutionFailed, "failed to resolve shortcut")).
					Str("link", link).
					Msg("Skipping shortcut")
				continue
			}
			if target == "" {
				b.logger.Debug().Str("link", link).Msg("Skipping shortcut with empty target")
				continue
			}
			if osDir != "" && paths.IsSubPath(osDir, target) {
				b.logger.Trace().Str("link", link).Str("target", target).Msg("Skipping system shortcut")
				continue
			}

			inventory = append(inventory, types.Shortcut{LinkPath: link, Target: target})
		}
	}

	b.logger.Info().Int("shortcuts", len(inventory)).Msg("Shortcut inventory built")
	return inventory
}

// resolve isolates resolver panics to the offending link
func (b *Builder) resolve(link string) (target string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolver panic: %v", r)
		}
	}()
	return b.resolver.Resolve(link)
}

// linkFiles lists the links of one location. Any failure drops the whole
// location.
func (b *Builder) linkFiles(loc location) []string {
	dir, err := b.folders.Path(loc.folder)
	if err == nil {
		var files []string
		files, err = b.enumerate(dir, loc.recursive)
		if err == nil {
			b.logger.Debug().Str("folder", string(loc.folder)).Str("dir", dir).Int("links", len(files)).Msg("Enumerated folder")
			return files
		}
	}

	b.logger.Warn().
		Err(errors.Wrapf(err, errors.ErrEnumerationFailed, "failed to enumerate %s", loc.folder)).
		Str("folder", string(loc.folder)).
		Str("dir", dir).
		Msg("Folder contributes no shortcuts")
	return nil
}

func (b *Builder) enumerate(dir string, recursive bool) ([]string, error) {
	var files []string

	if !recursive {
		infos, err := afero.ReadDir(b.fs, dir)
		if err != nil {
			return nil, err
		}
		for _, info := range infos {
			if !info.IsDir() && b.isLink(info.Name()) {
				files = append(files, filepath.Join(dir, info.Name()))
			}
		}
		return files, nil
	}

	err := afero.Walk(b.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && b.isLink(info.Name()) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (b *Builder) isLink(name string) bool {
	return strings.EqualFold(filepath.Ext(name), b.extension)
}
