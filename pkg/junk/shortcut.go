package junk

import (
	"iter"

	"github.com/arthur-debert/residue/pkg/logging"
	"github.com/arthur-debert/residue/pkg/paths"
	"github.com/arthur-debert/residue/pkg/types"
	"github.com/rs/zerolog"
)

// Options tune correlation
type Options struct {
	Mode MatchMode
}

// ShortcutJunk finds shortcuts left behind by one uninstalled entry
type ShortcutJunk struct {
	entry  types.UninstallEntry
	others []types.UninstallEntry
	links  []types.Shortcut
	mode   MatchMode
	logger zerolog.Logger
}

// New creates a finder for entry. others are the remaining installed entries
// and must not contain entry itself.
func New(entry types.UninstallEntry, others []types.UninstallEntry, links []types.Shortcut, opts Options) *ShortcutJunk {
	mode := opts.Mode
	if mode == "" {
		mode = MatchSubstring
	}
	return &ShortcutJunk{
		entry:  entry,
		others: others,
		links:  links,
		mode:   mode,
		logger: logging.GetLogger("junk").With().Str("entry", entry.DisplayName).Logger(),
	}
}

// FindJunk yields candidates in inventory order. Each iteration recomputes
// the result from scratch.
func (j *ShortcutJunk) FindJunk() iter.Seq[types.JunkNode] {
	return func(yield func(types.JunkNode) bool) {
		installSafe := j.locationSafe(func(e types.UninstallEntry) string { return e.InstallLocation })
		uninstallerSafe := j.locationSafe(func(e types.UninstallEntry) string { return e.UninstallerLocation })

		for _, link := range j.links {
			var safe bool
			switch {
			case j.matches(link.Target, j.entry.InstallLocation):
				safe = installSafe
			case j.matches(link.Target, j.entry.UninstallerLocation):
				safe = uninstallerSafe
			default:
				continue
			}

			node := j.node(link, safe)
			j.logger.Debug().
				Str("link", link.LinkPath).
				Str("target", link.Target).
				Bool("shared", !safe).
				Msg("Shortcut points into uninstalled application")
			if !yield(node) {
				return
			}
		}
	}
}

func (j *ShortcutJunk) matches(target, location string) bool {
	if location == "" {
		return false
	}
	return j.mode.contains(target, location)
}

// locationSafe reports whether no other entry uses the same location
func (j *ShortcutJunk) locationSafe(location func(types.UninstallEntry) string) bool {
	own := location(j.entry)
	for _, other := range j.others {
		if paths.Equal(own, location(other)) {
			return false
		}
	}
	return true
}

func (j *ShortcutJunk) node(link types.Shortcut, safe bool) types.JunkNode {
	parts := []types.ConfidencePart{types.ConfidenceExplicitConnection}
	if !safe {
		parts = append(parts, types.ConfidenceDirectoryStillUsed)
	}
	dir, name := paths.Split(link.LinkPath)
	return types.JunkNode{
		Directory:       dir,
		Name:            name,
		UninstallerName: j.entry.DisplayName,
		Confidence:      types.NewConfidence(parts...),
	}
}
