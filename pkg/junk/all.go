package junk

import (
	"iter"

	"github.com/arthur-debert/residue/pkg/types"
)

// FindAllJunk runs ShortcutJunk for every target against one shared
// inventory. Each target is compared with installed minus one occurrence of
// itself. Candidates come grouped by target, in target order.
func FindAllJunk(targets, installed []types.UninstallEntry, links []types.Shortcut, opts Options) iter.Seq[types.JunkNode] {
	return func(yield func(types.JunkNode) bool) {
		for _, target := range targets {
			finder := New(target, Without(installed, target), links, opts)
			for node := range finder.FindJunk() {
				if !yield(node) {
					return
				}
			}
		}
	}
}

// Without returns a copy of entries with the first entry equal to e removed
func Without(entries []types.UninstallEntry, e types.UninstallEntry) []types.UninstallEntry {
	out := make([]types.UninstallEntry, 0, len(entries))
	removed := false
	for _, candidate := range entries {
		if !removed && candidate == e {
			removed = true
			continue
		}
		out = append(out, candidate)
	}
	return out
}
