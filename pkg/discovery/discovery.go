// Package discovery runs one residue discovery pass: it loads the installed
// entries, builds the shortcut inventory once and correlates every target
// against it.
package discovery

import (
	"slices"
	"strings"
	"time"

	"github.com/arthur-debert/residue/pkg/errors"
	"github.com/arthur-debert/residue/pkg/junk"
	"github.com/arthur-debert/residue/pkg/logging"
	"github.com/arthur-debert/residue/pkg/types"
	"github.com/google/uuid"
)

// InventoryBuilder produces the shortcut inventory for a pass
type InventoryBuilder interface {
	Build() []types.Shortcut
}

// Options contains the collaborators and inputs of a pass
type Options struct {
	// Installed supplies the already scanned installed entries (required)
	Installed types.EntryProvider

	// Inventory builds the shortcut inventory (required)
	Inventory InventoryBuilder

	// Features adds OS feature entries to the installed set. Optional.
	Features types.EntryProvider

	// Targets are display names of the uninstalled applications.
	// If empty, every installed entry is a target.
	Targets []string

	// Match configures correlation
	Match junk.Options
}

// Result is the outcome of a pass
type Result struct {
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	Installed []types.UninstallEntry `json:"installed"`
	Shortcuts []types.Shortcut       `json:"shortcuts"`
	Junk      []types.JunkNode       `json:"junk"`

	// FeatureError is set when only the OS feature portion failed
	FeatureError error `json:"-"`
}

// Run executes a pass. A failed installed-entry load or an unknown target
// aborts the pass. A failed feature query only drops the feature entries and
// is reported in Result.FeatureError.
func Run(opts Options) (*Result, error) {
	if opts.Installed == nil || opts.Inventory == nil {
		return nil, errors.New(errors.ErrInvalidInput, "discovery needs an entry provider and an inventory builder")
	}

	result := &Result{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
	}
	logger := logging.GetLogger("discovery").With().Str("pass", result.ID).Logger()
	done := logging.LogOperationStart(logger, "discovery pass")
	defer done()

	installed, err := opts.Installed.Entries()
	if err != nil {
		return nil, err
	}
	if opts.Features != nil {
		featureEntries, err := opts.Features.Entries()
		if err != nil {
			logger.Error().Err(err).Msg("OS features are missing from this pass")
			result.FeatureError = err
		}
		installed = slices.Concat(installed, featureEntries)
	}
	result.Installed = installed

	targets, err := selectTargets(installed, opts.Targets)
	if err != nil {
		return nil, err
	}

	result.Shortcuts = opts.Inventory.Build()
	result.Junk = slices.Collect(junk.FindAllJunk(targets, installed, result.Shortcuts, opts.Match))

	logger.Info().
		Int("installed", len(installed)).
		Int("targets", len(targets)).
		Int("shortcuts", len(result.Shortcuts)).
		Int("junk", len(result.Junk)).
		Msg("Discovery pass finished")
	return result, nil
}

// selectTargets picks entries by display name, ignoring case, in the order
// the names were given. Every name must match at least one entry.
func selectTargets(installed []types.UninstallEntry, names []string) ([]types.UninstallEntry, error) {
	if len(names) == 0 {
		return installed, nil
	}

	var targets []types.UninstallEntry
	for _, name := range names {
		found := false
		for _, e := range installed {
			if strings.EqualFold(e.DisplayName, name) {
				targets = append(targets, e)
				found = true
			}
		}
		if !found {
			return nil, errors.Newf(errors.ErrNotFound, "no installed entry named %q", name).
				WithDetail("target", name)
		}
	}
	return targets, nil
}
