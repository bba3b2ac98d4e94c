package features

import "github.com/arthur-debert/residue/pkg/types"

const (
	// Publisher is reported for every OS feature
	Publisher = "Microsoft Corporation"

	// RatingIDPrefix keeps feature rating ids stable across runs
	RatingIDPrefix = "WindowsFeature_"
)

// ToUninstallEntry maps an enumerated feature onto the canonical entry shape.
// ReinstallString is only filled when cmds also implements
// types.ReinstallCommandBuilder.
func ToUninstallEntry(rec types.FeatureRecord, cmds types.CommandBuilder, machine types.MachineType) types.UninstallEntry {
	entry := types.UninstallEntry{
		DisplayName:          rec.DisplayName,
		Comment:              rec.Description,
		UninstallString:      cmds.UninstallCommand(rec.Name, false),
		QuietUninstallString: cmds.UninstallCommand(rec.Name, true),
		Kind:                 types.UninstallerKindWindowsFeature,
		Publisher:            Publisher,
		IsValid:              true,
		Machine:              machine,
		RatingID:             RatingIDPrefix + rec.Name,
	}
	if rb, ok := cmds.(types.ReinstallCommandBuilder); ok {
		entry.ReinstallString = rb.EnableCommand(rec.Name, false)
	}
	return entry
}

// Adapt converts the enabled records, preserving order. Disabled features
// are not installed and never become entries.
func Adapt(records []types.FeatureRecord, cmds types.CommandBuilder, machine types.MachineType) []types.UninstallEntry {
	entries := make([]types.UninstallEntry, 0, len(records))
	for _, rec := range records {
		if !rec.Enabled {
			continue
		}
		entries = append(entries, ToUninstallEntry(rec, cmds, machine))
	}
	return entries
}
