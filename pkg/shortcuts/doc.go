// Package shortcuts builds the inventory of shell links found in the
// well-known start menu and desktop folders, resolved to their targets.
//
// Building is fault tolerant per item: a folder that cannot be listed
// contributes no links, and a link that cannot be resolved is dropped. Both
// cases are logged with the underlying cause and never abort the pass. Links
// pointing into the OS directory are shell shortcuts owned by the system and
// are never part of the inventory.
package shortcuts
