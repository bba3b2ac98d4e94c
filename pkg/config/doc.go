// Package config loads residue configuration.
//
// Sources are layered, later ones winning:
//   - embedded defaults (embedded/defaults.toml)
//   - the user file, $XDG_CONFIG_HOME/residue/config.toml or --config
//   - RESIDUE_* environment variables, e.g. RESIDUE_QUERY_TIMEOUT=10s
package config
