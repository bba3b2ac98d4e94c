// Package testutil provides utilities for testing residue components.
//
// Key components:
//   - TestEnvironment: in-memory machine layout with the well-known folders
//   - FileTree: declarative directory setup
//   - ContentResolver, FakeResolver: link resolvers without real shell links
//   - FakeEnumerator, FakeVersion: feature subsystem stand-ins
//   - BuildShellLink: produces binary .lnk fixtures
//
// All test data should be defined inline, not in external files, and each
// test gets its own memory filesystem.
package testutil
