// Package paths provides path handling for residue.
//
// Uninstall records carry loosely typed paths: mixed separators, trailing
// backslashes, surrounding quotes and unexpanded %VARIABLES%. Everything that
// compares paths goes through this package so that "C:\Apps\Foo" and
// "c:/apps/foo/" are treated as the same location.
//
// It also resolves the symbolic well-known folders (start menu programs,
// desktops, the OS directory) to concrete paths for the current user, and
// locates residue's own config file under the XDG base directories.
package paths
