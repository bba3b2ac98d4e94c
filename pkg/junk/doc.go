// Package junk correlates an uninstalled application with the shortcut
// inventory and proposes the links that pointed into it.
//
// Matching is containment based: a shortcut usually targets an executable
// inside the install directory rather than the directory itself. Every
// candidate carries a confidence set. The explicit connection signal is
// always present, and the directory still used signal is added when another
// installed entry shares the matched location.
//
// Correlation is pure computation over data that was already fetched. The
// inventory is never mutated, so one inventory can serve many targets, from
// many goroutines if the caller wants.
package junk
