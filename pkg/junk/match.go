package junk

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/residue/pkg/paths"
)

// MatchMode selects how a location is looked for inside a shortcut target
type MatchMode string

const (
	// MatchSubstring matches anywhere in the target, ignoring case.
	// "C:\Apps\Foo" matches "C:\Apps\Foo2\foo.exe".
	MatchSubstring MatchMode = "substring"

	// MatchBoundary only accepts matches ending on a path separator or at
	// the end of the target.
	MatchBoundary MatchMode = "boundary"
)

// ParseMatchMode parses a mode name. The empty string selects MatchSubstring.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchBoundary:
		return MatchBoundary, nil
	default:
		return "", fmt.Errorf("unknown match mode %q", s)
	}
}

func (m MatchMode) contains(target, location string) bool {
	if m == MatchBoundary {
		return paths.ContainsBoundary(target, location)
	}
	return paths.ContainsFold(target, location)
}
