package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// ContentResolver treats a link file's content as its target. Memory
// filesystems cannot hold real shell links, so fixtures store the target as
// plain text instead.
type ContentResolver struct {
	FS afero.Fs
}

// Resolve implements types.LinkResolver
func (r ContentResolver) Resolve(linkPath string) (string, error) {
	data, err := afero.ReadFile(r.FS, linkPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// FakeResolver resolves from fixed tables and counts calls
type FakeResolver struct {
	Targets  map[string]string
	Failures map[string]error
	Panics   map[string]bool

	mu    sync.Mutex
	calls map[string]int
}

// Resolve implements types.LinkResolver
func (r *FakeResolver) Resolve(linkPath string) (string, error) {
	r.mu.Lock()
	if r.calls == nil {
		r.calls = make(map[string]int)
	}
	r.calls[linkPath]++
	r.mu.Unlock()

	if r.Panics[linkPath] {
		panic("resolver exploded on " + linkPath)
	}
	if err, ok := r.Failures[linkPath]; ok {
		return "", err
	}
	if target, ok := r.Targets[linkPath]; ok {
		return target, nil
	}
	return "", fmt.Errorf("no target registered for %s", linkPath)
}

// Calls returns how many times linkPath was resolved
func (r *FakeResolver) Calls(linkPath string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[linkPath]
}
