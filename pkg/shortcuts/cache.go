package shortcuts

import (
	"github.com/arthur-debert/residue/pkg/types"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
)

// DefaultCacheSize is the number of resolved links kept between passes
const DefaultCacheSize = 1024

type cacheKey struct {
	path    string
	modTime int64
	size    int64
}

// CachingResolver remembers resolved targets for links whose file has not
// changed since the last resolution. Failures are not cached. A single Build
// resolves each link once, so hits only happen when one Builder serves
// several passes, as a long-running caller would do.
type CachingResolver struct {
	fs    afero.Fs
	next  types.LinkResolver
	cache *lru.Cache[cacheKey, string]
}

// NewCachingResolver wraps next with an LRU cache of the given size
func NewCachingResolver(fs afero.Fs, next types.LinkResolver, size int) (*CachingResolver, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, string](size)
	if err != nil {
		return nil, err
	}
	return &CachingResolver{fs: fs, next: next, cache: cache}, nil
}

// Resolve implements types.LinkResolver
func (c *CachingResolver) Resolve(linkPath string) (string, error) {
	info, err := c.fs.Stat(linkPath)
	if err != nil {
		return c.next.Resolve(linkPath)
	}

	key := cacheKey{path: linkPath, modTime: info.ModTime().UnixNano(), size: info.Size()}
	if target, ok := c.cache.Get(key); ok {
		return target, nil
	}

	target, err := c.next.Resolve(linkPath)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, target)
	return target, nil
}

// Len reports the number of cached links
func (c *CachingResolver) Len() int {
	return c.cache.Len()
}
