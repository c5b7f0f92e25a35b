package relevance

import (
	"path/filepath"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/callsift/callsift/internal/cache"
)

// Loader loads relevance tables with caching. Parsed tables are immutable,
// so one instance is shared by every scoring run that names the same path.
// Concurrent first loads of a path are collapsed into a single read, which
// gives the once-only initialization the shared table needs.
type Loader struct {
	cache cache.Cache
	group singleflight.Group
	ttl   time.Duration
	comma rune
}

// NewLoader creates a loader. A nil cache disables caching; every call then
// reads the file.
func NewLoader(c cache.Cache, ttl time.Duration, comma rune) *Loader {
	return &Loader{cache: c, ttl: ttl, comma: comma}
}

// Load returns the table for a path, from cache when possible.
func (l *Loader) Load(path string) (*Table, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if l.cache == nil {
		return Load(abs, l.comma)
	}

	key := cache.Key(abs)
	if v, ok := l.cache.Get(key); ok {
		return v.(*Table), nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		table, err := Load(abs, l.comma)
		if err != nil {
			return nil, err
		}
		l.cache.Set(key, table, l.ttl)
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table), nil
}

// Invalidate drops a cached table, forcing the next Load to reread it.
func (l *Loader) Invalidate(path string) {
	if l.cache == nil {
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	l.cache.Delete(cache.Key(abs))
}
