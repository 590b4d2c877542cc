package detect

import (
	"sync"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/singleflight"
)

// Memo caches lookup results of an underlying environment. Lookups are
// idempotent, so caching never changes what callers observe.
type Memo struct {
	env   Environment
	group singleflight.Group

	mu       sync.RWMutex
	has      map[string]bool
	versions map[string]*semver.Version
}

// Memoize wraps env. Wrapping a Memo returns it unchanged.
func Memoize(env Environment) *Memo {
	if m, ok := env.(*Memo); ok {
		return m
	}
	return &Memo{
		env:      env,
		has:      map[string]bool{},
		versions: map[string]*semver.Version{},
	}
}

func (m *Memo) Has(pkg string) bool {
	m.mu.RLock()
	v, ok := m.has[pkg]
	m.mu.RUnlock()
	if ok {
		return v
	}

	res, _, _ := m.group.Do("has:"+pkg, func() (any, error) {
		present := m.env != nil && m.env.Has(pkg)
		m.mu.Lock()
		m.has[pkg] = present
		m.mu.Unlock()
		return present, nil
	})
	return res.(bool)
}

func (m *Memo) Version(pkg string) (*semver.Version, bool) {
	m.mu.RLock()
	v, ok := m.versions[pkg]
	m.mu.RUnlock()
	if ok {
		return v, v != nil
	}

	res, _, _ := m.group.Do("version:"+pkg, func() (any, error) {
		var found *semver.Version
		if m.env != nil {
			if ver, ok := m.env.Version(pkg); ok {
				found = ver
			}
		}
		m.mu.Lock()
		m.versions[pkg] = found
		m.mu.Unlock()
		return found, nil
	})
	ver := res.(*semver.Version)
	return ver, ver != nil
}
