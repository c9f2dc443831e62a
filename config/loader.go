package config

import (
	"sync"

	"github.com/BurntSushi/locker"
	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/spf13/afero"
)

// Loader decodes config files and caches the result per filename, so
// resolving many profiles of the same file concurrently reads and decodes
// it once. Callers get their own copy of the decoded params.
type Loader struct {
	fs afero.Fs

	// Held while a file is being decoded.
	fileLocks *locker.Locker

	mu    sync.RWMutex
	cache map[string]maps.Params
}

// NewLoader creates a Loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{
		fs:        fs,
		fileLocks: locker.NewLocker(),
		cache:     make(map[string]maps.Params),
	}
}

// Load returns the decoded params of filename.
func (l *Loader) Load(filename string) (maps.Params, error) {
	if p, ok := l.cached(filename); ok {
		return p, nil
	}

	l.fileLocks.Lock(filename)
	defer l.fileLocks.Unlock(filename)

	// Another goroutine may have decoded it while we waited.
	if p, ok := l.cached(filename); ok {
		return p, nil
	}

	p, err := loadConfigFromFile(l.fs, filename)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[filename] = p
	l.mu.Unlock()

	return p.Clone(), nil
}

// Provider is Load wrapped in a Provider.
func (l *Loader) Provider(filename string) (Provider, error) {
	p, err := l.Load(filename)
	if err != nil {
		return nil, err
	}
	return NewFrom(p), nil
}

func (l *Loader) cached(filename string) (maps.Params, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.cache[filename]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}
