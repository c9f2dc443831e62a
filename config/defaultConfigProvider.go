package config

import (
	"strings"
	"sync"

	"github.com/nemesisdb/siteconf/common/maps"
)

// New creates an empty Provider.
func New() Provider {
	return NewFrom(make(maps.Params))
}

// NewFrom creates a Provider backed by params, which must have lower case
// keys, e.g. the result of maps.ToParamsAndPrepare. params is not copied.
func NewFrom(params maps.Params) Provider {
	return &paramsProvider{root: params}
}

// paramsProvider is a Provider over a single maps.Params tree.
// It is safe for concurrent use.
type paramsProvider struct {
	mu   sync.RWMutex
	root maps.Params
}

func (c *paramsProvider) Get(key string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if key == "" {
		return c.root
	}
	m, name := c.lookup(key, false)
	if m == nil {
		return nil
	}
	return m[name]
}

func (c *paramsProvider) GetParams(key string) maps.Params {
	p, _ := c.Get(key).(maps.Params)
	return p
}

// IsSet reports whether key is present, even with a nil value.
func (c *paramsProvider) IsSet(key string) bool {
	if key == "" {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, name := c.lookup(key, false)
	if m == nil {
		return false
	}
	_, found := m[name]
	return found
}

// Set stores value at key, creating the maps on the way. Maps are stored
// as prepared copies, and a map set over a map is merged into it. The
// empty key merges a map into the root.
func (c *paramsProvider) Set(key string, value any) {
	value = prepare(value)

	c.mu.Lock()
	defer c.mu.Unlock()

	if key == "" {
		if p, ok := value.(maps.Params); ok {
			c.root.Set(p)
		}
		return
	}

	m, name := c.lookup(key, true)
	if m == nil {
		return
	}
	if p, ok := value.(maps.Params); ok {
		if existing, ok := m[name].(maps.Params); ok {
			existing.Set(p)
			return
		}
	}
	m[name] = value
}

// SetDefaults sets the top level keys of params that are not set yet.
func (c *paramsProvider) SetDefaults(params maps.Params) {
	defaults := maps.MustToParamsAndPrepare(params)

	c.mu.Lock()
	defer c.mu.Unlock()

	for k, v := range defaults {
		if _, found := c.root[k]; !found {
			c.root[k] = v
		}
	}
}

// lookup walks the dotted key down from the root and returns the map that
// holds its last segment. With create, missing maps are added on the way.
// It returns nil if a segment on the way is not a map.
func (c *paramsProvider) lookup(key string, create bool) (maps.Params, string) {
	segments := strings.Split(strings.ToLower(key), ".")
	m := c.root
	for _, s := range segments[:len(segments)-1] {
		v, found := m[s]
		if !found {
			if !create {
				return nil, ""
			}
			v = make(maps.Params)
			m[s] = v
		}
		next, ok := v.(maps.Params)
		if !ok {
			return nil, ""
		}
		m = next
	}
	return m, segments[len(segments)-1]
}

func prepare(v any) any {
	switch v.(type) {
	case maps.Params, map[string]any, map[any]any, map[string]string:
		return maps.MustToParamsAndPrepare(v)
	}
	return v
}
