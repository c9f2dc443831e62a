package maps

import (
	"sort"
	"strings"

	"github.com/nemesisdb/siteconf/types"
	"github.com/spf13/cast"
)

// Params is a map where all keys are lower case.
type Params map[string]any

// Set overwrites values in p with values in pp for common or new keys.
// This is done recursively.
func (p Params) Set(pp Params) {
	for k, v := range pp {
		vv, found := p[k]
		if !found {
			p[k] = v
		} else {
			switch vvv := vv.(type) {
			case Params:
				if pv, ok := v.(Params); ok {
					vvv.Set(pv)
				} else {
					p[k] = v
				}
			default:
				p[k] = v
			}
		}
	}
}

// Get does a lower case and nested search in this map.
// It will return nil if none found.
func (p Params) Get(indices ...string) any {
	v, _, _ := getNested(p, indices)
	return v
}

// IsSet reports whether the nested key given by indices exists,
// even when its value is nil.
func (p Params) IsSet(indices ...string) bool {
	_, key, m := getNested(p, indices)
	if m == nil {
		return false
	}
	_, found := m[strings.ToLower(key)]
	return found
}

// Keys returns the top level keys of p in no particular order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	return keys
}

// Clone returns a deep copy of p. Nested Params and slices are copied,
// other values are shared.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v any) any {
	switch vv := v.(type) {
	case Params:
		return vv.Clone()
	case []any:
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i] = cloneValue(e)
		}
		return s
	case []string:
		s := make([]string, len(vv))
		copy(s, vv)
		return s
	default:
		return v
	}
}

func getNested(m map[string]any, indices []string) (any, string, map[string]any) {
	if len(indices) == 0 {
		return nil, "", nil
	}

	first := indices[0]
	v, found := m[strings.ToLower(cast.ToString(first))]
	if !found {
		if len(indices) == 1 {
			return nil, first, m
		}
		return nil, "", nil
	}

	if len(indices) == 1 {
		return v, first, m
	}

	switch m2 := v.(type) {
	case Params:
		return getNested(m2, indices[1:])
	case map[string]any:
		return getNested(m2, indices[1:])
	default:
		return nil, "", nil
	}
}

// PrepareParams
// * makes all the keys in the given map lower cased and will do so recursively
// * This will modify the map given.
// * Any nested map[interface{}]interface{}, map[string]interface{}, map[string]string will be converted to Params.
// * Maps inside slices are converted too, so a list of tables decoded from TOML or YAML
// ends up as []any of Params.
// * Keys are visited in sorted order, so when two keys differ only in case
// the result does not depend on map iteration order. See FindKeyCollisions.
func PrepareParams(m Params) {
	keys := m.Keys()
	sort.Strings(keys)
	for _, k := range keys {
		v := m[k]
		var retyped bool
		lKey := strings.ToLower(k)
		if nv, ok := prepareValue(v); ok {
			v = nv
			retyped = true
		}

		if retyped || k != lKey {
			delete(m, k)
			m[lKey] = v
		}
	}
}

func prepareValue(v any) (any, bool) {
	switch vv := v.(type) {
	case Params:
		PrepareParams(vv)
		return vv, true
	case map[any]any:
		var p Params = cast.ToStringMap(v)
		PrepareParams(p)
		return p, true
	case map[string]any:
		var p Params = vv
		PrepareParams(p)
		return p, true
	case map[string]string:
		p := make(Params)
		for k, v := range vv {
			p[k] = v
		}
		PrepareParams(p)
		return p, true
	case []map[string]any:
		s := make([]any, len(vv))
		for i, e := range vv {
			p := Params(e)
			PrepareParams(p)
			s[i] = p
		}
		return s, true
	case []any:
		for i, e := range vv {
			if ne, ok := prepareValue(e); ok {
				vv[i] = ne
			}
		}
		return vv, true
	}
	if m, ok := reflectStringMap(v); ok {
		p := Params(m)
		PrepareParams(p)
		return p, true
	}
	if isNestedSlice(v) {
		s, _ := types.ToSlice(v)
		for i, e := range s {
			if ne, ok := prepareValue(e); ok {
				s[i] = ne
			}
		}
		return s, true
	}
	return v, false
}
