package maps

import (
	"fmt"
	"reflect"

	"github.com/nemesisdb/siteconf/types"
	"github.com/spf13/cast"
)

// ToParamsAndPrepare converts in to Params and prepares it for use.
// If in is nil, an empty map is returned.
// The input is deep copied first, so the caller's map is left untouched.
// See PrepareParams.
func ToParamsAndPrepare(in any) (Params, bool) {
	if types.IsNil(in) {
		return Params{}, true
	}
	m, err := ToStringMapE(in)
	if err != nil {
		return nil, false
	}
	p := make(Params, len(m))
	for k, v := range m {
		p[k] = deepCopyMaps(v)
	}
	PrepareParams(p)
	return p, true
}

// deepCopyMaps copies nested maps and slices so PrepareParams never
// rewrites keys in a map owned by the caller.
func deepCopyMaps(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		c := make(map[string]any, len(vv))
		for k, e := range vv {
			c[k] = deepCopyMaps(e)
		}
		return c
	case map[any]any:
		c := make(map[any]any, len(vv))
		for k, e := range vv {
			c[k] = deepCopyMaps(e)
		}
		return c
	case Params:
		c := make(Params, len(vv))
		for k, e := range vv {
			c[k] = deepCopyMaps(e)
		}
		return c
	case []map[string]any:
		c := make([]any, len(vv))
		for i, e := range vv {
			c[i] = deepCopyMaps(e)
		}
		return c
	case []any:
		c := make([]any, len(vv))
		for i, e := range vv {
			c[i] = deepCopyMaps(e)
		}
		return c
	default:
		if m, ok := reflectStringMap(v); ok {
			return deepCopyMaps(m)
		}
		if isNestedSlice(v) {
			s, _ := types.ToSlice(v)
			return deepCopyMaps(s)
		}
		return v
	}
}

// reflectStringMap copies a map of any key and value type, e.g.
// map[string]string or map[string]int, into a map[string]any.
func reflectStringMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[cast.ToString(iter.Key().Interface())] = iter.Value().Interface()
	}
	return m, true
}

// isNestedSlice reports whether v is a slice or array whose elements may
// hold maps, e.g. []map[string]string or [][]any. Slices of scalars such as
// []string are left as they are.
func isNestedSlice(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil || (t.Kind() != reflect.Slice && t.Kind() != reflect.Array) {
		return false
	}
	switch t.Elem().Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Interface:
		return true
	}
	return false
}

// ToStringMapE converts in to map[string]interface{}.
func ToStringMapE(in any) (map[string]any, error) {
	switch vv := in.(type) {
	case Params:
		return vv, nil
	case map[string]string:
		var m = map[string]any{}
		for k, v := range vv {
			m[k] = v
		}
		return m, nil

	default:
		if m, ok := reflectStringMap(in); ok {
			return m, nil
		}
		return cast.ToStringMapE(in)
	}
}

// MustToParamsAndPrepare calls ToParamsAndPrepare and panics if it fails.
func MustToParamsAndPrepare(in any) Params {
	if p, ok := ToParamsAndPrepare(in); ok {
		return p
	}
	panic(fmt.Sprintf("cannot convert %T to maps.Params", in))
}
