package types

import (
	"reflect"
)

// ToSlice returns v as a []any if it is a slice or an array of any element type.
func ToSlice(v any) ([]any, bool) {
	switch vv := v.(type) {
	case []any:
		return vv, true
	case []string:
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i] = e
		}
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		s := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s[i] = rv.Index(i).Interface()
		}
		return s, true
	}
	return nil, false
}
