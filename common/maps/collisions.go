package maps

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/nemesisdb/siteconf/types"
)

// KeyCollision is a group of keys in one map that are equal once lower
// cased, e.g. baseUrl and baseurl. PrepareParams keeps only one of them.
type KeyCollision struct {
	// Path is the dotted path of the first key in Keys, e.g.
	// "footerGroups[0].title".
	Path string

	// Keys as written, sorted.
	Keys []string
}

// FindKeyCollisions walks in and its nested maps and slices and returns
// every KeyCollision, depth first in sorted key order.
func FindKeyCollisions(in any) []KeyCollision {
	var found []KeyCollision
	findKeyCollisions("", in, &found)
	return found
}

func findKeyCollisions(path string, v any, found *[]KeyCollision) {
	if types.IsNil(v) {
		return
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Map:
		m, _ := reflectStringMap(v)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		groups := make(map[string][]string)
		for _, k := range keys {
			lk := strings.ToLower(k)
			groups[lk] = append(groups[lk], k)
		}

		for _, k := range keys {
			group := groups[strings.ToLower(k)]
			if len(group) > 1 && group[0] == k {
				*found = append(*found, KeyCollision{Path: joinPath(path, k), Keys: group})
			}
			findKeyCollisions(joinPath(path, k), m[k], found)
		}
	case reflect.Slice, reflect.Array:
		if !isNestedSlice(v) {
			return
		}
		s, _ := types.ToSlice(v)
		for i, e := range s {
			findKeyCollisions(fmt.Sprintf("%s[%d]", path, i), e, found)
		}
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
