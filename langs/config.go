// Copyright 2018 The Hugo Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langs

import "sort"

// SortedDefaultFirst returns a copy of languages with defaultLang first and
// the others in their configured order.
func SortedDefaultFirst(languages Languages, defaultLang string) Languages {
	sortedDefaultFirst := make(Languages, len(languages))
	copy(sortedDefaultFirst, languages)
	sort.SliceStable(sortedDefaultFirst, func(i, j int) bool {
		li, lj := sortedDefaultFirst[i], sortedDefaultFirst[j]
		if li.Lang == defaultLang {
			return lj.Lang != defaultLang
		}
		return false
	})
	return sortedDefaultFirst
}

// Contains reports whether lang is one of the configured languages.
func (l Languages) Contains(lang string) bool {
	for _, language := range l {
		if language.Lang == lang {
			return true
		}
	}
	return false
}
