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

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language is one locale a site is published in.
type Language struct {
	// The locale code as written in the site config, e.g. "en" or "zh-Hans".
	Lang string

	tag language.Tag
}

// NewLanguage creates a new language from a BCP 47 locale code.
func NewLanguage(lang string) (*Language, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", lang, err)
	}
	return &Language{Lang: lang, tag: tag}, nil
}

func (l *Language) String() string {
	return l.Lang
}

// HTMLLang is the canonical form of the locale, suitable for the html lang
// attribute, e.g. "zh-hans" becomes "zh-Hans".
func (l *Language) HTMLLang() string {
	return l.tag.String()
}

// Languages is an ordered list of languages.
type Languages []*Language

// Codes returns the locale codes in order.
func (l Languages) Codes() []string {
	codes := make([]string, len(l))
	for i, lang := range l {
		codes[i] = lang.Lang
	}
	return codes
}

func (l Languages) AsSet() map[string]bool {
	m := make(map[string]bool)
	for _, lang := range l {
		m[lang.Lang] = true
	}

	return m
}

func (l Languages) AsOrdinalSet() map[string]int {
	m := make(map[string]int)
	for i, lang := range l {
		m[lang.Lang] = i
	}

	return m
}

// IsMultilingual reports whether there is more than one language.
func (l Languages) IsMultilingual() bool {
	return len(l) > 1
}
