// Package highlight checks code highlighting settings against the styles
// and languages the highlighter knows about.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Config is the code block highlighting setup of a site.
type Config struct {
	// Style used in light mode, e.g. "github".
	Theme string
	// Style used in dark mode, e.g. "dracula".
	DarkTheme string
	// Languages highlighted on top of the built-in defaults.
	AdditionalLanguages []string
}

// IsZero reports whether nothing is configured.
func (c Config) IsZero() bool {
	return c.Theme == "" && c.DarkTheme == "" && len(c.AdditionalLanguages) == 0
}

// StyleExists reports whether name is a known highlighting style.
// Docusaurus style names are camel case ("vsDark"), the registry's are lower case.
func StyleExists(name string) bool {
	_, found := styles.Registry[strings.ToLower(name)]
	return found
}

// LanguageExists reports whether there is a lexer for name.
func LanguageExists(name string) bool {
	return lexers.Get(name) != nil
}
