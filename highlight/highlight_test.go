package highlight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleExists(t *testing.T) {
	require.True(t, StyleExists("github"))
	require.True(t, StyleExists("dracula"))
	require.True(t, StyleExists("Dracula"))
	require.False(t, StyleExists("nope"))
	require.False(t, StyleExists(""))
}

func TestLanguageExists(t *testing.T) {
	require.True(t, LanguageExists("bash"))
	require.True(t, LanguageExists("json"))
	require.True(t, LanguageExists("go"))
	require.False(t, LanguageExists("notalanguage"))
}

func TestConfigIsZero(t *testing.T) {
	require.True(t, Config{}.IsZero())
	require.False(t, Config{DarkTheme: "dracula"}.IsZero())
	require.False(t, Config{AdditionalLanguages: []string{"bash"}}.IsZero())
}
