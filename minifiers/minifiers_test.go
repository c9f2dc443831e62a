package minifiers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/nemesisdb/siteconf/config"
	"github.com/stretchr/testify/require"
)

const rawJSON = `{
  "title": "NemesisDB",
  "locales": [
    "en"
  ]
}`

func TestNew(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)
	require.False(t, m.MinifyOutput)

	for _, mediaType := range []string{JSONType, "application/ld+json", "text/json"} {
		var b bytes.Buffer
		require.NoError(t, m.Minify(mediaType, &b, strings.NewReader(rawJSON)))
		require.Equal(t, `{"title":"NemesisDB","locales":["en"]}`, b.String(), mediaType)
	}

	var b bytes.Buffer
	require.NoError(t, m.Minify(XMLType, &b, strings.NewReader("<site>\n  <title>NemesisDB</title>\n</site>")))
	require.Equal(t, "<site><title>NemesisDB</title></site>", b.String())
}

func TestUnknownMediaTypeIsCopied(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, m.Minify("text/plain", &b, strings.NewReader(rawJSON)))
	require.Equal(t, rawJSON, b.String())
}

func TestConfig(t *testing.T) {
	newCfg := func(v any) config.Provider {
		cfg := config.New()
		cfg.Set("minify", v)
		return cfg
	}

	m, err := New(newCfg(true))
	require.NoError(t, err)
	require.True(t, m.MinifyOutput)

	m, err = New(newCfg(map[string]any{"minifyOutput": "true", "disableJSON": true}))
	require.NoError(t, err)
	require.True(t, m.MinifyOutput)

	var b bytes.Buffer
	require.NoError(t, m.Minify(JSONType, &b, strings.NewReader(rawJSON)))
	require.Equal(t, rawJSON, b.String())

	_, err = New(newCfg("yes"))
	require.EqualError(t, err, "minify: expected bool or map, got string")

	_, err = New(config.NewFrom(maps.Params{"minify": maps.Params{"disablejson": "maybe"}}))
	require.Error(t, err)
}
