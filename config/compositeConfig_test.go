package config

import (
	"testing"

	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/stretchr/testify/require"
)

func TestCompositeConfig(t *testing.T) {
	base := NewFrom(maps.Params{
		"title":   "NemesisDB",
		"baseurl": "/",
		"logo": maps.Params{
			"alt": "NemesisDB Logo",
			"src": "img/logo.png",
		},
		"locales": []any{"en"},
	})
	layer := NewFrom(maps.Params{
		"title":   "NemessiDB",
		"baseurl": "/docs-deploy/",
		"logo": maps.Params{
			"src": "img/logo.svg",
		},
	})

	cfg := NewCompositeConfig(base, layer)

	require.Equal(t, "NemessiDB", cfg.Get("title"))
	require.Equal(t, "/docs-deploy/", cfg.Get("baseUrl"))
	require.Equal(t, []any{"en"}, cfg.Get("locales"))
	require.Equal(t, maps.Params{"alt": "NemesisDB Logo", "src": "img/logo.svg"}, cfg.GetParams("logo"))
	require.Equal(t, "img/logo.svg", cfg.Get("logo.src"))
	require.Equal(t, "NemesisDB Logo", cfg.Get("logo.alt"))
	require.True(t, cfg.IsSet("locales"))
	require.False(t, cfg.IsSet("tagline"))

	// The merged map is a copy.
	cfg.GetParams("logo")["src"] = "changed"
	require.Equal(t, "img/logo.png", base.Get("logo.src"))
	require.Equal(t, "img/logo.svg", layer.Get("logo.src"))

	// Writes go to the layer.
	cfg.Set("tagline", "A fast key value store")
	require.True(t, layer.IsSet("tagline"))
	require.False(t, base.IsSet("tagline"))
}

func TestCompositeConfigSetDefaults(t *testing.T) {
	base := NewFrom(maps.Params{"footerstyle": "light"})
	layer := NewFrom(maps.Params{"title": "NemessiDB"})
	cfg := NewCompositeConfig(base, layer)

	cfg.SetDefaults(maps.Params{
		"title":       "Default",
		"footerStyle": "dark",
		"favicon":     "img/favicon.ico",
	})

	require.Equal(t, "NemessiDB", cfg.Get("title"))
	require.Equal(t, "light", cfg.Get("footerStyle"))
	require.Equal(t, "img/favicon.ico", cfg.Get("favicon"))

	// A default for a key the base sets does not mask it from the layer.
	require.False(t, layer.IsSet("footerstyle"))
	require.True(t, layer.IsSet("favicon"))
	require.False(t, base.IsSet("favicon"))
}

func TestCompositeConfigLayerReplacesNonMap(t *testing.T) {
	base := NewFrom(maps.Params{"colormode": "dark"})
	layer := NewFrom(maps.Params{"colormode": maps.Params{"defaultmode": "light"}})

	cfg := NewCompositeConfig(base, layer)
	require.Equal(t, maps.Params{"defaultmode": "light"}, cfg.Get("colorMode"))

	cfg = NewCompositeConfig(layer, base)
	require.Equal(t, "dark", cfg.Get("colorMode"))
}
