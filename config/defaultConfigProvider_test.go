package config

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/stretchr/testify/require"
)

func TestParamsProvider(t *testing.T) {
	t.Run("Set and get", func(t *testing.T) {
		cfg := New()
		var k string
		var v any

		k, v = "title", "NemesisDB"
		cfg.Set(k, v)
		require.Equal(t, v, cfg.Get(k))
		require.Equal(t, v, cfg.Get(strings.ToUpper(k)))

		k, v = "logo", map[string]any{"Src": "img/logo.png", "alt": "NemesisDB Logo"}
		cfg.Set(k, v)
		require.Equal(t, maps.Params{"src": "img/logo.png", "alt": "NemesisDB Logo"}, cfg.Get(k))
		require.Equal(t, "img/logo.png", cfg.Get("logo.src"))
		require.Equal(t, "img/logo.png", cfg.Get("Logo.SRC"))

		// Setting a map merges it into the existing one.
		cfg.Set("logo", maps.Params{"src": "img/logo.svg"})
		require.Equal(t, maps.Params{"src": "img/logo.svg", "alt": "NemesisDB Logo"}, cfg.GetParams("logo"))

		cfg.Set("colorMode.defaultMode", "dark")
		require.Equal(t, "dark", cfg.Get("colormode.defaultmode"))
		require.Equal(t, maps.Params{"defaultmode": "dark"}, cfg.GetParams("colorMode"))

		// A value below a scalar is dropped.
		cfg.Set("title.nested", "x")
		require.Equal(t, "NemesisDB", cfg.Get("title"))
	})

	t.Run("Set copies maps", func(t *testing.T) {
		cfg := New()
		logo := maps.Params{"src": "img/logo.png"}
		cfg.Set("logo", logo)
		logo["src"] = "changed.png"
		require.Equal(t, "img/logo.png", cfg.Get("logo.src"))
	})

	t.Run("Set root", func(t *testing.T) {
		cfg := New()
		cfg.Set("", map[string]any{
			"Title":   "NemesisDB",
			"locales": []any{"en", "fr"},
		})
		require.Equal(t, "NemesisDB", cfg.Get("title"))
		require.Equal(t, []any{"en", "fr"}, cfg.Get("locales"))
		require.Equal(t, cfg.Get(""), cfg.GetParams(""))

		// Only maps can be merged into the root.
		cfg.Set("", "NemesisDB")
		require.Len(t, cfg.GetParams(""), 2)
	})

	t.Run("GetParams", func(t *testing.T) {
		cfg := NewFrom(maps.Params{
			"enableemoji": true,
			"colormode":   maps.Params{"disableswitch": false},
		})
		require.Equal(t, maps.Params{"disableswitch": false}, cfg.GetParams("colorMode"))
		require.Nil(t, cfg.GetParams("enableEmoji"))
		require.Nil(t, cfg.GetParams("nope"))
		require.Nil(t, cfg.GetParams("nope.nested"))
	})

	t.Run("IsSet", func(t *testing.T) {
		cfg := NewFrom(maps.Params{
			"title":     "NemesisDB",
			"tagline":   nil,
			"colormode": maps.Params{"defaultmode": "dark"},
		})
		require.True(t, cfg.IsSet("title"))
		require.True(t, cfg.IsSet("tagline"))
		require.True(t, cfg.IsSet("colorMode.defaultMode"))
		require.False(t, cfg.IsSet("colorMode.disableSwitch"))
		require.False(t, cfg.IsSet("title.nested"))
		require.False(t, cfg.IsSet("logo"))
		require.False(t, cfg.IsSet(""))
	})

	t.Run("SetDefaults", func(t *testing.T) {
		cfg := NewFrom(maps.Params{"title": "NemesisDB"})
		defaults := maps.Params{
			"Title":      "Default",
			"trailSlash": false,
		}
		cfg.SetDefaults(defaults)
		require.Equal(t, "NemesisDB", cfg.Get("title"))
		require.Equal(t, false, cfg.Get("trailslash"))

		// The defaults given are left as is.
		require.Contains(t, defaults, "Title")
	})

	t.Run("Concurrent", func(t *testing.T) {
		cfg := New()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("profile%d.title", i)
				cfg.Set(key, "NemesisDB")
				require.Equal(t, "NemesisDB", cfg.Get(key))
				require.True(t, cfg.IsSet(key))
			}(i)
		}
		wg.Wait()
	})
}
