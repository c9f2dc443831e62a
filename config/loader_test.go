package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nemesisdb/siteconf/parser/metadecoders"
	"github.com/nemesisdb/siteconf/siteconfig"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// The same site in every supported format.
var siteFiles = map[string]string{
	"site.toml": `
title = "NemesisDB"
baseUrl = "/"
organizationName = "nemesisdb"
projectName = "docs-deploy"
locales = ["en", "fr"]
defaultLocale = "en"

[colorMode]
defaultMode = "dark"
respectPrefersColorScheme = true

[[navItems]]
kind = "sidebarRef"
label = "API"
targetId = "apiSidebar"

[[navItems]]
kind = "externalLink"
label = "GitHub"
href = "https://github.com/nemesisdb"
position = "right"

[[footerGroups]]
title = "Community"

[[footerGroups.links]]
label = "LinkedIn"
href = "https://www.linkedin.com/company/nemesisdb"

[[footerGroups.links]]
label = "Twitter"
href = "https://twitter.com/nmsisdb"
`,
	"site.yaml": `
title: NemesisDB
baseUrl: /
organizationName: nemesisdb
projectName: docs-deploy
locales: [en, fr]
defaultLocale: en
colorMode:
  defaultMode: dark
  respectPrefersColorScheme: true
navItems:
  - kind: sidebarRef
    label: API
    targetId: apiSidebar
  - kind: externalLink
    label: GitHub
    href: https://github.com/nemesisdb
    position: right
footerGroups:
  - title: Community
    links:
      - label: LinkedIn
        href: https://www.linkedin.com/company/nemesisdb
      - label: Twitter
        href: https://twitter.com/nmsisdb
`,
	"site.json": `{
  "title": "NemesisDB",
  "baseUrl": "/",
  "organizationName": "nemesisdb",
  "projectName": "docs-deploy",
  "locales": ["en", "fr"],
  "defaultLocale": "en",
  "colorMode": {"defaultMode": "dark", "respectPrefersColorScheme": true},
  "navItems": [
    {"kind": "sidebarRef", "label": "API", "targetId": "apiSidebar"},
    {"kind": "externalLink", "label": "GitHub", "href": "https://github.com/nemesisdb", "position": "right"}
  ],
  "footerGroups": [
    {
      "title": "Community",
      "links": [
        {"label": "LinkedIn", "href": "https://www.linkedin.com/company/nemesisdb"},
        {"label": "Twitter", "href": "https://twitter.com/nmsisdb"}
      ]
    }
  ]
}`,
	"site.jsonc": `{
  // Shared by all profiles.
  "title": "NemesisDB",
  "baseUrl": "/",
  "organizationName": "nemesisdb",
  "projectName": "docs-deploy",
  "locales": ["en", "fr",],
  "defaultLocale": "en",
  "colorMode": {"defaultMode": "dark", "respectPrefersColorScheme": true},
  /* Navbar, left to right. */
  "navItems": [
    {"kind": "sidebarRef", "label": "API", "targetId": "apiSidebar"},
    {"kind": "externalLink", "label": "GitHub", "href": "https://github.com/nemesisdb", "position": "right"},
  ],
  "footerGroups": [
    {
      "title": "Community",
      "links": [
        {"label": "LinkedIn", "href": "https://www.linkedin.com/company/nemesisdb"},
        {"label": "Twitter", "href": "https://twitter.com/nmsisdb"},
      ],
    },
  ],
}`,
	"site.xml": `<site>
  <title>NemesisDB</title>
  <baseUrl>/</baseUrl>
  <organizationName>nemesisdb</organizationName>
  <projectName>docs-deploy</projectName>
  <locales>en</locales>
  <locales>fr</locales>
  <defaultLocale>en</defaultLocale>
  <colorMode>
    <defaultMode>dark</defaultMode>
    <respectPrefersColorScheme>true</respectPrefersColorScheme>
  </colorMode>
  <navItems>
    <kind>sidebarRef</kind>
    <label>API</label>
    <targetId>apiSidebar</targetId>
  </navItems>
  <navItems>
    <kind>externalLink</kind>
    <label>GitHub</label>
    <href>https://github.com/nemesisdb</href>
    <position>right</position>
  </navItems>
  <footerGroups>
    <title>Community</title>
    <links>
      <label>LinkedIn</label>
      <href>https://www.linkedin.com/company/nemesisdb</href>
    </links>
    <links>
      <label>Twitter</label>
      <href>https://twitter.com/nmsisdb</href>
    </links>
  </footerGroups>
</site>`,
}

func newSiteFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range siteFiles {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("/sites", name), []byte(content), 0o644))
	}
	return fs
}

func TestLoadAllFormats(t *testing.T) {
	l := NewLoader(newSiteFs(t))

	expect, err := l.Load("/sites/site.yaml")
	require.NoError(t, err)
	expected, err := siteconfig.Resolve(expect)
	require.NoError(t, err)

	for name := range siteFiles {
		t.Run(name, func(t *testing.T) {
			p, err := l.Load(filepath.Join("/sites", name))
			require.NoError(t, err)

			c, err := siteconfig.Resolve(p)
			require.NoError(t, err)
			require.Equal(t, expected, c)
			require.Equal(t, []string{"en", "fr"}, c.Locales())
			require.Len(t, c.FooterGroups()[0].Links, 2)
		})
	}
}

func TestLoaderReturnsCopies(t *testing.T) {
	l := NewLoader(newSiteFs(t))

	p1, err := l.Load("/sites/site.toml")
	require.NoError(t, err)
	p1["title"] = "Changed"
	delete(p1, "navitems")

	p2, err := l.Load("/sites/site.toml")
	require.NoError(t, err)
	require.Equal(t, "NemesisDB", p2["title"])
	require.Contains(t, p2, "navitems")

	cfg, err := l.Provider("/sites/site.toml")
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Get("colorMode.defaultMode"))
}

func TestLoaderDecodesOnce(t *testing.T) {
	fs := newSiteFs(t)
	l := NewLoader(fs)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := l.Load("/sites/site.json")
			require.NoError(t, err)
			require.Equal(t, "NemesisDB", p["title"])
		}()
	}
	wg.Wait()

	// Served from the cache from now on.
	require.NoError(t, fs.Remove("/sites/site.json"))
	_, err := l.Load("/sites/site.json")
	require.NoError(t, err)
}

func TestLoaderErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/broken/site.toml", []byte("title = \n"), 0o644))
	l := NewLoader(fs)

	_, err := l.Load("/broken/site.toml")
	var ferr *metadecoders.FileError
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, "/broken/site.toml", ferr.Position.Filename)

	_, err = l.Provider("/missing/site.toml")
	require.Error(t, err)
}

func TestFindConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	write := func(name string) {
		require.NoError(t, afero.WriteFile(fs, name, []byte("title = \"NemesisDB\""), 0o644))
	}

	write("/a/site.yaml")
	write("/a/site.toml")
	write("/a/site.xml")
	write("/a/config.toml")
	require.NoError(t, fs.MkdirAll("/a/site.json", 0o755))

	write("/b/site.yml")
	write("/b/site.jsonc")
	write("/b/site.md")

	write("/c/config.toml")

	for _, test := range []struct {
		dir    string
		expect string
	}{
		{"/a", "/a/site.toml"},
		{"/b", "/b/site.yml"},
	} {
		filename, err := FindConfigFile(fs, test.dir)
		require.NoError(t, err)
		require.Equal(t, filepath.FromSlash(test.expect), filename)
	}

	_, err := FindConfigFile(fs, "/c")
	require.EqualError(t, err, fmt.Sprintf("no site.{toml,yaml,yml,json,jsonc,xml} found in %q", "/c"))

	_, err = FindConfigFile(fs, "/missing")
	require.Error(t, err)
}

func TestGetNumWorkers(t *testing.T) {
	t.Setenv(EnvNumWorkers, "3")
	require.Equal(t, 3, GetNumWorkers())

	t.Setenv(EnvNumWorkers, "-1")
	require.Greater(t, GetNumWorkers(), 0)

	t.Setenv(EnvNumWorkers, "many")
	require.Greater(t, GetNumWorkers(), 0)
}
