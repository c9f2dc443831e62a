package publisher

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/bep/clocks"
	"github.com/nemesisdb/siteconf/minifiers"
	"github.com/nemesisdb/siteconf/siteconfig"
	"github.com/nemesisdb/siteconf/sitefs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newSiteConfig(t *testing.T) *siteconfig.SiteConfig {
	t.Helper()
	c, err := siteconfig.Resolve(map[string]any{
		"title":            "NemessiDB",
		"url":              "https://nemesisdb.github.io",
		"baseUrl":          "/docs-deploy/",
		"organizationName": "nemesisdb",
		"projectName":      "docs-deploy",
		"locales":          []string{"en"},
		"copyright":        "Copyright © {year} NemesisDB LTD.",
		"image":            "img/docusaurus-social-card.jpg",
		"routeBasePath":    "/",
	})
	require.NoError(t, err)
	return c
}

func newPublisher(t *testing.T) (DestinationPublisher, afero.Fs) {
	t.Helper()
	mfs := afero.NewMemMapFs()
	fs := sitefs.NewFrom(mfs, "/work", "")
	min, err := minifiers.New(nil)
	require.NoError(t, err)
	return NewDestinationPublisher(fs.PublishDir, min), mfs
}

func TestPublishSite(t *testing.T) {
	p, fs := newPublisher(t)
	c := newSiteConfig(t)
	clock := clocks.Fixed(time.Date(2031, time.June, 15, 12, 0, 0, 0, time.UTC))

	target, err := PublishSite(p, "github-pages", c, clock, false)
	require.NoError(t, err)
	require.Equal(t, "github-pages/site.json", target)

	b, err := afero.ReadFile(fs, "/work/build/github-pages/site.json")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), "{\n  \"profile\": \"github-pages\""), string(b))

	var doc SiteDocument
	require.NoError(t, json.Unmarshal(b, &doc))
	require.Equal(t, "github-pages", doc.Profile)
	require.Equal(t, "https://nemesisdb.github.io/docs-deploy/", doc.SiteURL)
	require.Equal(t, "Copyright © 2031 NemesisDB LTD.", doc.Copyright)
	require.Equal(t, "/docs-deploy/", doc.DocsPath)
	require.Equal(t, "https://nemesisdb.github.io/docs-deploy/img/docusaurus-social-card.jpg", doc.SocialCard)
	require.Len(t, doc.Fingerprint, 16)

	// The published config resolves to the same site.
	c2, err := siteconfig.Resolve(doc.Config)
	require.NoError(t, err)
	require.Equal(t, c.ToRaw(), c2.ToRaw())
}

func TestPublishSiteMinified(t *testing.T) {
	p, fs := newPublisher(t)
	c := newSiteConfig(t)

	_, err := PublishSite(p, "default", c, clocks.System(), true)
	require.NoError(t, err)

	b, err := afero.ReadFile(fs, "/work/build/default/site.json")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), `{"profile":"default","fingerprint":"`), string(b))
	require.NotContains(t, string(b), "\n  ")
}

func TestPublishOverwrites(t *testing.T) {
	p, fs := newPublisher(t)

	require.NoError(t, p.Publish(Descriptor{Src: strings.NewReader("first version"), TargetPath: "a/b.txt"}))
	require.NoError(t, p.Publish(Descriptor{Src: strings.NewReader("second"), TargetPath: "a/b.txt"}))

	b, err := afero.ReadFile(fs, "/work/build/a/b.txt")
	require.NoError(t, err)
	require.Equal(t, "second", string(b))

	require.Error(t, p.Publish(Descriptor{Src: strings.NewReader("")}))
}
