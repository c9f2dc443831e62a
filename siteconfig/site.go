package siteconfig

import (
	"strconv"
	"strings"

	"github.com/bep/clocks"
	"github.com/nemesisdb/siteconf/helpers"
	"github.com/nemesisdb/siteconf/highlight"
	"github.com/nemesisdb/siteconf/langs"
	"github.com/nemesisdb/siteconf/navigation"
)

// ColorMode is the initial colour scheme of the site.
type ColorMode string

const (
	ColorModeLight  ColorMode = "light"
	ColorModeDark   ColorMode = "dark"
	ColorModeSystem ColorMode = "system"
)

func parseColorMode(s string) (ColorMode, bool) {
	switch ColorMode(s) {
	case ColorModeLight, ColorModeDark, ColorModeSystem:
		return ColorMode(s), true
	}
	return "", false
}

// ColorModeConfig is the full colour mode block.
type ColorModeConfig struct {
	DefaultMode               ColorMode
	DisableSwitch             bool
	RespectPrefersColorScheme bool
}

// BrokenLinkPolicy is what the rendering collaborator does on a broken link.
type BrokenLinkPolicy string

const (
	BrokenLinkIgnore BrokenLinkPolicy = "ignore"
	BrokenLinkLog    BrokenLinkPolicy = "log"
	BrokenLinkWarn   BrokenLinkPolicy = "warn"
	BrokenLinkThrow  BrokenLinkPolicy = "throw"
)

// Logo is the navbar logo.
type Logo struct {
	Alt string
	Src string
}

// SiteConfig is the validated description of a documentation site.
// It is created by Resolve and never changes afterwards; accessors return
// copies.
type SiteConfig struct {
	title            string
	baseURL          string
	url              string
	organizationName string
	projectName      string
	tagline          string
	favicon          string
	image            string
	routeBasePath    string

	languages     langs.Languages
	defaultLocale string

	navbarTitle string
	logo        *Logo
	navItems    navigation.NavItems
	navIndex    *navigation.Index

	footerStyle  string
	footerGroups []navigation.FooterGroup
	copyright    string

	colorMode ColorModeConfig
	prism     highlight.Config

	onBrokenLinks         BrokenLinkPolicy
	onBrokenMarkdownLinks BrokenLinkPolicy

	enableEmoji bool
}

func (c *SiteConfig) Title() string            { return c.title }
func (c *SiteConfig) BaseURL() string          { return c.baseURL }
func (c *SiteConfig) URL() string              { return c.url }
func (c *SiteConfig) OrganizationName() string { return c.organizationName }
func (c *SiteConfig) ProjectName() string      { return c.projectName }
func (c *SiteConfig) Tagline() string          { return c.tagline }
func (c *SiteConfig) Favicon() string          { return c.favicon }
func (c *SiteConfig) Image() string            { return c.image }
func (c *SiteConfig) DefaultLocale() string    { return c.defaultLocale }
func (c *SiteConfig) NavbarTitle() string      { return c.navbarTitle }
func (c *SiteConfig) FooterStyle() string      { return c.footerStyle }
func (c *SiteConfig) EnableEmoji() bool        { return c.enableEmoji }

// ColorMode returns the default colour mode.
func (c *SiteConfig) ColorMode() ColorMode { return c.colorMode.DefaultMode }

// ColorModeConfig returns the full colour mode block.
func (c *SiteConfig) ColorModeConfig() ColorModeConfig { return c.colorMode }

func (c *SiteConfig) OnBrokenLinks() BrokenLinkPolicy         { return c.onBrokenLinks }
func (c *SiteConfig) OnBrokenMarkdownLinks() BrokenLinkPolicy { return c.onBrokenMarkdownLinks }

// Locales returns the locale codes in configured order.
func (c *SiteConfig) Locales() []string {
	return c.languages.Codes()
}

// Languages returns the locales with the default locale first.
func (c *SiteConfig) Languages() langs.Languages {
	return langs.SortedDefaultFirst(c.languages, c.defaultLocale)
}

// Logo returns the navbar logo, if any.
func (c *SiteConfig) Logo() (Logo, bool) {
	if c.logo == nil {
		return Logo{}, false
	}
	return *c.logo, true
}

// NavItems returns the navbar items in configured order.
func (c *SiteConfig) NavItems() navigation.NavItems {
	items := make(navigation.NavItems, len(c.navItems))
	copy(items, c.navItems)
	return items
}

// NavItemsAt returns the navbar items rendered at pos, in configured order.
func (c *SiteConfig) NavItemsAt(pos navigation.Position) navigation.NavItems {
	return c.navIndex.At(pos)
}

// FooterGroups returns the footer link groups in configured order.
func (c *SiteConfig) FooterGroups() []navigation.FooterGroup {
	groups := make([]navigation.FooterGroup, len(c.footerGroups))
	for i, g := range c.footerGroups {
		links := make([]navigation.FooterLink, len(g.Links))
		copy(links, g.Links)
		groups[i] = navigation.FooterGroup{Title: g.Title, Links: links}
	}
	return groups
}

// Prism returns the code highlighting setup.
func (c *SiteConfig) Prism() highlight.Config {
	p := c.prism
	p.AdditionalLanguages = append([]string(nil), c.prism.AdditionalLanguages...)
	return p
}

// SiteURL returns the production URL including the base path, or the base
// path alone when no URL is configured.
func (c *SiteConfig) SiteURL() string {
	return helpers.SiteURL(c.url, c.baseURL)
}

// RouteBasePath returns the path the docs are served under, relative to the
// base URL, with a leading slash and no trailing one, e.g. "/docs". Docs
// served at the site root give "/".
func (c *SiteConfig) RouteBasePath() string { return c.routeBasePath }

// DocsPath returns RouteBasePath below the base URL, e.g. "/docs-deploy/docs/".
func (c *SiteConfig) DocsPath() string {
	return helpers.PrependBasePath(c.baseURL, strings.TrimPrefix(c.routeBasePath+"/", "/"))
}

// SocialCardURL returns the social card image as an absolute URL when the
// site URL is known, or as a path below the base URL otherwise. It is empty
// when no image is configured.
func (c *SiteConfig) SocialCardURL() string {
	if c.image == "" || helpers.IsAbsURL(c.image) {
		return c.image
	}
	p := helpers.PrependBasePath(c.baseURL, c.image)
	if c.url == "" {
		return p
	}
	return strings.TrimSuffix(c.url, "/") + p
}

// Copyright renders the footer copyright line, replacing {year} with the
// current year of clock.
func (c *SiteConfig) Copyright(clock clocks.Clock) string {
	if !strings.Contains(c.copyright, "{year}") {
		return c.copyright
	}
	return strings.ReplaceAll(c.copyright, "{year}", strconv.Itoa(clock.Now().Year()))
}
