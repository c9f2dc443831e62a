package siteconfig

import (
	"github.com/mitchellh/hashstructure"
)

// ToRaw returns c as a plain record in the shape Resolve accepts, with
// defaults filled in. Resolve(c.ToRaw()) gives a SiteConfig equal to c.
func (c *SiteConfig) ToRaw() map[string]any {
	m := map[string]any{
		"title":                 c.title,
		"baseUrl":               c.baseURL,
		"organizationName":      c.organizationName,
		"projectName":           c.projectName,
		"locales":               c.Locales(),
		"defaultLocale":         c.defaultLocale,
		"navItems":              c.navItemsToRaw(),
		"footerGroups":          c.footerGroupsToRaw(),
		"footerStyle":           c.footerStyle,
		"onBrokenLinks":         string(c.onBrokenLinks),
		"onBrokenMarkdownLinks": string(c.onBrokenMarkdownLinks),
		"enableEmoji":           c.enableEmoji,
		"routeBasePath":         c.routeBasePath,
		"colorMode": map[string]any{
			"defaultMode":               string(c.colorMode.DefaultMode),
			"disableSwitch":             c.colorMode.DisableSwitch,
			"respectPrefersColorScheme": c.colorMode.RespectPrefersColorScheme,
		},
	}

	setIfNotEmpty(m, "url", c.url)
	setIfNotEmpty(m, "tagline", c.tagline)
	setIfNotEmpty(m, "favicon", c.favicon)
	setIfNotEmpty(m, "image", c.image)
	setIfNotEmpty(m, "navbarTitle", c.navbarTitle)
	setIfNotEmpty(m, "copyright", c.copyright)

	if c.logo != nil {
		logo := map[string]any{"src": c.logo.Src}
		setIfNotEmpty(logo, "alt", c.logo.Alt)
		m["logo"] = logo
	}

	if !c.prism.IsZero() {
		prism := make(map[string]any)
		setIfNotEmpty(prism, "theme", c.prism.Theme)
		setIfNotEmpty(prism, "darkTheme", c.prism.DarkTheme)
		if len(c.prism.AdditionalLanguages) > 0 {
			prism["additionalLanguages"] = append([]string(nil), c.prism.AdditionalLanguages...)
		}
		m["prism"] = prism
	}

	return m
}

func (c *SiteConfig) navItemsToRaw() []any {
	items := make([]any, len(c.navItems))
	for i, item := range c.navItems {
		m := map[string]any{
			"kind":     string(item.Kind),
			"label":    item.Label,
			"position": string(item.Position),
		}
		setIfNotEmpty(m, "targetId", item.TargetID)
		setIfNotEmpty(m, "href", item.Href)
		items[i] = m
	}
	return items
}

func (c *SiteConfig) footerGroupsToRaw() []any {
	groups := make([]any, len(c.footerGroups))
	for i, g := range c.footerGroups {
		links := make([]any, len(g.Links))
		for j, l := range g.Links {
			links[j] = map[string]any{"label": l.Label, "href": l.Href}
		}
		groups[i] = map[string]any{"title": g.Title, "links": links}
	}
	return groups
}

func setIfNotEmpty(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

// Fingerprint returns a structural hash of ToRaw. Configs with equal ToRaw
// records have equal fingerprints.
func (c *SiteConfig) Fingerprint() (uint64, error) {
	return hashstructure.Hash(c.ToRaw(), nil)
}
