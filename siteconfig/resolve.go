package siteconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/nemesisdb/siteconf/helpers"
	"github.com/nemesisdb/siteconf/highlight"
	"github.com/nemesisdb/siteconf/langs"
	"github.com/nemesisdb/siteconf/navigation"
	"github.com/nemesisdb/siteconf/types"
	"github.com/spf13/cast"
)

// Resolve validates raw, a decoded site config record, and turns it into a
// SiteConfig. Keys are matched case insensitively and unknown keys are
// ignored. raw is not modified.
//
// On failure the error is a *ConfigError holding every violation found.
// Resolve has no side effects and is safe for concurrent use.
func Resolve(raw map[string]any) (*SiteConfig, error) {
	p, ok := maps.ToParamsAndPrepare(raw)
	if !ok {
		return nil, &ConfigError{Errors: []error{
			&TypeMismatchError{Field: "(root)", Expected: "map", Actual: types.KindName(raw)},
		}}
	}

	r := &resolver{}
	for _, kc := range maps.FindKeyCollisions(raw) {
		r.fail(stageType, &DuplicateKeyError{Field: kc.Path, Keys: kc.Keys})
	}
	c := r.resolveSite(object{p: p})
	if err := r.err(); err != nil {
		return nil, err
	}
	return c, nil
}

// Checks run in this order, which is also the order violations are reported in.
type stage int

const (
	stagePresence stage = iota
	stageType
	stageBaseURL
	stageLocale
	stageNavShape
	stageDuplicate
	stageHighlight

	numStages
)

type resolver struct {
	emojify bool
	errs    [numStages][]error
}

func (r *resolver) fail(s stage, err error) {
	r.errs[s] = append(r.errs[s], err)
}

func (r *resolver) err() error {
	var all []error
	for _, errs := range r.errs {
		all = append(all, errs...)
	}
	if len(all) == 0 {
		return nil
	}
	return &ConfigError{Errors: all}
}

func (r *resolver) resolveSite(root object) *SiteConfig {
	c := &SiteConfig{}

	c.enableEmoji = r.boolean(root, "enableEmoji")
	r.emojify = c.enableEmoji

	c.title, _ = r.requiredString(root, "title")
	baseURL, baseURLOK := r.requiredString(root, "baseUrl")
	c.baseURL = baseURL
	c.organizationName, _ = r.requiredString(root, "organizationName")
	c.projectName, _ = r.requiredString(root, "projectName")
	c.languages, c.defaultLocale = r.resolveLocales(root)

	if baseURLOK && !helpers.IsValidBaseURL(baseURL) {
		r.fail(stageBaseURL, &InvalidBaseURLError{Value: baseURL})
	}

	if u, ok := r.string(root, "url"); ok && u != "" {
		if !helpers.IsHTTPURL(u) {
			r.fail(stageType, &TypeMismatchError{Field: root.field("url"), Expected: "absolute http(s) URL", Actual: strconv.Quote(u)})
		}
		c.url = u
	}
	c.tagline, _ = r.string(root, "tagline")
	c.favicon, _ = r.string(root, "favicon")
	c.image = r.resolveImage(root)
	c.routeBasePath = r.resolveRouteBasePath(root)
	c.onBrokenLinks = BrokenLinkPolicy(r.enum(root, "onBrokenLinks", brokenLinkPolicies))
	c.onBrokenMarkdownLinks = BrokenLinkPolicy(r.enum(root, "onBrokenMarkdownLinks", brokenLinkPolicies))

	c.navbarTitle, _ = r.string(root, "navbarTitle")
	c.logo = r.resolveLogo(root)
	c.navItems = r.resolveNavItems(root)
	c.navIndex = navigation.NewIndex(c.navItems)

	c.footerStyle = r.enum(root, "footerStyle", []string{"dark", "light"})
	c.footerGroups = r.resolveFooterGroups(root)
	c.copyright, _ = r.string(root, "copyright")

	c.colorMode = r.resolveColorMode(root)
	c.prism = r.resolvePrism(root)

	return c
}

var brokenLinkPolicies = []string{
	string(BrokenLinkIgnore), string(BrokenLinkLog), string(BrokenLinkWarn), string(BrokenLinkThrow),
}

// resolveImage checks the social card image, a site relative path or an
// absolute http(s) URL.
func (r *resolver) resolveImage(root object) string {
	image, ok := r.string(root, "image")
	if !ok || strings.TrimSpace(image) == "" {
		return ""
	}
	if strings.Contains(image, "://") && !helpers.IsHTTPURL(image) {
		r.fail(stageType, &TypeMismatchError{Field: root.field("image"), Expected: "site relative path or absolute http(s) URL", Actual: strconv.Quote(image)})
		return ""
	}
	return image
}

func (r *resolver) resolveRouteBasePath(root object) string {
	s, ok := r.string(root, "routeBasePath")
	if !ok {
		s = defaultString("routeBasePath")
	}
	p, valid := helpers.NormalizeRoutePath(s)
	if !valid {
		r.fail(stageType, &TypeMismatchError{Field: root.field("routeBasePath"), Expected: "route path", Actual: strconv.Quote(s)})
		p, _ = helpers.NormalizeRoutePath(defaultString("routeBasePath"))
	}
	return p
}

func (r *resolver) resolveLocales(root object) (langs.Languages, string) {
	var (
		languages langs.Languages
		codes     = make(map[string]bool)
		listOK    bool
	)

	if !root.has("locales") {
		r.fail(stagePresence, &MissingFieldError{Field: root.field("locales")})
	} else if items, ok := r.list(root, "locales"); ok {
		listOK = true
		if len(items) == 0 {
			r.fail(stageType, &TypeMismatchError{Field: root.field("locales"), Expected: "non-empty list of locale codes", Actual: "empty list"})
		}
		for i, item := range items {
			field := fmt.Sprintf("%s[%d]", root.field("locales"), i)
			code, isString := item.(string)
			if !isString || code == "" {
				r.fail(stageType, mismatch(field, "locale code", item))
				continue
			}
			if codes[code] {
				r.fail(stageLocale, &DuplicateLocaleError{Locale: code})
				continue
			}
			codes[code] = true
			lang, err := langs.NewLanguage(code)
			if err != nil {
				r.fail(stageType, &TypeMismatchError{Field: field, Expected: "BCP 47 locale code", Actual: strconv.Quote(code)})
				continue
			}
			languages = append(languages, lang)
		}
	}

	if !root.has("defaultLocale") {
		if len(languages) > 0 {
			return languages, languages[0].Lang
		}
		return languages, ""
	}

	defaultLocale, ok := r.string(root, "defaultLocale")
	if ok && listOK && !codes[defaultLocale] {
		r.fail(stageLocale, &UnknownLocaleError{Locale: defaultLocale})
	}
	return languages, defaultLocale
}

func (r *resolver) resolveLogo(root object) *Logo {
	o, ok := r.object(root, "logo")
	if !ok {
		return nil
	}
	logo := &Logo{}
	logo.Src, _ = r.requiredString(o, "src")
	logo.Alt, _ = r.string(o, "alt")
	return logo
}

type navKey struct {
	label    string
	position navigation.Position
}

func (r *resolver) resolveNavItems(root object) navigation.NavItems {
	items, ok := r.list(root, "navItems")
	if !ok {
		return nil
	}

	var (
		navItems navigation.NavItems
		seen     = make(map[navKey]bool)
		reported = make(map[navKey]bool)
	)

	for i, v := range items {
		o, ok := root.elem("navItems", i, v)
		if !ok {
			r.fail(stageType, mismatch(o.path, "map", v))
			continue
		}
		item, keyed := r.resolveNavItem(i, o)
		if keyed {
			key := navKey{label: item.Label, position: item.Position}
			if seen[key] {
				if !reported[key] {
					r.fail(stageDuplicate, &DuplicateNavItemError{Label: item.Label, Position: string(item.Position)})
					reported[key] = true
				}
				continue
			}
			seen[key] = true
		}
		navItems = append(navItems, item)
	}

	return navItems
}

// resolveNavItem reports whether the item's label and position are valid,
// i.e. whether it takes part in duplicate detection.
func (r *resolver) resolveNavItem(i int, o object) (navigation.NavItem, bool) {
	var item navigation.NavItem

	kindKey := o.alias("kind", "type")
	kindOK := false
	if !o.has(kindKey) {
		r.fail(stagePresence, &MissingFieldError{Field: o.field("kind")})
	} else if s, ok := r.string(o, kindKey); ok {
		if item.Kind, kindOK = navigation.ParseKind(s); !kindOK {
			r.fail(stageType, &TypeMismatchError{Field: o.field(kindKey), Expected: "one of sidebarRef, externalLink", Actual: strconv.Quote(s)})
		}
	}

	label, labelOK := r.requiredString(o, "label")
	item.Label = r.text(label)

	targetKey := o.alias("targetId", "sidebarId")
	hasTarget := o.hasValue(targetKey)
	hasHref := o.hasValue("href")
	if targetID, ok := r.string(o, targetKey); ok && hasTarget {
		item.TargetID = targetID
	}
	if href, ok := r.string(o, "href"); ok && hasHref {
		if !helpers.IsAbsURL(href) {
			r.fail(stageType, &TypeMismatchError{Field: o.field("href"), Expected: "absolute URL", Actual: strconv.Quote(href)})
		}
		item.Href = href
	}

	positionOK := true
	item.Position = navigation.PositionLeft
	if o.has("position") {
		positionOK = false
		if s, ok := r.string(o, "position"); ok {
			if item.Position, positionOK = navigation.ParsePosition(s); !positionOK {
				r.fail(stageType, &TypeMismatchError{Field: o.field("position"), Expected: "one of left, right", Actual: strconv.Quote(s)})
			}
		}
	}

	shapeOK := hasTarget != hasHref
	if kindOK {
		switch item.Kind {
		case navigation.KindSidebarRef:
			shapeOK = hasTarget && !hasHref
		case navigation.KindExternalLink:
			shapeOK = hasHref && !hasTarget
		}
	}
	if !shapeOK {
		r.fail(stageNavShape, &NavItemShapeError{Index: i})
	}

	return item, labelOK && positionOK
}

func (r *resolver) resolveFooterGroups(root object) []navigation.FooterGroup {
	items, ok := r.list(root, "footerGroups")
	if !ok {
		return nil
	}

	var (
		groups   []navigation.FooterGroup
		seen     = make(map[string]bool)
		reported = make(map[string]bool)
	)

	for i, v := range items {
		o, ok := root.elem("footerGroups", i, v)
		if !ok {
			r.fail(stageType, mismatch(o.path, "map", v))
			continue
		}

		var group navigation.FooterGroup
		title, titleOK := r.requiredString(o, "title")
		group.Title = r.text(title)
		group.Links = r.resolveFooterLinks(o)

		if titleOK {
			if seen[group.Title] {
				if !reported[group.Title] {
					r.fail(stageDuplicate, &DuplicateFooterGroupError{Title: group.Title})
					reported[group.Title] = true
				}
				continue
			}
			seen[group.Title] = true
		}
		groups = append(groups, group)
	}

	return groups
}

func (r *resolver) resolveFooterLinks(group object) []navigation.FooterLink {
	linksKey := group.alias("links", "items")
	items, ok := r.list(group, linksKey)
	if !ok {
		return nil
	}

	var links []navigation.FooterLink
	for i, v := range items {
		o, ok := group.elem(linksKey, i, v)
		if !ok {
			r.fail(stageType, mismatch(o.path, "map", v))
			continue
		}
		var link navigation.FooterLink
		label, _ := r.requiredString(o, "label")
		link.Label = r.text(label)
		if href, ok := r.requiredString(o, "href"); ok {
			if !helpers.IsAbsURL(href) {
				r.fail(stageType, &TypeMismatchError{Field: o.field("href"), Expected: "absolute URL", Actual: strconv.Quote(href)})
			}
			link.Href = href
		}
		links = append(links, link)
	}
	return links
}

func (r *resolver) resolveColorMode(root object) ColorModeConfig {
	cm := ColorModeConfig{DefaultMode: ColorMode(defaultString("colorMode"))}
	if !root.has("colorMode") {
		return cm
	}

	switch v := root.get("colorMode").(type) {
	case string:
		if mode, ok := parseColorMode(v); ok {
			cm.DefaultMode = mode
		} else {
			r.fail(stageType, &TypeMismatchError{Field: root.field("colorMode"), Expected: "one of light, dark, system", Actual: strconv.Quote(v)})
		}
	case maps.Params:
		o := root.child("colorMode", v)
		if s, ok := r.string(o, "defaultMode"); ok {
			if mode, ok := parseColorMode(s); ok {
				cm.DefaultMode = mode
			} else {
				r.fail(stageType, &TypeMismatchError{Field: o.field("defaultMode"), Expected: "one of light, dark, system", Actual: strconv.Quote(s)})
			}
		}
		cm.DisableSwitch = r.boolean(o, "disableSwitch")
		cm.RespectPrefersColorScheme = r.boolean(o, "respectPrefersColorScheme")
	default:
		r.fail(stageType, mismatch(root.field("colorMode"), "color mode name or block", v))
	}

	return cm
}

func (r *resolver) resolvePrism(root object) highlight.Config {
	var cfg highlight.Config
	o, ok := r.object(root, "prism")
	if !ok {
		return cfg
	}

	for _, key := range []string{"theme", "darkTheme"} {
		style, ok := r.string(o, key)
		if !ok || style == "" {
			continue
		}
		if !highlight.StyleExists(style) {
			r.fail(stageHighlight, &UnknownHighlightStyleError{Field: o.field(key), Style: style})
		}
		if key == "theme" {
			cfg.Theme = style
		} else {
			cfg.DarkTheme = style
		}
	}

	items, _ := r.list(o, "additionalLanguages")
	for i, item := range items {
		lang, isString := item.(string)
		if !isString || lang == "" {
			r.fail(stageType, mismatch(fmt.Sprintf("%s[%d]", o.field("additionalLanguages"), i), "language name", item))
			continue
		}
		if !highlight.LanguageExists(lang) {
			r.fail(stageHighlight, &UnknownHighlightLanguageError{Language: lang})
		}
		cfg.AdditionalLanguages = append(cfg.AdditionalLanguages, lang)
	}

	return cfg
}

// Field accessors. All of them report type errors and return ok=false for
// absent or invalid values.

func (r *resolver) requiredString(o object, name string) (string, bool) {
	if !o.hasValue(name) {
		r.fail(stagePresence, &MissingFieldError{Field: o.field(name)})
		return "", false
	}
	return r.string(o, name)
}

func (r *resolver) string(o object, name string) (string, bool) {
	if !o.has(name) {
		return "", false
	}
	v := o.get(name)
	s, ok := v.(string)
	if !ok {
		r.fail(stageType, mismatch(o.field(name), "string", v))
		return "", false
	}
	return s, true
}

// boolean accepts "true"/"false" strings as well, as XML has no booleans.
func (r *resolver) boolean(o object, name string) bool {
	if !o.has(name) {
		return false
	}
	v := o.get(name)
	switch vv := v.(type) {
	case bool:
		return vv
	case string:
		if b, err := cast.ToBoolE(vv); err == nil {
			return b
		}
	}
	r.fail(stageType, mismatch(o.field(name), "bool", v))
	return false
}

// enum falls back to the entry in Defaults for name.
func (r *resolver) enum(o object, name string, valid []string) string {
	defaultValue := defaultString(name)
	s, ok := r.string(o, name)
	if !ok || s == "" {
		return defaultValue
	}
	for _, v := range valid {
		if s == v {
			return s
		}
	}
	r.fail(stageType, &TypeMismatchError{
		Field:    o.field(name),
		Expected: "one of " + strings.Join(valid, ", "),
		Actual:   strconv.Quote(s),
	})
	return defaultValue
}

// list accepts a lone value where a list is expected, as XML cannot tell a
// one element list from a single element.
func (r *resolver) list(o object, name string) ([]any, bool) {
	if !o.has(name) {
		return nil, false
	}
	v := o.get(name)
	if s, ok := types.ToSlice(v); ok {
		return s, true
	}
	switch v.(type) {
	case string, maps.Params:
		return []any{v}, true
	}
	r.fail(stageType, mismatch(o.field(name), "list", v))
	return nil, false
}

func (r *resolver) object(o object, name string) (object, bool) {
	if !o.has(name) {
		return object{}, false
	}
	v := o.get(name)
	p, ok := v.(maps.Params)
	if !ok {
		r.fail(stageType, mismatch(o.field(name), "map", v))
		return object{}, false
	}
	return o.child(name, p), true
}

func (r *resolver) text(s string) string {
	if !r.emojify {
		return s
	}
	return helpers.Emojify(s)
}

func mismatch(field, expected string, actual any) *TypeMismatchError {
	a := types.KindName(actual)
	if s, ok := actual.(string); ok && s == "" {
		a = "empty string"
	} else if a == expected {
		// Same kind, different Go type.
		a = fmt.Sprintf("%T", actual)
	}
	return &TypeMismatchError{Field: field, Expected: expected, Actual: a}
}

// object is a map in the config tree together with its path, used in errors.
type object struct {
	p    maps.Params
	path string
}

func (o object) field(name string) string {
	if o.path == "" {
		return name
	}
	return o.path + "." + name
}

func (o object) get(name string) any {
	return o.p[strings.ToLower(name)]
}

// has reports whether name is set to a non-nil value. YAML keys without a
// value decode to nil and count as absent.
func (o object) has(name string) bool {
	return o.get(name) != nil
}

// hasValue is has, with empty strings counted as absent.
func (o object) hasValue(name string) bool {
	v := o.get(name)
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return v != nil
}

// alias returns name, or alt if only alt is set.
func (o object) alias(name, alt string) string {
	if !o.has(name) && o.has(alt) {
		return alt
	}
	return name
}

func (o object) child(name string, p maps.Params) object {
	return object{p: p, path: o.field(name)}
}

// elem returns element i of the list at name. The returned object carries
// the element's path even when ok is false.
func (o object) elem(name string, i int, v any) (object, bool) {
	path := fmt.Sprintf("%s[%d]", o.field(name), i)
	p, ok := v.(maps.Params)
	return object{p: p, path: path}, ok
}
