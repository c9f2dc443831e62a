package siteconfig

import (
	"strings"

	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/spf13/cast"
)

// DefaultRouteBasePath is where the docs are served when routeBasePath is
// not set.
const DefaultRouteBasePath = "docs"

var defaults = maps.Params{
	"onbrokenlinks":         string(BrokenLinkThrow),
	"onbrokenmarkdownlinks": string(BrokenLinkWarn),
	"footerstyle":           "dark",
	"colormode":             string(ColorModeLight),
	"routebasepath":         DefaultRouteBasePath,
}

// Defaults returns the values Resolve uses for optional fields left out of
// a site config, keyed by lower case field name. The result is a copy.
func Defaults() maps.Params {
	return defaults.Clone()
}

func defaultString(name string) string {
	return cast.ToString(defaults[strings.ToLower(name)])
}
