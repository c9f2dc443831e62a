package config

import (
	"github.com/nemesisdb/siteconf/common/maps"
)

// Provider provides the configuration settings for a site.
// Keys are case insensitive and nested values are addressed with dots,
// e.g. "logo.src". The empty key is the root map.
type Provider interface {
	Get(key string) any
	GetParams(key string) maps.Params
	IsSet(key string) bool
	Set(key string, value any)
	SetDefaults(params maps.Params)
}
