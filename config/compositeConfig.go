package config

import (
	"github.com/nemesisdb/siteconf/common/maps"
)

// NewCompositeConfig creates a new composite Provider with a read-only base
// and a writeable layer. A profile is exactly this: the shared site template
// as base and the profile's overrides as layer.
func NewCompositeConfig(base, layer Provider) Provider {
	return &compositeConfig{
		base:  base,
		layer: layer,
	}
}

type compositeConfig struct {
	base  Provider
	layer Provider
}

// Get returns the layer's value if set. When both layer and base hold a map
// for key, the result is the base map with the layer map merged on top, so a
// partial override (e.g. only logo.src) keeps the other base entries.
func (c *compositeConfig) Get(key string) any {
	if !c.layer.IsSet(key) {
		return c.base.Get(key)
	}
	lv := c.layer.Get(key)
	lp, ok := lv.(maps.Params)
	if !ok {
		return lv
	}
	bp, ok := c.base.Get(key).(maps.Params)
	if !ok {
		return lv
	}
	merged := bp.Clone()
	merged.Set(lp.Clone())
	return merged
}

func (c *compositeConfig) GetParams(key string) maps.Params {
	p, _ := c.Get(key).(maps.Params)
	return p
}

func (c *compositeConfig) IsSet(key string) bool {
	return c.layer.IsSet(key) || c.base.IsSet(key)
}

func (c *compositeConfig) Set(key string, value any) {
	c.layer.Set(key, value)
}

// SetDefaults writes the defaults that neither base nor layer sets to the
// layer, so a default never hides a base value.
func (c *compositeConfig) SetDefaults(params maps.Params) {
	unset := make(maps.Params)
	for k, v := range maps.MustToParamsAndPrepare(params) {
		if !c.IsSet(k) {
			unset[k] = v
		}
	}
	c.layer.SetDefaults(unset)
}
