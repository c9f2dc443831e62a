package minifiers

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/nemesisdb/siteconf/config"
	"github.com/nemesisdb/siteconf/types"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/xml"
)

// configKey is the site config section holding the minify settings, e.g.
//
//	minify:
//	  minifyOutput: true
//	  tdewolff:
//	    json:
//	      precision: 3
const configKey = "minify"

type minifyConfig struct {
	// Whether to minify the published output.
	MinifyOutput bool

	DisableJSON bool
	DisableXML  bool

	Tdewolff tdewolffConfig
}

type tdewolffConfig struct {
	JSON json.Minifier
	XML  xml.Minifier
}

var defaultTdewolffConfig = tdewolffConfig{
	JSON: json.Minifier{},
	XML: xml.Minifier{
		KeepWhitespace: false,
	},
}

var defaultConfig = minifyConfig{
	Tdewolff: defaultTdewolffConfig,
}

func decodeConfig(cfg config.Provider) (conf minifyConfig, err error) {
	conf = defaultConfig

	if cfg == nil || !cfg.IsSet(configKey) {
		return
	}

	v := cfg.Get(configKey)

	// A plain "minify: true" only switches output minification on.
	if b, ok := v.(bool); ok {
		conf.MinifyOutput = b
		return
	}

	m, ok := v.(maps.Params)
	if !ok {
		return conf, fmt.Errorf("%s: expected bool or map, got %s", configKey, types.KindName(v))
	}

	// The keys are lower cased by the config loader; mapstructure matches
	// field names case insensitively.
	if err = mapstructure.WeakDecode(m, &conf); err != nil {
		return conf, fmt.Errorf("failed to decode %s config: %w", configKey, err)
	}

	return
}
