// Package siteconfig validates and normalizes the declarative configuration
// of a documentation site before it is handed to the site generator.
//
// Resolve takes the loosely typed record decoded from a config file and
// returns an immutable *SiteConfig, or a *ConfigError listing every problem
// found:
//
//	cfg, err := siteconfig.Resolve(raw)
//	var cerr *siteconfig.ConfigError
//	if errors.As(err, &cerr) {
//		for _, e := range cerr.Errors {
//			log.Println(e)
//		}
//	}
package siteconfig
