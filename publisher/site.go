package publisher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"

	"github.com/bep/clocks"
	"github.com/nemesisdb/siteconf/minifiers"
	"github.com/nemesisdb/siteconf/siteconfig"
)

// SiteFilename is the name of the resolved config file written per profile.
const SiteFilename = "site.json"

// SiteDocument is what the rendering side reads: the normalized config of one
// profile with a few values computed up front.
type SiteDocument struct {
	Profile     string `json:"profile"`
	Fingerprint string `json:"fingerprint"`
	SiteURL     string `json:"siteUrl"`
	DocsPath    string `json:"docsPath"`
	SocialCard  string `json:"socialCard,omitempty"`
	// Copyright with {year} filled in.
	Copyright string         `json:"copyright,omitempty"`
	Config    map[string]any `json:"config"`
}

// NewSiteDocument creates the document for cfg, resolved as profile.
func NewSiteDocument(profile string, cfg *siteconfig.SiteConfig, clock clocks.Clock) (SiteDocument, error) {
	fingerprint, err := cfg.Fingerprint()
	if err != nil {
		return SiteDocument{}, fmt.Errorf("fingerprint %q: %w", profile, err)
	}
	return SiteDocument{
		Profile:     profile,
		Fingerprint: fmt.Sprintf("%016x", fingerprint),
		SiteURL:     cfg.SiteURL(),
		DocsPath:    cfg.DocsPath(),
		SocialCard:  cfg.SocialCardURL(),
		Copyright:   cfg.Copyright(clock),
		Config:      cfg.ToRaw(),
	}, nil
}

// SiteTargetPath returns where the document of profile is published,
// relative to the publish dir.
func SiteTargetPath(profile string) string {
	return path.Join(profile, SiteFilename)
}

// PublishSite writes the document of cfg to <profile>/site.json and returns
// the target path.
func PublishSite(p Publisher, profile string, cfg *siteconfig.SiteConfig, clock clocks.Clock, minify bool) (string, error) {
	doc, err := NewSiteDocument(profile, cfg, clock)
	if err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %q: %w", profile, err)
	}
	b = append(b, '\n')

	targetPath := SiteTargetPath(profile)
	if err := p.Publish(Descriptor{
		Src:        bytes.NewReader(b),
		MediaType:  minifiers.JSONType,
		TargetPath: targetPath,
		Minify:     minify,
	}); err != nil {
		return "", err
	}

	return targetPath, nil
}
