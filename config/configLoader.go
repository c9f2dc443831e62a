package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/nemesisdb/siteconf/parser/metadecoders"
	"github.com/spf13/afero"
)

// DefaultConfigName is the base name, without extension, of the site config
// file looked for when none is given.
const DefaultConfigName = "site"

var (
	ValidConfigFileExtensions = metadecoders.ValidFormats

	defaultConfigGlob = glob.MustCompile(
		fmt.Sprintf("%s.{%s}", DefaultConfigName, strings.Join(ValidConfigFileExtensions, ",")))
)

func loadConfigFromFile(fs afero.Fs, filename string) (maps.Params, error) {
	m, err := metadecoders.Default.UnmarshalFileToMap(fs, filename)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// FindConfigFile looks for site.{toml,yaml,yml,json,jsonc,xml} in dir.
// If more than one matches, the first in ValidConfigFileExtensions order wins.
func FindConfigFile(fs afero.Fs, dir string) (string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return "", fmt.Errorf("read config dir: %w", err)
	}

	var candidates []string
	for _, fi := range entries {
		if fi.IsDir() {
			continue
		}
		if defaultConfigGlob.Match(fi.Name()) {
			candidates = append(candidates, fi.Name())
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no %s.{%s} found in %q", DefaultConfigName, strings.Join(ValidConfigFileExtensions, ","), dir)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return extensionRank(candidates[i]) < extensionRank(candidates[j])
	})

	return filepath.Join(dir, candidates[0]), nil
}

func extensionRank(name string) int {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for i, e := range ValidConfigFileExtensions {
		if e == ext {
			return i
		}
	}
	return len(ValidConfigFileExtensions)
}
