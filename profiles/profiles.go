// Package profiles splits a site config file into a shared template and
// named sets of overrides. A file without a profiles section has a single
// profile, DefaultProfile, which is the template itself.
package profiles

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nemesisdb/siteconf/common/maps"
	"github.com/nemesisdb/siteconf/config"
	"github.com/nemesisdb/siteconf/siteconfig"
	"github.com/nemesisdb/siteconf/types"
)

const (
	// DefaultProfile is the name of the implicit profile of a file with no
	// profiles section.
	DefaultProfile = "default"

	profilesKey = "profiles"
)

// ErrNotFound is returned for a profile name not defined in the Set.
var ErrNotFound = errors.New("profile not found")

// ProfileError is a profile with invalid overrides.
type ProfileError struct {
	Profile string
	Err     error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("profile %q: %s", e.Profile, e.Err)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

// Set is the template of a site config file and its profiles.
type Set struct {
	template  maps.Params
	overrides map[string]maps.Params
	decoded   map[string]Override
	names     []string
}

// New creates a Set from the decoded params of a site config file. Every
// profile's overrides are checked; the error joins a *ProfileError per
// invalid profile, in name order.
func New(p maps.Params) (*Set, error) {
	s := &Set{
		template:  p.Clone(),
		overrides: make(map[string]maps.Params),
		decoded:   make(map[string]Override),
	}
	if s.template == nil {
		s.template = maps.Params{}
	}
	delete(s.template, profilesKey)

	v := p.Get(profilesKey)
	if v == nil {
		s.setDefault()
		return s, nil
	}

	profiles, ok := v.(maps.Params)
	if !ok {
		return nil, fmt.Errorf("%s: expected map of profiles, got %s", profilesKey, types.KindName(v))
	}
	if len(profiles) == 0 {
		s.setDefault()
		return s, nil
	}

	for name := range profiles {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)

	var errs []error
	for _, name := range s.names {
		pv := profiles[name]
		var overrides maps.Params
		switch vv := pv.(type) {
		case nil:
			overrides = maps.Params{}
		case maps.Params:
			overrides = vv.Clone()
		default:
			errs = append(errs, &ProfileError{Profile: name, Err: fmt.Errorf("expected map of overrides, got %s", types.KindName(pv))})
			continue
		}

		o, err := decodeOverride(overrides)
		if err != nil {
			errs = append(errs, &ProfileError{Profile: name, Err: err})
			continue
		}
		s.overrides[name] = overrides
		s.decoded[name] = o
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return s, nil
}

func (s *Set) setDefault() {
	s.names = []string{DefaultProfile}
	s.overrides[DefaultProfile] = maps.Params{}
	s.decoded[DefaultProfile] = Override{}
}

// Names returns the profile names, sorted.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Has reports whether name is a profile in s.
func (s *Set) Has(name string) bool {
	_, found := s.overrides[name]
	return found
}

// Config returns the config of profile name: the template as a read-only
// base with the profile's overrides layered on top. Optional fields neither
// of them sets get the values of siteconfig.Defaults.
func (s *Set) Config(name string) (config.Provider, error) {
	overrides, found := s.overrides[name]
	if !found {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	cfg := config.NewCompositeConfig(
		config.NewFrom(s.template.Clone()),
		config.NewFrom(overrides.Clone()),
	)
	cfg.SetDefaults(siteconfig.Defaults())
	return cfg, nil
}

// Raw returns the merged record of profile name, ready for
// siteconfig.Resolve. Override maps are merged into the template's maps,
// so a profile may override only logo.src.
func (s *Set) Raw(name string) (map[string]any, error) {
	cfg, err := s.Config(name)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any)
	for _, p := range []maps.Params{s.template, s.overrides[name], siteconfig.Defaults()} {
		for k := range p {
			if cfg.IsSet(k) {
				raw[k] = cfg.Get(k)
			}
		}
	}
	return raw, nil
}

// Override returns the decoded overrides of profile name.
func (s *Set) Override(name string) (Override, bool) {
	o, found := s.decoded[name]
	return o, found
}

// Overrides returns the names of the keys profile name overrides, sorted.
func (s *Set) Overrides(name string) []string {
	o, found := s.decoded[name]
	if !found {
		return nil
	}
	return o.Keys()
}
