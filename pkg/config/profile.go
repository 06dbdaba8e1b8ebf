package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/getmockd/conneg/pkg/preference"
)

// ErrUnknownProfile is returned when a profile name is not configured.
var ErrUnknownProfile = errors.New("unknown profile")

// Validate checks the semantic rules the schema cannot express.
func (c *Config) Validate() error {
	if c.Precision != 0 && c.Precision < preference.MinPrecision {
		return fmt.Errorf("%w: precision must be at least %d", ErrInvalidConfig, preference.MinPrecision)
	}
	if len(c.Profiles) == 0 {
		return fmt.Errorf("%w: at least one profile is required", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("%w: profiles[%d]: name is required", ErrInvalidConfig, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: profiles[%d]: duplicate name %q", ErrInvalidConfig, i, p.Name)
		}
		seen[p.Name] = true

		for _, pattern := range p.Paths {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("%w: profiles[%d]: invalid path pattern %q", ErrInvalidConfig, i, pattern)
			}
		}

		if len(p.Offers) == 0 {
			return fmt.Errorf("%w: profiles[%d]: at least one offer is required", ErrInvalidConfig, i)
		}
		for _, offer := range p.Offers {
			if err := validateOffer(offer); err != nil {
				return fmt.Errorf("%w: profiles[%d]: %v", ErrInvalidConfig, i, err)
			}
		}
	}
	return nil
}

// validateOffer rejects offers that are not a concrete type/subtype.
func validateOffer(offer string) error {
	media, _, _ := strings.Cut(offer, ";")
	typ, subtype, ok := strings.Cut(strings.TrimSpace(media), "/")
	if !ok || typ == "" || subtype == "" {
		return fmt.Errorf("offer %q is not a media type", offer)
	}
	if typ == "*" || subtype == "*" {
		return fmt.Errorf("offer %q must not contain wildcards", offer)
	}
	return nil
}

// Profile returns the profile with the given name.
func (c *Config) Profile(name string) (*Profile, error) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
}

// ProfileFor returns the first profile with a path pattern matching urlPath.
func (c *Config) ProfileFor(urlPath string) (*Profile, bool) {
	for i := range c.Profiles {
		if c.Profiles[i].MatchesPath(urlPath) {
			return &c.Profiles[i], true
		}
	}
	return nil, false
}

// MatchesPath reports whether any of the profile's patterns matches urlPath.
func (p *Profile) MatchesPath(urlPath string) bool {
	for _, pattern := range p.Paths {
		if ok, err := doublestar.Match(pattern, urlPath); err == nil && ok {
			return true
		}
	}
	return false
}
