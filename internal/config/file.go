package config

import (
	"fmt"
	"slices"
)

// File is the structure of the .sigdec.yaml configuration file.
//
//	defaults:
//	  top: 10
//	profiles:
//	  tokens:
//	    codecs: [base64, base64url]
//	    entropyThreshold: 4.0
type File struct {
	// Defaults apply to every run.
	Defaults Analysis `yaml:"defaults,omitempty"`

	// Profiles are named overrides selected with --profile.
	Profiles map[string]Analysis `yaml:"profiles,omitempty"`
}

// ProfileNames returns the defined profile names in sorted order.
func (f *File) ProfileNames() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns base with the file defaults applied and then, when
// profile is non-empty, the named profile on top.
func (f *File) Resolve(base Analysis, profile string) (Analysis, error) {
	result := base.Merge(f.Defaults)
	if profile == "" {
		return result, nil
	}

	override, ok := f.Profiles[profile]
	if !ok {
		return Analysis{}, fmt.Errorf("%w: %q (defined: %v)", ErrUnknownProfile, profile, f.ProfileNames())
	}
	return result.Merge(override), nil
}
