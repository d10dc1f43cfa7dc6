package profile

import (
	"slices"
)

// Config is the whole persisted document: the default profile plus named ones
type Config struct {
	DefaultProfile Profile   `json:"default_profile"`
	Profiles       []Profile `json:"profiles"`
}

// NewConfig returns the config used when nothing has been saved yet
func NewConfig() Config {
	return Config{
		DefaultProfile: New(""),
		Profiles:       []Profile{},
	}
}

// IsDefault reports whether name addresses the default profile
func IsDefault(name string) bool {
	return name == "" || name == DefaultName
}

// Profile looks up a profile by name; an empty name or "default" returns the default profile
func (c Config) Profile(name string) (Profile, bool) {
	if IsDefault(name) {
		return c.DefaultProfile.WithDefinitions(c.DefaultProfile.Definitions), true
	}
	for _, p := range c.Profiles {
		if p.Name == name {
			return p.WithDefinitions(p.Definitions), true
		}
	}
	return Profile{}, false
}

// HasProfile reports whether a named profile exists
func (c Config) HasProfile(name string) bool {
	_, ok := c.Profile(name)
	return ok
}

// Names lists profile names with the default first
func (c Config) Names() []string {
	names := make([]string, 0, len(c.Profiles)+1)
	names = append(names, DefaultName)
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// UpsertProfile returns a copy of c where p replaces the profile of the same
// name in place, or is appended when no such profile exists
func (c Config) UpsertProfile(p Profile) Config {
	profiles := make([]Profile, 0, len(c.Profiles)+1)
	replaced := false
	for _, existing := range c.Profiles {
		if existing.Name == p.Name {
			profiles = append(profiles, p.WithDefinitions(p.Definitions))
			replaced = true
			continue
		}
		profiles = append(profiles, existing)
	}
	if !replaced {
		profiles = append(profiles, p.WithDefinitions(p.Definitions))
	}
	c.Profiles = profiles
	return c
}

// UpdateDefaultProfile returns a copy of c with p as the default profile
func (c Config) UpdateDefaultProfile(p Profile) Config {
	c.DefaultProfile = p.WithDefinitions(p.Definitions)
	c.Profiles = slices.Clone(c.Profiles)
	return c
}

// Put stores p as the default profile when name addresses it, otherwise upserts it
func (c Config) Put(name string, p Profile) Config {
	if IsDefault(name) {
		return c.UpdateDefaultProfile(p)
	}
	return c.UpsertProfile(p)
}
