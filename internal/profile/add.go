package profile

import (
	"fmt"

	"github.com/cmdln/dot-dev/internal/apperr"
)

// Interactor supplies values the command line left out
type Interactor interface {
	Confirmer
	Required(label string) (string, error)
	Optional(label string) (string, bool, error)
}

// AddRequest is a variable definition as given on the command line.
// A nil field was not given and is prompted for.
type AddRequest struct {
	Name         *string
	Description  *string
	DefaultValue *string
	Required     bool
	ProfileName  *string
	// Source names the config file in messages
	Source string
}

func (r AddRequest) profileName() string {
	if r.ProfileName == nil {
		return ""
	}
	return *r.ProfileName
}

// AddVariable resolves req into a variable, prompting for missing fields,
// merges it into the addressed profile and returns the updated config.
// cfg itself is left untouched.
func AddVariable(cfg Config, req AddRequest, in Interactor) (Config, error) {
	name := req.profileName()
	p, err := cfg.Lookup(name, req.Source)
	if err != nil {
		return Config{}, err
	}

	candidate, err := resolveVariable(req, in)
	if err != nil {
		return Config{}, err
	}

	merged, err := Merge(p, candidate, in)
	if err != nil {
		return Config{}, err
	}

	return cfg.Put(name, merged), nil
}

// AddProfile returns cfg with a new empty profile called name
func AddProfile(cfg Config, name string) (Config, error) {
	if IsDefault(name) {
		return Config{}, apperr.Validation("add profile", apperr.ErrReservedName,
			fmt.Sprintf("%q is reserved for the default profile.", DefaultName))
	}
	if cfg.HasProfile(name) {
		return Config{}, apperr.Validation("add profile", apperr.ErrProfileExists,
			fmt.Sprintf("Profile, %q, already exists.", name))
	}
	return cfg.UpsertProfile(New(name)), nil
}

func resolveVariable(req AddRequest, in Interactor) (EnvironmentVariable, error) {
	v := EnvironmentVariable{Required: req.Required}

	if req.Name != nil && *req.Name != "" {
		v.Name = *req.Name
	} else {
		name, err := in.Required("Variable name: ")
		if err != nil {
			return EnvironmentVariable{}, fmt.Errorf("reading variable name: %w", err)
		}
		v.Name = name
	}

	description, err := optionalField(req.Description, in, "Description: ")
	if err != nil {
		return EnvironmentVariable{}, fmt.Errorf("reading description: %w", err)
	}
	v.Description = description

	defaultValue, err := optionalField(req.DefaultValue, in, "Default value: ")
	if err != nil {
		return EnvironmentVariable{}, fmt.Errorf("reading default value: %w", err)
	}
	v.DefaultValue = defaultValue

	return v, nil
}

// optionalField uses the given value, where empty means none, or prompts
func optionalField(given *string, in Interactor, label string) (string, error) {
	if given != nil {
		return *given, nil
	}
	value, _, err := in.Optional(label)
	return value, err
}

// Lookup is Profile with a not-found error naming how to create the profile
// in the config file at source
func (c Config) Lookup(name, source string) (Profile, error) {
	p, ok := c.Profile(name)
	if !ok {
		return Profile{}, notFound(name, source)
	}
	return p, nil
}

func notFound(name, source string) error {
	target := "default profile"
	if !IsDefault(name) {
		target = "a profile named " + name
	}
	return apperr.Validation("lookup profile", apperr.ErrProfileNotFound,
		fmt.Sprintf("Could not find %s.", target),
		fmt.Sprintf("Add it with \"dot-dev profile add %s -f %s\"", name, source),
	)
}
