package profile

import (
	"slices"
)

// DefaultName is how the default profile is shown and addressed on the command line
const DefaultName = "default"

// EnvironmentVariable describes one variable a profile expects
type EnvironmentVariable struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Required     bool   `json:"required"`
	DefaultValue string `json:"default_value,omitempty"`
}

// Group is a named, ordered set of variables
type Group struct {
	Name    string                `json:"name"`
	Members []EnvironmentVariable `json:"members"`
}

// Definition holds exactly one of Variable or Group. The JSON form is
// externally tagged: {"Variable": {...}} or {"Group": {...}}.
type Definition struct {
	Variable *EnvironmentVariable `json:"Variable,omitempty"`
	Group    *Group               `json:"Group,omitempty"`
}

// VariableDefinition wraps v as a Definition
func VariableDefinition(v EnvironmentVariable) Definition {
	return Definition{Variable: &v}
}

// GroupDefinition wraps a group of members as a Definition
func GroupDefinition(name string, members ...EnvironmentVariable) Definition {
	return Definition{Group: &Group{Name: name, Members: slices.Clone(members)}}
}

// IsVariable reports whether d is a single variable named name
func (d Definition) IsVariable(name string) bool {
	return d.Variable != nil && d.Variable.Name == name
}

// Variables returns the variables d contributes, in order
func (d Definition) Variables() []EnvironmentVariable {
	switch {
	case d.Variable != nil:
		return []EnvironmentVariable{*d.Variable}
	case d.Group != nil:
		return slices.Clone(d.Group.Members)
	default:
		return nil
	}
}

// clone copies the pointed-to values so the result shares nothing with d
func (d Definition) clone() Definition {
	var c Definition
	if d.Variable != nil {
		v := *d.Variable
		c.Variable = &v
	}
	if d.Group != nil {
		g := Group{Name: d.Group.Name, Members: slices.Clone(d.Group.Members)}
		c.Group = &g
	}
	return c
}

// Profile is a named, ordered set of definitions
type Profile struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Definitions []Definition `json:"definitions"`
}

// New returns an empty profile
func New(name string) Profile {
	return Profile{Name: name, Definitions: []Definition{}}
}

// WithDefinitions returns a copy of p holding defs
func (p Profile) WithDefinitions(defs []Definition) Profile {
	cloned := make([]Definition, 0, len(defs))
	for _, d := range defs {
		cloned = append(cloned, d.clone())
	}
	p.Definitions = cloned
	return p
}

// Append returns a copy of p with d added at the end
func (p Profile) Append(d Definition) Profile {
	return p.WithDefinitions(append(slices.Clone(p.Definitions), d))
}

// WithoutVariable returns a copy of p without any variable definition named name.
// Groups are left untouched.
func (p Profile) WithoutVariable(name string) Profile {
	kept := make([]Definition, 0, len(p.Definitions))
	for _, d := range p.Definitions {
		if !d.IsVariable(name) {
			kept = append(kept, d)
		}
	}
	return p.WithDefinitions(kept)
}

// HasVariable reports whether p has a top-level variable named name
func (p Profile) HasVariable(name string) bool {
	return slices.ContainsFunc(p.Definitions, func(d Definition) bool {
		return d.IsVariable(name)
	})
}

// Variables flattens every definition into its variables, group members included
func (p Profile) Variables() []EnvironmentVariable {
	var vars []EnvironmentVariable
	for _, d := range p.Definitions {
		vars = append(vars, d.Variables()...)
	}
	return vars
}
