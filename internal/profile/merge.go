package profile

import (
	"fmt"
)

// Confirmer answers a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(question string) (bool, error)

func (f ConfirmFunc) Confirm(question string) (bool, error) {
	return f(question)
}

// ReplaceQuestion is asked when candidate collides with an existing variable
func ReplaceQuestion(name string) string {
	return fmt.Sprintf("%s is already defined, replace it? ", name)
}

// Merge adds candidate to p. When a variable of the same name already exists
// c decides: yes removes every variable with that name and appends candidate,
// no returns p unchanged. Group members never count as a collision. Any
// error from c, interruption included, is returned without a profile.
func Merge(p Profile, candidate EnvironmentVariable, c Confirmer) (Profile, error) {
	if !p.HasVariable(candidate.Name) {
		return p.Append(VariableDefinition(candidate)), nil
	}

	replace, err := c.Confirm(ReplaceQuestion(candidate.Name))
	if err != nil {
		return Profile{}, err
	}
	if !replace {
		return p, nil
	}

	return p.WithoutVariable(candidate.Name).Append(VariableDefinition(candidate)), nil
}
