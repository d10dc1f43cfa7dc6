package profile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdln/dot-dev/internal/apperr"
)

func answer(replace bool) ConfirmFunc {
	return func(string) (bool, error) { return replace, nil }
}

func mustNotAsk(t *testing.T) ConfirmFunc {
	return func(q string) (bool, error) {
		t.Fatalf("unexpected question %q", q)
		return false, nil
	}
}

func vars(names ...string) []Definition {
	defs := make([]Definition, 0, len(names))
	for _, n := range names {
		defs = append(defs, VariableDefinition(EnvironmentVariable{Name: n}))
	}
	return defs
}

func TestMerge_NoCollision_Appends(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("%d definitions", n), func(t *testing.T) {
			var names []string
			for i := 0; i < n; i++ {
				names = append(names, fmt.Sprintf("VAR_%d", i))
			}
			p := New("dev").WithDefinitions(vars(names...))
			candidate := EnvironmentVariable{Name: "NEW", Required: true}

			got, err := Merge(p, candidate, mustNotAsk(t))
			require.NoError(t, err)
			require.Len(t, got.Definitions, n+1)
			assert.Equal(t, p.Definitions, got.Definitions[:n])
			assert.Equal(t, candidate, *got.Definitions[n].Variable)
			assert.Len(t, p.Definitions, n, "input profile must not change")
		})
	}
}

func TestMerge_DeclinedReplace_IsIdempotent(t *testing.T) {
	p := New("dev").WithDefinitions(vars("A", "B"))

	got, err := Merge(p, EnvironmentVariable{Name: "A", DefaultValue: "x"}, answer(false))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestMerge_Replace_MovesToEnd(t *testing.T) {
	p := New("dev").WithDefinitions(vars("A", "B"))
	candidate := EnvironmentVariable{Name: "A", DefaultValue: "x"}

	var asked string
	got, err := Merge(p, candidate, ConfirmFunc(func(q string) (bool, error) {
		asked = q
		return true, nil
	}))
	require.NoError(t, err)

	assert.Equal(t, "A is already defined, replace it? ", asked)
	assert.Equal(t, []Definition{
		VariableDefinition(EnvironmentVariable{Name: "B"}),
		VariableDefinition(candidate),
	}, got.Definitions)
	assert.Equal(t, vars("A", "B"), p.Definitions, "input profile must not change")
}

func TestMerge_Replace_RemovesEveryDuplicate(t *testing.T) {
	p := New("dev").WithDefinitions(vars("A", "B", "A"))

	got, err := Merge(p, EnvironmentVariable{Name: "A", Required: true}, answer(true))
	require.NoError(t, err)
	require.Len(t, got.Definitions, 2)
	assert.Equal(t, "B", got.Definitions[0].Variable.Name)
	assert.True(t, got.Definitions[1].Variable.Required)
}

func TestMerge_GroupMembersDoNotCollide(t *testing.T) {
	p := New("dev").WithDefinitions([]Definition{
		GroupDefinition("db", EnvironmentVariable{Name: "A"}),
	})

	got, err := Merge(p, EnvironmentVariable{Name: "A"}, mustNotAsk(t))
	require.NoError(t, err)
	require.Len(t, got.Definitions, 2)
	assert.NotNil(t, got.Definitions[0].Group)
	assert.True(t, got.Definitions[1].IsVariable("A"))
}

func TestMerge_NameMatchIsCaseSensitive(t *testing.T) {
	p := New("dev").WithDefinitions(vars("path"))

	got, err := Merge(p, EnvironmentVariable{Name: "PATH"}, mustNotAsk(t))
	require.NoError(t, err)
	assert.Len(t, got.Definitions, 2)
}

func TestMerge_InterruptionPropagates(t *testing.T) {
	p := New("dev").WithDefinitions(vars("A"))

	got, err := Merge(p, EnvironmentVariable{Name: "A"}, ConfirmFunc(func(string) (bool, error) {
		return false, apperr.Interrupted("choose")
	}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInterrupted))
	assert.Equal(t, Profile{}, got)
}
