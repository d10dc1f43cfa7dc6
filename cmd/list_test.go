package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/cmdln/dot-dev/internal/apperr"
	"github.com/cmdln/dot-dev/internal/profile"
)

func TestList(t *testing.T) {
	p := profile.New("").
		Append(profile.VariableDefinition(profile.EnvironmentVariable{Name: "API_URL", Required: true, DefaultValue: "http://localhost"})).
		Append(profile.GroupDefinition("db", profile.EnvironmentVariable{Name: "DB_HOST", Description: "Database host"}))
	path := writeConfig(t, profile.NewConfig().UpdateDefaultProfile(p))

	out, err := run(t, "", "list", "-f", path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, want := range []string{"Variables in the default profile:", "API_URL", "http://localhost", "[db]", "  DB_HOST", "Database host"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestList_Empty(t *testing.T) {
	path := writeConfig(t, profile.NewConfig().UpsertProfile(profile.New("work")))

	out, err := run(t, "", "ls", "-f", path, "-p", "work")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "No variables defined in profile work.") {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestList_MissingProfile(t *testing.T) {
	path := writeConfig(t, profile.NewConfig())

	_, err := run(t, "", "list", "-f", path, "-p", "home")
	if !errors.Is(err, apperr.ErrProfileNotFound) {
		t.Errorf("Expected profile not found, got %v", err)
	}
}

func TestDefinitionRows(t *testing.T) {
	defs := []profile.Definition{
		profile.VariableDefinition(profile.EnvironmentVariable{Name: "A"}),
		profile.GroupDefinition("g", profile.EnvironmentVariable{Name: "B", Required: true}),
	}

	rows := definitionRows(defs)
	expected := [][]string{
		{"A", "no", "-", "-"},
		{"[g]", "", "", ""},
		{"  B", "yes", "-", "-"},
	}
	if len(rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d", len(expected), len(rows))
	}
	for i := range expected {
		if strings.Join(rows[i], "|") != strings.Join(expected[i], "|") {
			t.Errorf("Row %d: expected %v, got %v", i, expected[i], rows[i])
		}
	}
}
