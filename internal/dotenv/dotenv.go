// Package dotenv reads and writes KEY=value files for a profile.
package dotenv

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/cmdln/dot-dev/internal/apperr"
	"github.com/cmdln/dot-dev/internal/profile"
)

// Entry is one line of a generated file
type Entry struct {
	Name    string
	Value   string
	Comment string
}

// Source supplies a value for a variable that the existing file lacks.
// ok is false when the variable should be left out.
type Source func(v profile.EnvironmentVariable) (value string, ok bool, err error)

func init() {
	// KEY=value without spaces around "=", as shells and dotenv loaders expect
	ini.PrettyFormat = false
}

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		Loose:               true,
		IgnoreInlineComment: true,
	}
}

// Read returns the entries already present in the file at path, in file
// order. A missing file yields no entries.
func Read(path string) ([]Entry, error) {
	cfg, err := ini.LoadSources(loadOptions(), path)
	if err != nil {
		return nil, apperr.IO("read env file", fmt.Errorf("%s: %w", path, err))
	}
	var entries []Entry
	for _, key := range cfg.Section(ini.DefaultSection).Keys() {
		entries = append(entries, Entry{
			Name:    key.Name(),
			Value:   key.String(),
			Comment: stripComment(key.Comment),
		})
	}
	return entries, nil
}

// stripComment removes the comment markers ini keeps on each line
func stripComment(comment string) string {
	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#;"))
	}
	return strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
}

// Resolve walks every variable of p in order. Values already in existing are
// kept; the rest are asked of src. Variables appearing twice are emitted once.
// Existing entries p does not define follow, in their original order.
func Resolve(p profile.Profile, existing []Entry, src Source) ([]Entry, error) {
	byName := make(map[string]Entry, len(existing))
	for _, e := range existing {
		byName[e.Name] = e
	}

	var entries []Entry
	seen := make(map[string]bool)

	for _, v := range p.Variables() {
		if seen[v.Name] {
			continue
		}
		seen[v.Name] = true

		comment := v.Description
		old, ok := byName[v.Name]
		value := old.Value
		if ok {
			if comment == "" {
				comment = old.Comment
			}
		} else {
			var err error
			value, ok, err = src(v)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		entries = append(entries, Entry{Name: v.Name, Value: value, Comment: comment})
	}

	for _, e := range existing {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		entries = append(entries, e)
	}
	return entries, nil
}

// Write stores entries at path as KEY=value lines, descriptions as # comments
func Write(path string, entries []Entry) error {
	cfg := ini.Empty(loadOptions())
	section := cfg.Section(ini.DefaultSection)
	for _, e := range entries {
		key, err := section.NewKey(e.Name, e.Value)
		if err != nil {
			return apperr.Validation("write env file", err, fmt.Sprintf("Invalid variable name %q", e.Name))
		}
		// Comments are written line by line and must not contain blank lines.
		if comment := strings.Join(strings.Fields(e.Comment), " "); comment != "" {
			key.Comment = "# " + comment
		}
	}

	if err := cfg.SaveTo(path); err != nil {
		return apperr.IO("write env file", fmt.Errorf("%s: %w", path, err))
	}
	return nil
}
