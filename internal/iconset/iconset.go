// Package iconset holds the table mapping icon reference prefixes to the folders
// of the icon library.
package iconset

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/iconprune/pkg/iconprune"
)

//go:embed iconsets.yaml
var builtinDocument []byte

// Set is one icon set known to the table.
type Set struct {
	Prefix string `yaml:"prefix"`
	Folder string `yaml:"folder"`
}

type document struct {
	Sets []Set `yaml:"sets"`
}

// Table maps a prefix token to its folder. A Table is read-only once built.
type Table struct {
	folders map[string]string
	sets    []Set
}

var builtin = mustParse(builtinDocument)

// Builtin returns the table compiled into the binary.
func Builtin() Table {
	return builtin
}

// NewTable builds a table from sets. Prefixes and folders must be non-empty and
// prefixes unique.
func NewTable(sets ...Set) (Table, error) {
	t := Table{folders: make(map[string]string, len(sets))}
	for _, s := range sets {
		if s.Prefix == "" || s.Folder == "" {
			return Table{}, fmt.Errorf("icon set %+v: prefix and folder are required", s)
		}
		if _, dup := t.folders[s.Prefix]; dup {
			return Table{}, fmt.Errorf("duplicate icon set prefix %q", s.Prefix)
		}
		t.folders[s.Prefix] = s.Folder
		t.sets = append(t.sets, s)
	}
	sort.Slice(t.sets, func(i, j int) bool { return t.sets[i].Prefix < t.sets[j].Prefix })
	return t, nil
}

// Parse decodes a YAML table document.
func Parse(data []byte) (Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Table{}, fmt.Errorf("failed to parse icon set table: %w", err)
	}
	return NewTable(doc.Sets...)
}

func mustParse(data []byte) Table {
	t, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Folder returns the folder for prefix. An unknown prefix yields an error
// wrapping iconprune.ErrUnknownPrefix.
func (t Table) Folder(prefix string) (string, error) {
	folder, ok := t.folders[prefix]
	if !ok {
		return "", fmt.Errorf("%w: %q", iconprune.ErrUnknownPrefix, prefix)
	}
	return folder, nil
}

// Sets returns the table entries ordered by prefix.
func (t Table) Sets() []Set {
	out := make([]Set, len(t.sets))
	copy(out, t.sets)
	return out
}

// Len returns the number of icon sets.
func (t Table) Len() int {
	return len(t.sets)
}
