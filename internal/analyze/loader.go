package analyze

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is a serialized front-end state: the language baseline, every
// declared type and the marked declarations. It stands in for a live
// semantic model in tests and offline runs.
type Snapshot struct {
	LanguageVersion int           `yaml:"language_version"`
	External        []TypeID      `yaml:"external"`
	Types           []TypeInfo    `yaml:"types"`
	Declarations    []Declaration `yaml:"declarations"`
}

// LoadSnapshot loads and parses a YAML snapshot file from the given path.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	return ParseSnapshot(data)
}

// ParseSnapshot parses YAML data into a Snapshot.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot

	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot YAML: %w", err)
	}

	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in values the snapshot may leave out.
func applyDefaults(s *Snapshot) {
	for i := range s.Types {
		t := &s.Types[i]
		if t.Name == "" {
			t.Name = t.ID.SimpleName()
		}

		if t.Keyword == "" {
			t.Keyword = "class"
		}
	}

	for i := range s.Declarations {
		d := &s.Declarations[i]
		if d.Kind == "" {
			d.Kind = DeclMethod
		}

		if d.Key == "" {
			d.Key = fmt.Sprintf("%s#%d", d.Location.File, i)
		}
	}
}

// Graph builds the TypeGraph described by the snapshot.
func (s *Snapshot) Graph() *TypeGraph {
	g := NewTypeGraph()
	g.AddExternal(s.External...)

	for i := range s.Types {
		g.Add(&s.Types[i])
	}

	return g
}
