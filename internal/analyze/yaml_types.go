package analyze

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts the metadata form "Name" or "Name`Arity".
func (t *TypeID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected type name, got %v", node.Line, node.Kind)
	}

	id, err := ParseTypeID(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*t = id

	return nil
}

// MarshalYAML writes the metadata form.
func (t TypeID) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML accepts either a bare type name or a mapping:
//   - "App.Greeter"
//   - {id: App.Greeter, display: "global::App.Greeter", interfaces: [...], error: false}
func (r *TypeRef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var id TypeID
		if err := node.Decode(&id); err != nil {
			return err
		}

		*r = TypeRef{ID: id}

		return nil

	case yaml.MappingNode:
		var raw struct {
			ID         TypeID   `yaml:"id"`
			Display    string   `yaml:"display"`
			Error      bool     `yaml:"error"`
			Interfaces []TypeID `yaml:"interfaces"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}

		*r = TypeRef{ID: raw.ID, Display: raw.Display, IsError: raw.Error, Interfaces: raw.Interfaces}

		return nil

	default:
		return fmt.Errorf("line %d: expected type reference, got %v", node.Line, node.Kind)
	}
}
