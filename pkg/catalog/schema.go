package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// fieldError locates a schema violation inside a document
type fieldError struct {
	Field string
	Err   error
}

func (e *fieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *fieldError) Unwrap() error { return e.Err }

// prefixed nests err under parent, keeping the deepest field path
func prefixed(parent string, err error) error {
	var fe *fieldError
	if errors.As(err, &fe) {
		field := parent
		if fe.Field != "" {
			if strings.HasPrefix(fe.Field, "[") {
				field += fe.Field
			} else {
				field += "." + fe.Field
			}
		}
		return &fieldError{Field: field, Err: fe.Err}
	}
	return &fieldError{Field: parent, Err: err}
}

// fieldKey normalizes a mapping key so that camelCase, PascalCase,
// snake_case and kebab-case spellings compare equal.
func fieldKey(key string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(key))
}

type field struct {
	name     string
	required bool
	decode   func(*yaml.Node) error
}

// schema describes the fields accepted in one mapping node
type schema struct {
	fields  []field
	aliases map[string]string
}

func (s *schema) decode(node *yaml.Node) error {
	node = deref(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, kindName(node))
	}

	byKey := make(map[string]*field, len(s.fields))
	for i := range s.fields {
		byKey[fieldKey(s.fields[i].name)] = &s.fields[i]
	}

	seen := make(map[string]bool, len(s.fields))
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], deref(node.Content[i+1])

		key := fieldKey(keyNode.Value)
		if canonical, ok := s.aliases[key]; ok {
			key = fieldKey(canonical)
		}

		f, ok := byKey[key]
		if !ok {
			return &fieldError{Field: keyNode.Value, Err: fmt.Errorf("line %d: unknown field", keyNode.Line)}
		}
		if seen[key] {
			return &fieldError{Field: f.name, Err: fmt.Errorf("line %d: field defined more than once", keyNode.Line)}
		}
		seen[key] = true

		if isNull(valueNode) {
			if f.required {
				return &fieldError{Field: f.name, Err: fmt.Errorf("line %d: value is required", valueNode.Line)}
			}
			continue
		}
		if err := f.decode(valueNode); err != nil {
			return prefixed(f.name, err)
		}
	}

	for _, f := range s.fields {
		if f.required && !seen[fieldKey(f.name)] {
			return &fieldError{Field: f.name, Err: fmt.Errorf("line %d: required field is missing", node.Line)}
		}
	}

	return nil
}

// deref follows YAML aliases so anchored values decode like inline ones
func deref(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar " + node.ShortTag()
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}

func stringField(name string, dst *string) field {
	return field{name: name, required: true, decode: func(n *yaml.Node) error {
		if n.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: expected a string, got %s", n.Line, kindName(n))
		}
		*dst = n.Value
		return nil
	}}
}

func scalarField[T uint32 | int32](name string, dst *T) field {
	return field{name: name, required: true, decode: func(n *yaml.Node) error {
		if n.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: expected a number, got %s", n.Line, kindName(n))
		}
		if err := n.Decode(dst); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		return nil
	}}
}

func stringListField(name string, dst *[]string) field {
	return field{name: name, decode: func(n *yaml.Node) error {
		if n.Kind != yaml.SequenceNode {
			return fmt.Errorf("line %d: expected a list, got %s", n.Line, kindName(n))
		}
		values := make([]string, 0, len(n.Content))
		for i, item := range n.Content {
			item = deref(item)
			if item.Kind != yaml.ScalarNode || isNull(item) {
				return &fieldError{Field: fmt.Sprintf("[%d]", i), Err: fmt.Errorf("line %d: expected a string, got %s", item.Line, kindName(item))}
			}
			values = append(values, item.Value)
		}
		*dst = values
		return nil
	}}
}

var creatureAliases = map[string]string{
	"fraction": "faction",
	"atack":    "attack",
	"defense":  "defence",
}

func decodeCreature(node *yaml.Node) (CreatureDefinition, error) {
	var c CreatureDefinition
	s := schema{
		fields: []field{
			stringField("name", &c.Name),
			scalarField("level", &c.Level),
			stringField("type", &c.Type),
			stringField("faction", &c.Faction),
			scalarField("health", &c.Health),
			scalarField("attack", &c.Attack),
			scalarField("defence", &c.Defence),
			scalarField("minDamage", &c.MinDamage),
			scalarField("maxDamage", &c.MaxDamage),
			scalarField("initiative", &c.Initiative),
			scalarField("speed", &c.Speed),
			scalarField("morale", &c.Morale),
			scalarField("luck", &c.Luck),
			stringListField("abilities", &c.Abilities),
		},
		aliases: creatureAliases,
	}
	if err := s.decode(node); err != nil {
		return CreatureDefinition{}, err
	}
	return c, nil
}

func decodeAbility(node *yaml.Node) (AbilityDefinition, error) {
	var a AbilityDefinition
	s := schema{fields: []field{
		stringField("name", &a.Name),
		stringField("description", &a.Description),
	}}
	if err := s.decode(node); err != nil {
		return AbilityDefinition{}, err
	}
	return a, nil
}

// documentRoot unwraps the document node yaml.v3 produces for a parsed file
func documentRoot(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("document is empty")
	}
	return doc.Content[0], nil
}

// ParseCreatures decodes the creature definition list
func ParseCreatures(data []byte) ([]CreatureDefinition, error) {
	root, err := documentRoot(data)
	if err != nil {
		return nil, err
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list of creatures, got %s", root.Line, kindName(root))
	}

	defs := make([]CreatureDefinition, 0, len(root.Content))
	for i, item := range root.Content {
		def, err := decodeCreature(item)
		if err != nil {
			return nil, prefixed(fmt.Sprintf("[%d]", i), err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// ParseAbilities decodes the ability definitions keyed by id
func ParseAbilities(data []byte) (map[string]AbilityDefinition, error) {
	root, err := documentRoot(data)
	if err != nil {
		return nil, err
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of abilities, got %s", root.Line, kindName(root))
	}

	abilities := make(map[string]AbilityDefinition, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		id := root.Content[i].Value
		if _, exists := abilities[id]; exists {
			return nil, &fieldError{Field: id, Err: fmt.Errorf("line %d: ability defined more than once", root.Content[i].Line)}
		}
		def, err := decodeAbility(root.Content[i+1])
		if err != nil {
			return nil, prefixed(id, err)
		}
		abilities[id] = def
	}
	return abilities, nil
}

// ParseLocaleTable decodes a flat key to text mapping
func ParseLocaleTable(data []byte) (LocaleTable, error) {
	root, err := documentRoot(data)
	if err != nil {
		return nil, err
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of strings, got %s", root.Line, kindName(root))
	}

	table := make(LocaleTable, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], deref(root.Content[i+1])
		if _, exists := table[keyNode.Value]; exists {
			return nil, &fieldError{Field: keyNode.Value, Err: fmt.Errorf("line %d: key defined more than once", keyNode.Line)}
		}
		if valueNode.Kind != yaml.ScalarNode || isNull(valueNode) {
			return nil, &fieldError{Field: keyNode.Value, Err: fmt.Errorf("line %d: expected a string, got %s", valueNode.Line, kindName(valueNode))}
		}
		table[keyNode.Value] = valueNode.Value
	}
	return table, nil
}
