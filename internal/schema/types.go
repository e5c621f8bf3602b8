// Package schema holds the entity declarations that drive code generation:
// field descriptors, entity definitions, the per-entity rule table and the
// read-only Registry built from them.
package schema

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldType is the semantic type of a field.
type FieldType int

const (
	TypeInvalid FieldType = iota
	TypeInteger
	TypeText
	TypeTimestamp
)

// String returns the declaration spelling of the type.
func (t FieldType) String() string {
	switch t {
	case TypeInteger:
		return "int"
	case TypeText:
		return "string"
	case TypeTimestamp:
		return "timestamp"
	default:
		return "invalid"
	}
}

// ParseFieldType maps a declared type name to a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer":
		return TypeInteger, nil
	case "string", "text":
		return TypeText, nil
	case "time", "timestamp", "datetime":
		return TypeTimestamp, nil
	default:
		return TypeInvalid, fmt.Errorf("unknown type %q (valid: int, string, timestamp)", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *FieldType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseFieldType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t FieldType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Field describes one entity field.
type Field struct {
	Property string    `yaml:"property"`
	Type     FieldType `yaml:"type"`
	Nullable bool      `yaml:"nullable,omitempty"`
	Column   string    `yaml:"column"`
}

// Entity is a named, ordered list of fields mapped onto a table.
type Entity struct {
	Name   string  `yaml:"name"`
	Table  string  `yaml:"table,omitempty"`
	Fields []Field `yaml:"fields"`
}

// Field returns the field with the given property name.
func (e Entity) Field(property string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Property == property {
			return f, true
		}
	}
	return Field{}, false
}

func (e Entity) clone() Entity {
	e.Fields = slices.Clone(e.Fields)
	return e
}

// RuleKind names a validation rule.
type RuleKind string

const (
	// RuleRequired rejects an empty text field.
	RuleRequired RuleKind = "required"
	// RuleEmail rejects an empty or malformed email address.
	RuleEmail RuleKind = "email"
	// RuleOneOf rejects a text value outside Values.
	RuleOneOf RuleKind = "one_of"
)

// HelperKind names a generated convenience method.
type HelperKind string

const (
	// HelperNotNull reports whether a nullable field is set.
	HelperNotNull HelperKind = "not_null"
	// HelperFieldsEqual reports whether two fields hold the same value.
	HelperFieldsEqual HelperKind = "fields_equal"
	// HelperRelation is a derived ID collection that is always empty until
	// relationship loading exists. Contains optionally names a membership
	// predicate built on top of it.
	HelperRelation HelperKind = "relation"
)

// ValidationRule is one entity-specific check emitted into Validate.
type ValidationRule struct {
	Kind    RuleKind `yaml:"kind"`
	Field   string   `yaml:"field"`
	Values  []string `yaml:"values,omitempty,flow"`
	Message string   `yaml:"message"`
}

// Helper is one entity-specific method emitted next to the accessors.
type Helper struct {
	Kind     HelperKind `yaml:"kind"`
	Name     string     `yaml:"name"`
	Fields   []string   `yaml:"fields,omitempty,flow"`
	Contains string     `yaml:"contains,omitempty"`
}

// Rules is the special-case rule set of one entity.
type Rules struct {
	Validate []ValidationRule `yaml:"validate,omitempty"`
	Helpers  []Helper         `yaml:"helpers,omitempty"`
}

// IsZero reports whether no rules are declared.
func (r Rules) IsZero() bool {
	return len(r.Validate) == 0 && len(r.Helpers) == 0
}

func (r Rules) clone() Rules {
	out := Rules{
		Validate: slices.Clone(r.Validate),
		Helpers:  slices.Clone(r.Helpers),
	}
	for i := range out.Validate {
		out.Validate[i].Values = slices.Clone(out.Validate[i].Values)
	}
	for i := range out.Helpers {
		out.Helpers[i].Fields = slices.Clone(out.Helpers[i].Fields)
	}
	return out
}

// Declaration is the on-disk shape of a schema: the entity list in
// declaration order plus the out-of-band rule table keyed by entity name.
type Declaration struct {
	Entities []Entity         `yaml:"entities"`
	Rules    map[string]Rules `yaml:"rules,omitempty"`
}
