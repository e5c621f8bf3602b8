package scaffold

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/example/stubgen/internal/naming"
	"github.com/example/stubgen/internal/schema"
)

// ParseFields parses the --fields DSL into schema fields. Columns are the
// snake_case form of the name.
// Format: "id:int,email:string,deleted_at:time?"
func ParseFields(fieldsStr string) ([]schema.Field, error) {
	if fieldsStr == "" {
		return nil, nil
	}

	var fields []schema.Field
	parts := strings.Split(fieldsStr, ",")

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field, err := parseField(part)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, nil
}

// parseField parses a single field specification.
// Format: "name:type" or "name:type?" for nullable
func parseField(spec string) (schema.Field, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return schema.Field{}, fmt.Errorf("invalid field spec %q: expected 'name:type'", spec)
	}

	name := strings.TrimSpace(parts[0])
	typeSpec := strings.TrimSpace(parts[1])

	if name == "" {
		return schema.Field{}, fmt.Errorf("invalid field spec %q: empty field name", spec)
	}

	// Check for nullable marker
	nullable := strings.HasSuffix(typeSpec, "?")
	if nullable {
		typeSpec = typeSpec[:len(typeSpec)-1]
	}

	fieldType, err := schema.ParseFieldType(typeSpec)
	if err != nil {
		return schema.Field{}, fmt.Errorf("invalid field spec %q: %w", spec, err)
	}

	return schema.Field{
		Property: naming.ToCamelCase(name),
		Type:     fieldType,
		Nullable: nullable,
		Column:   naming.ToSnakeCase(name),
	}, nil
}

// ParseEnum parses an --enum flag into a one_of rule.
// Format: "role=admin|staff|client"
func ParseEnum(enumStr string) (schema.ValidationRule, error) {
	name, list, ok := strings.Cut(enumStr, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return schema.ValidationRule{}, fmt.Errorf("invalid enum %q: expected 'field=a|b'", enumStr)
	}

	var values []string
	for _, part := range strings.Split(list, "|") {
		value := strings.TrimSpace(part)
		if value == "" {
			continue
		}

		// Validate enum value (lowercase alphanumeric + underscore)
		if !isValidIdentifier(value) {
			return schema.ValidationRule{}, fmt.Errorf("invalid enum value %q: must be lowercase alphanumeric with underscores", value)
		}

		values = append(values, value)
	}

	if len(values) < 2 {
		return schema.ValidationRule{}, fmt.Errorf("at least 2 enum values required, got %d", len(values))
	}

	property := naming.ToCamelCase(name)
	return schema.ValidationRule{
		Kind:    schema.RuleOneOf,
		Field:   property,
		Values:  values,
		Message: fmt.Sprintf("%s must be %s.", naming.Humanize(property), strings.Join(values, "|")),
	}, nil
}

var identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// isValidIdentifier checks if a string is a valid lowercase identifier.
func isValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// BuildDeclaration builds a single-entity declaration from parsed inputs.
func BuildDeclaration(name, fieldsStr string, enums []string) (schema.Declaration, error) {
	if name == "" {
		return schema.Declaration{}, fmt.Errorf("entity name is required")
	}

	fields, err := ParseFields(fieldsStr)
	if err != nil {
		return schema.Declaration{}, fmt.Errorf("failed to parse fields: %w", err)
	}

	entity := schema.Entity{
		Name:   naming.ToPascalCase(name),
		Fields: fields,
	}
	decl := schema.Declaration{Entities: []schema.Entity{entity}}

	var rules schema.Rules
	for _, e := range enums {
		rule, err := ParseEnum(e)
		if err != nil {
			return schema.Declaration{}, fmt.Errorf("failed to parse enum: %w", err)
		}
		rules.Validate = append(rules.Validate, rule)
	}
	if !rules.IsZero() {
		decl.Rules = map[string]schema.Rules{entity.Name: rules}
	}

	return decl, nil
}
