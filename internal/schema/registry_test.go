package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widget(fields ...Field) Entity {
	if len(fields) == 0 {
		fields = []Field{
			{Property: "id", Type: TypeInteger, Column: "id"},
			{Property: "name", Type: TypeText, Column: "name"},
			{Property: "archivedAt", Type: TypeTimestamp, Nullable: true, Column: "archived_at"},
		}
	}
	return Entity{Name: "Widget", Fields: fields}
}

func problemsOf(t *testing.T, err error) []string {
	t.Helper()
	var schemaErr *Error
	require.True(t, errors.As(err, &schemaErr), "expected *schema.Error, got %v", err)
	out := make([]string, len(schemaErr.Problems))
	for i, p := range schemaErr.Problems {
		out[i] = p.String()
	}
	return out
}

func assertProblem(t *testing.T, err error, substr string) {
	t.Helper()
	for _, p := range problemsOf(t, err) {
		if strings.Contains(p, substr) {
			return
		}
	}
	t.Errorf("no problem containing %q in %v", substr, err)
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(Declaration{
		Entities: []Entity{widget(), {Name: "Gadget", Table: "gadget_tbl", Fields: []Field{{Property: "id", Type: TypeInteger, Column: "id"}}}},
		Rules: map[string]Rules{
			"Widget": {
				Validate: []ValidationRule{{Kind: RuleRequired, Field: "name", Message: "Name is required."}},
				Helpers:  []Helper{{Kind: HelperNotNull, Name: "IsArchived", Fields: []string{"archivedAt"}}},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"Widget", "Gadget"}, reg.Names())

	w, ok := reg.Entity("Widget")
	require.True(t, ok)
	assert.Equal(t, "widgets", w.Table)

	g, ok := reg.Entity("Gadget")
	require.True(t, ok)
	assert.Equal(t, "gadget_tbl", g.Table)

	_, ok = reg.Entity("Missing")
	assert.False(t, ok)

	assert.Len(t, reg.Rules("Widget").Validate, 1)
	assert.True(t, reg.Rules("Gadget").IsZero())
}

func TestRegistryIsReadOnly(t *testing.T) {
	reg, err := NewRegistry(Declaration{Entities: []Entity{widget()}})
	require.NoError(t, err)

	entities := reg.Entities()
	entities[0].Fields[0].Property = "mutated"
	entities[0].Name = "Other"

	w, ok := reg.Entity("Widget")
	require.True(t, ok)
	assert.Equal(t, "id", w.Fields[0].Property)
}

func TestNewRegistryReportsEveryProblem(t *testing.T) {
	_, err := NewRegistry(Declaration{
		Entities: []Entity{
			widget(
				Field{Property: "id", Type: TypeInteger, Column: "id"},
				Field{Property: "id", Type: TypeText, Column: "other_id"},
				Field{Property: "code", Type: TypeText, Column: "id"},
				Field{Property: "", Type: TypeText, Column: "blank"},
				Field{Property: "label", Column: "label"},
				Field{Property: "note", Type: TypeText},
			),
			{Name: "Widget", Fields: []Field{{Property: "id", Type: TypeInteger, Column: "id"}}},
			{Name: "lower", Fields: []Field{{Property: "id", Type: TypeInteger, Column: "id"}}},
			{Name: "Empty"},
		},
	})
	require.Error(t, err)

	assertProblem(t, err, "[Widget] id: duplicate property name")
	assertProblem(t, err, `duplicate column "id"`)
	assertProblem(t, err, "field 4 has an empty property name")
	assertProblem(t, err, "[Widget] label: field type is missing")
	assertProblem(t, err, "[Widget] note: column name is empty")
	assertProblem(t, err, "[Widget]: duplicate entity name")
	assertProblem(t, err, "[lower]: entity name must be an exported Go identifier")
	assertProblem(t, err, "[Empty]: entity declares no fields")
	assert.Contains(t, err.Error(), "invalid schema (")
}

func TestNewRegistryAcceptsKeywordProperties(t *testing.T) {
	reg, err := NewRegistry(Declaration{Entities: []Entity{widget(
		Field{Property: "id", Type: TypeInteger, Column: "id"},
		Field{Property: "type", Type: TypeText, Column: "type"},
		Field{Property: "default", Type: TypeText, Nullable: true, Column: "default_value"},
	)}})
	require.NoError(t, err)

	w, ok := reg.Entity("Widget")
	require.True(t, ok)
	assert.Equal(t, "type", w.Fields[1].Property)
}

func TestNewRegistryRejectsUnusableNames(t *testing.T) {
	_, err := NewRegistry(Declaration{Entities: []Entity{
		widget(
			Field{Property: "_", Type: TypeInteger, Column: "underscore"},
			Field{Property: "_1", Type: TypeInteger, Column: "one"},
			Field{Property: "größe", Type: TypeText, Column: "groesse"},
			Field{Property: "2fa", Type: TypeText, Column: "two_fa"},
		),
		{Name: "Ärger", Fields: []Field{{Property: "id", Type: TypeInteger, Column: "id"}}},
	}})
	require.Error(t, err)

	for _, prop := range []string{"_", "_1", "größe", "2fa"} {
		assertProblem(t, err, "[Widget] "+prop+": property name is not a valid identifier")
	}
	assertProblem(t, err, "[Ärger]: entity name must be an exported Go identifier")
}

func TestNewRegistryRejectsAccessorCollisions(t *testing.T) {
	_, err := NewRegistry(Declaration{Entities: []Entity{widget(
		Field{Property: "toMap", Type: TypeText, Column: "to_map"},
		Field{Property: "userId", Type: TypeInteger, Column: "user_id"},
		Field{Property: "userID", Type: TypeInteger, Column: "user_id2"},
	)}})
	require.Error(t, err)

	assertProblem(t, err, "accessor ToMap collides with generated method ToMap")
	assertProblem(t, err, "struct field userID collides with property userId")
}

func TestNewRegistryRejectsPackageLevelCollisions(t *testing.T) {
	_, err := NewRegistry(Declaration{Entities: []Entity{
		widget(),
		{Name: "WidgetFromMap", Fields: []Field{{Property: "id", Type: TypeInteger, Column: "id"}}},
	}})
	require.Error(t, err)
	assertProblem(t, err, "generated identifier WidgetFromMap collides with entity")
}

func TestNewRegistryRuleChecks(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
		want  string
	}{
		{
			name:  "unknown field",
			rules: Rules{Validate: []ValidationRule{{Kind: RuleRequired, Field: "missing", Message: "m"}}},
			want:  "required rule refers to an unknown field",
		},
		{
			name:  "integer field",
			rules: Rules{Validate: []ValidationRule{{Kind: RuleEmail, Field: "id", Message: "m"}}},
			want:  "email rule requires a non-nullable string field",
		},
		{
			name:  "empty message",
			rules: Rules{Validate: []ValidationRule{{Kind: RuleRequired, Field: "name"}}},
			want:  "required rule has an empty message",
		},
		{
			name:  "unknown kind",
			rules: Rules{Validate: []ValidationRule{{Kind: "max", Field: "name", Message: "m"}}},
			want:  `unknown validation rule "max"`,
		},
		{
			name:  "empty enumeration",
			rules: Rules{Validate: []ValidationRule{{Kind: RuleOneOf, Field: "name", Message: "m"}}},
			want:  "one_of rule declares no values",
		},
		{
			name:  "duplicate enumeration value",
			rules: Rules{Validate: []ValidationRule{{Kind: RuleOneOf, Field: "name", Values: []string{"a", "a"}, Message: "m"}}},
			want:  `one_of rule repeats value "a"`,
		},
		{
			name:  "blank enumeration value",
			rules: Rules{Validate: []ValidationRule{{Kind: RuleOneOf, Field: "name", Values: []string{""}, Message: "m"}}},
			want:  "one_of rule contains an empty value",
		},
		{
			name:  "values on required",
			rules: Rules{Validate: []ValidationRule{{Kind: RuleRequired, Field: "name", Values: []string{"a"}, Message: "m"}}},
			want:  "required rule does not take values",
		},
		{
			name:  "not_null on non-nullable",
			rules: Rules{Helpers: []Helper{{Kind: HelperNotNull, Name: "HasName", Fields: []string{"name"}}}},
			want:  "helper HasName needs a nullable field",
		},
		{
			name:  "fields_equal type mismatch",
			rules: Rules{Helpers: []Helper{{Kind: HelperFieldsEqual, Name: "Same", Fields: []string{"id", "name"}}}},
			want:  "helper Same needs two non-nullable fields of the same type",
		},
		{
			name:  "fields_equal one field",
			rules: Rules{Helpers: []Helper{{Kind: HelperFieldsEqual, Name: "Same", Fields: []string{"id"}}}},
			want:  "helper Same needs exactly two distinct fields",
		},
		{
			name:  "relation with fields",
			rules: Rules{Helpers: []Helper{{Kind: HelperRelation, Name: "PartIDs", Fields: []string{"id"}}}},
			want:  "helper PartIDs does not take fields",
		},
		{
			name:  "helper collides with accessor",
			rules: Rules{Helpers: []Helper{{Kind: HelperRelation, Name: "Name"}}},
			want:  "helper Name collides with another generated method",
		},
		{
			name:  "helper collides with contains",
			rules: Rules{Helpers: []Helper{{Kind: HelperRelation, Name: "PartIDs", Contains: "PartIDs"}}},
			want:  "helper PartIDs collides with another generated method",
		},
		{
			name:  "unexported helper",
			rules: Rules{Helpers: []Helper{{Kind: HelperRelation, Name: "partIDs"}}},
			want:  `helper name "partIDs" must be an exported Go identifier`,
		},
		{
			name:  "unknown helper kind",
			rules: Rules{Helpers: []Helper{{Kind: "count", Name: "Count"}}},
			want:  `unknown helper kind "count"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(Declaration{
				Entities: []Entity{widget()},
				Rules:    map[string]Rules{"Widget": tt.rules},
			})
			require.Error(t, err)
			assertProblem(t, err, tt.want)
		})
	}
}

func TestNewRegistryRejectsRulesForUnknownEntity(t *testing.T) {
	_, err := NewRegistry(Declaration{
		Entities: []Entity{widget()},
		Rules:    map[string]Rules{"Gizmo": {}},
	})
	require.Error(t, err)
	assertProblem(t, err, "[Gizmo]: rules declared for unknown entity")
}
