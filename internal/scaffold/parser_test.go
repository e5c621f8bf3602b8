package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/stubgen/internal/schema"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"empty", "", 0, false},
		{"single string", "name:string", 1, false},
		{"multiple fields", "name:string,count:int,seen:time", 3, false},
		{"with nullable", "name:string,due_at:time?", 2, false},
		{"trailing comma", "name:string,", 1, false},
		{"invalid type", "name:unknown", 0, true},
		{"invalid format", "namestring", 0, true},
		{"empty name", ":int", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := ParseFields(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, fields, tt.want)
		})
	}
}

func TestParseFieldTypes(t *testing.T) {
	fields, err := ParseFields("id:int,display_name:string,websiteUrl:string?,due_at:time?,createdAt:timestamp")
	require.NoError(t, err)

	assert.Equal(t, []schema.Field{
		{Property: "id", Type: schema.TypeInteger, Column: "id"},
		{Property: "displayName", Type: schema.TypeText, Column: "display_name"},
		{Property: "websiteUrl", Type: schema.TypeText, Nullable: true, Column: "website_url"},
		{Property: "dueAt", Type: schema.TypeTimestamp, Nullable: true, Column: "due_at"},
		{Property: "createdAt", Type: schema.TypeTimestamp, Column: "created_at"},
	}, fields)
}

func TestParseEnum(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"valid", "role=admin|staff|client", []string{"admin", "staff", "client"}, false},
		{"with spaces", "role = admin | staff", []string{"admin", "staff"}, false},
		{"too few", "role=admin", nil, true},
		{"invalid chars", "role=Admin|Staff", nil, true},
		{"missing field", "=a|b", nil, true},
		{"missing separator", "role", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := ParseEnum(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, schema.RuleOneOf, rule.Kind)
			assert.Equal(t, "role", rule.Field)
			assert.Equal(t, tt.want, rule.Values)
		})
	}
}

func TestParseEnumMessage(t *testing.T) {
	rule, err := ParseEnum("account_state=open|closed")
	require.NoError(t, err)
	assert.Equal(t, "accountState", rule.Field)
	assert.Equal(t, "Account state must be open|closed.", rule.Message)
}

func TestBuildDeclaration(t *testing.T) {
	decl, err := BuildDeclaration("widget", "id:int,name:string,role:string", []string{"role=admin|viewer"})
	require.NoError(t, err)

	require.Len(t, decl.Entities, 1)
	assert.Equal(t, "Widget", decl.Entities[0].Name)
	assert.Len(t, decl.Entities[0].Fields, 3)
	require.Contains(t, decl.Rules, "Widget")
	assert.Len(t, decl.Rules["Widget"].Validate, 1)

	reg, err := schema.NewRegistry(decl)
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget"}, reg.Names())
}

func TestBuildDeclarationErrors(t *testing.T) {
	_, err := BuildDeclaration("", "id:int", nil)
	assert.Error(t, err)

	_, err = BuildDeclaration("widget", "id:float", nil)
	assert.ErrorContains(t, err, "failed to parse fields")

	_, err = BuildDeclaration("widget", "id:int", []string{"role"})
	assert.ErrorContains(t, err, "failed to parse enum")
}
