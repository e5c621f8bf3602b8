// Package scaffold renders Go entity files and Markdown documents from a
// schema registry.
package scaffold

// EntitySpec is the template view of one entity.
type EntitySpec struct {
	Package       string   // generated package name: "models"
	RuntimeImport string   // import path of the rowmap runtime
	RuntimeAlias  bool     // whether the runtime import needs an explicit name
	StdImports    []string // sorted standard library imports
	Name          string   // PascalCase: "ProjectMember"
	Plural        string   // "ProjectMembers"
	Table         string   // "projectmembers"
	Receiver      string   // "p"
	Fields        []FieldSpec
	Checks        []CheckSpec
	Helpers       []HelperSpec
}

// FieldSpec is the template view of one field.
type FieldSpec struct {
	Property string // schema name: "websiteUrl"
	Column   string // "website_url"
	Ident    string // struct field: "websiteURL"
	Method   string // getter: "WebsiteURL"
	Param    string // setter parameter name
	GoType   string // "*string"
	Read     string // expression reading the field from row
	Write    string // expression producing the row value
}

// CheckSpec is one Validate branch: Message is reported when Cond holds.
type CheckSpec struct {
	Cond    string
	Message string
}

// HelperSpec is one rendered helper method.
type HelperSpec struct {
	Doc       string
	Signature string
	Body      string
}

// DocSpec is the template view of the Markdown documents.
type DocSpec struct {
	Title       string
	Package     string
	ModelsDir   string
	MappingFile string
	Generated   string
	Entities    []DocEntity
}

// DocEntity is one entity section of a document.
type DocEntity struct {
	Name   string
	Table  string
	File   string
	Fields []DocField
}

// DocField is one mapping table row.
type DocField struct {
	Property string
	Column   string
	Type     string // semantic type, "?"-prefixed when nullable
}

// GeneratedFile is a rendered file.
type GeneratedFile struct {
	Path    string // slash-separated, relative to the output directory
	Content string
}

// GeneratorResult contains the result of a full generation run.
type GeneratorResult struct {
	Files     []GeneratedFile
	NextSteps []string
}
