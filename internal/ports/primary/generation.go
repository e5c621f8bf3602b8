// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// GenerationService defines the primary port for code generation.
type GenerationService interface {
	// Generate renders every file for a schema and writes them through the
	// file sink. Nothing is written when the schema is invalid.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// RenderMapping returns the entity-to-table mapping document of a schema.
	RenderMapping(ctx context.Context, req SchemaRequest) (string, error)

	// RenderEntity renders the source of an ad-hoc single-entity schema.
	RenderEntity(ctx context.Context, req RenderEntityRequest) (*RenderedFile, error)

	// CheckSchema loads and validates a schema and summarises it.
	CheckSchema(ctx context.Context, req SchemaRequest) (*SchemaSummary, error)
}

// GenerateRequest contains parameters for a generation run.
type GenerateRequest struct {
	SchemaPath string // empty selects the embedded default schema
	DryRun     bool   // render only, write nothing
}

// GenerateResponse contains the result of a generation run.
type GenerateResponse struct {
	Files     []GeneratedFile
	Written   bool
	NextSteps []string
}

// GeneratedFile describes one rendered file.
type GeneratedFile struct {
	Path string
	Size int
}

// SchemaRequest selects a schema.
type SchemaRequest struct {
	SchemaPath string
}

// RenderEntityRequest describes an ad-hoc entity in the --fields DSL.
type RenderEntityRequest struct {
	Name   string
	Fields string   // "id:int,email:string,deleted_at:time?"
	Enums  []string // "role=admin|staff"
}

// RenderedFile is rendered source that is not written anywhere.
type RenderedFile struct {
	Path    string
	Content string
}

// SchemaSummary describes a valid schema.
type SchemaSummary struct {
	Entities []EntitySummary
}

// EntitySummary describes one entity of a valid schema.
type EntitySummary struct {
	Name    string
	Table   string
	Fields  int
	Rules   int
	Helpers int
}
