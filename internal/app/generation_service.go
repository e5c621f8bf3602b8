package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/stubgen/internal/core/generation"
	"github.com/example/stubgen/internal/logger"
	"github.com/example/stubgen/internal/ports/primary"
	"github.com/example/stubgen/internal/scaffold"
	"github.com/example/stubgen/internal/schema"
	"github.com/example/stubgen/rowmap"
)

// SchemaLoader loads and validates a schema. An empty path selects the
// embedded default.
type SchemaLoader func(path string) (*schema.Registry, error)

// GenerationServiceImpl implements the GenerationService interface.
type GenerationServiceImpl struct {
	generator *scaffold.Generator
	executor  EffectExecutor
	load      SchemaLoader
	clock     rowmap.Clock
	log       *logger.Logger
}

// NewGenerationService creates a new GenerationService with injected dependencies.
func NewGenerationService(
	generator *scaffold.Generator,
	executor EffectExecutor,
	load SchemaLoader,
	clock rowmap.Clock,
	log *logger.Logger,
) *GenerationServiceImpl {
	if load == nil {
		load = schema.LoadFile
	}
	if clock == nil {
		clock = rowmap.SystemClock
	}
	if log == nil {
		log = logger.Nop()
	}
	return &GenerationServiceImpl{
		generator: generator,
		executor:  executor,
		load:      load,
		clock:     clock,
		log:       log.WithComponent("generation"),
	}
}

// Generate renders every file, checks the result, then writes it. Nothing
// is written unless rendering succeeded for every file.
func (s *GenerationServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	// 1. Load and validate the schema
	reg, err := s.loadSchema(req.SchemaPath)
	if err != nil {
		return nil, err
	}

	// 2. Render everything in memory
	result, err := s.generator.GenerateAll(reg, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to render: %w", err)
	}

	files := make([]generation.PlannedFile, len(result.Files))
	paths := make([]string, len(result.Files))
	for i, f := range result.Files {
		files[i] = generation.PlannedFile{Path: f.Path, Content: f.Content}
		paths[i] = f.Path
		s.log.Debugw("rendered file", "path", f.Path, "bytes", len(f.Content))
	}

	// 3. Check guard
	if guard := generation.CanWriteFiles(generation.WriteContext{Paths: paths}); !guard.Allowed {
		return nil, guard.Error()
	}

	// 4. Plan and execute writes
	plan := generation.GenerateWritePlan(generation.WritePlanInput{Files: files, DryRun: req.DryRun})
	if err := s.executor.Execute(ctx, plan.Effects()); err != nil {
		return nil, err
	}

	// 5. Return response
	resp := &primary.GenerateResponse{
		Written:   !req.DryRun,
		NextSteps: result.NextSteps,
	}
	for _, f := range result.Files {
		resp.Files = append(resp.Files, primary.GeneratedFile{Path: f.Path, Size: len(f.Content)})
	}
	return resp, nil
}

// RenderMapping returns the mapping document of a schema.
func (s *GenerationServiceImpl) RenderMapping(ctx context.Context, req primary.SchemaRequest) (string, error) {
	reg, err := s.loadSchema(req.SchemaPath)
	if err != nil {
		return "", err
	}

	file, err := s.generator.GenerateMapping(reg)
	if err != nil {
		return "", err
	}
	return file.Content, nil
}

// RenderEntity renders an ad-hoc entity described in the --fields DSL.
func (s *GenerationServiceImpl) RenderEntity(ctx context.Context, req primary.RenderEntityRequest) (*primary.RenderedFile, error) {
	decl, err := scaffold.BuildDeclaration(req.Name, req.Fields, req.Enums)
	if err != nil {
		return nil, err
	}

	reg, err := schema.NewRegistry(decl)
	if err != nil {
		return nil, err
	}

	entity, _ := reg.Entity(decl.Entities[0].Name)
	file, err := s.generator.GenerateEntity(entity, reg.Rules(entity.Name))
	if err != nil {
		return nil, err
	}

	return &primary.RenderedFile{Path: file.Path, Content: file.Content}, nil
}

// CheckSchema loads a schema and summarises it. Schema problems come back
// as a *schema.Error.
func (s *GenerationServiceImpl) CheckSchema(ctx context.Context, req primary.SchemaRequest) (*primary.SchemaSummary, error) {
	reg, err := s.loadSchema(req.SchemaPath)
	if err != nil {
		return nil, err
	}

	summary := &primary.SchemaSummary{}
	for _, e := range reg.Entities() {
		rules := reg.Rules(e.Name)
		summary.Entities = append(summary.Entities, primary.EntitySummary{
			Name:    e.Name,
			Table:   e.Table,
			Fields:  len(e.Fields),
			Rules:   len(rules.Validate),
			Helpers: len(rules.Helpers),
		})
	}
	return summary, nil
}

func (s *GenerationServiceImpl) loadSchema(path string) (*schema.Registry, error) {
	reg, err := s.load(path)
	if err != nil {
		var schemaErr *schema.Error
		if errors.As(err, &schemaErr) {
			s.log.Debugw("schema rejected", "path", path, "problems", len(schemaErr.Problems))
		}
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	s.log.Debugw("schema loaded", "path", path, "entities", reg.Len())
	return reg, nil
}
