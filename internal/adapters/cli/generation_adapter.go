// Package cli holds the output side of the stubgen commands: it calls the
// generation service and formats results and schema problems for a terminal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/stubgen/internal/ports/primary"
	"github.com/example/stubgen/internal/schema"
)

// GenerationAdapter turns command invocations into GenerationService calls
// and prints their results to out.
type GenerationAdapter struct {
	service primary.GenerationService
	out     io.Writer
}

// NewGenerationAdapter creates a new GenerationAdapter with the given service.
func NewGenerationAdapter(service primary.GenerationService, out io.Writer) *GenerationAdapter {
	return &GenerationAdapter{
		service: service,
		out:     out,
	}
}

// Generate renders and writes all files, listing each one.
func (a *GenerationAdapter) Generate(ctx context.Context, schemaPath, outputDir string, dryRun bool) error {
	resp, err := a.service.Generate(ctx, primary.GenerateRequest{
		SchemaPath: schemaPath,
		DryRun:     dryRun,
	})
	if err != nil {
		a.printProblems(err)
		return err
	}

	verb, mark := "Created", color.New(color.FgGreen).Sprint("✓")
	if !resp.Written {
		verb, mark = "Would create", color.New(color.FgYellow).Sprint("•")
	}
	for _, f := range resp.Files {
		fmt.Fprintf(a.out, "%s %s %s\n", mark, verb, f.Path)
	}

	if resp.Written {
		fmt.Fprintf(a.out, "\nDone. %d files written under %s.\n", len(resp.Files), outputDir)
	} else {
		fmt.Fprintf(a.out, "\nDry run. %d files rendered, nothing written.\n", len(resp.Files))
	}

	if len(resp.NextSteps) > 0 {
		fmt.Fprintln(a.out, "\nNext steps:")
		for i, step := range resp.NextSteps {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, step)
		}
	}
	return nil
}

// Mapping prints the mapping document.
func (a *GenerationAdapter) Mapping(ctx context.Context, schemaPath string) error {
	doc, err := a.service.RenderMapping(ctx, primary.SchemaRequest{SchemaPath: schemaPath})
	if err != nil {
		a.printProblems(err)
		return err
	}

	fmt.Fprint(a.out, doc)
	return nil
}

// Entity prints the source of an ad-hoc entity.
func (a *GenerationAdapter) Entity(ctx context.Context, name, fields string, enums []string) error {
	file, err := a.service.RenderEntity(ctx, primary.RenderEntityRequest{
		Name:   name,
		Fields: fields,
		Enums:  enums,
	})
	if err != nil {
		a.printProblems(err)
		return err
	}

	fmt.Fprint(a.out, file.Content)
	return nil
}

// Check validates a schema and lists its entities.
func (a *GenerationAdapter) Check(ctx context.Context, schemaPath string) error {
	summary, err := a.service.CheckSchema(ctx, primary.SchemaRequest{SchemaPath: schemaPath})
	if err != nil {
		a.printProblems(err)
		return err
	}

	fmt.Fprintf(a.out, "%s Schema OK: %d entities\n", color.New(color.FgGreen).Sprint("✓"), len(summary.Entities))
	fmt.Fprintf(a.out, "\n%-16s %-18s %6s %6s %8s\n", "ENTITY", "TABLE", "FIELDS", "RULES", "HELPERS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────")
	for _, e := range summary.Entities {
		fmt.Fprintf(a.out, "%-16s %-18s %6d %6d %8d\n", e.Name, e.Table, e.Fields, e.Rules, e.Helpers)
	}
	fmt.Fprintln(a.out)

	return nil
}

// printProblems lists every schema problem carried by err.
func (a *GenerationAdapter) printProblems(err error) {
	var schemaErr *schema.Error
	if !errors.As(err, &schemaErr) {
		return
	}

	cross := color.New(color.FgRed).Sprint("✗")
	fmt.Fprintf(a.out, "%s Schema has %d problems:\n", cross, len(schemaErr.Problems))
	for _, p := range schemaErr.Problems {
		fmt.Fprintf(a.out, "  %s %s\n", cross, p)
	}
}
