// Package generation contains the pure business logic for generation runs.
// This file contains pure planner functions that generate effects.
package generation

import "github.com/example/stubgen/internal/core/effects"

// PlannedFile is one rendered file.
type PlannedFile struct {
	Path    string
	Content string
}

// WritePlanInput contains the inputs needed to generate a write plan.
// Every file is rendered before planning; the planner does no I/O.
type WritePlanInput struct {
	Files  []PlannedFile
	DryRun bool
}

// WritePlan represents the planned effects of a generation run.
type WritePlan struct {
	FileOps []effects.FileEffect
	LogOps  []effects.LogEffect
}

// Effects returns all effects as a flat slice for execution. Each write is
// followed by its log entry so a failed write stops before being reported.
func (p WritePlan) Effects() []effects.Effect {
	result := make([]effects.Effect, 0, len(p.FileOps)+len(p.LogOps))
	for i, e := range p.FileOps {
		result = append(result, e)
		if i < len(p.LogOps) {
			result = append(result, p.LogOps[i])
		}
	}
	for _, e := range p.LogOps[min(len(p.FileOps), len(p.LogOps)):] {
		result = append(result, e)
	}
	return result
}

// GenerateWritePlan creates the plan for writing rendered files in order.
// A dry run plans no writes, only the summary log entry.
func GenerateWritePlan(input WritePlanInput) WritePlan {
	var plan WritePlan

	if !input.DryRun {
		for _, f := range input.Files {
			plan.FileOps = append(plan.FileOps, effects.FileEffect{
				Operation: "write",
				Path:      f.Path,
				Content:   []byte(f.Content),
			})
			plan.LogOps = append(plan.LogOps, effects.LogEffect{
				Level:   "debug",
				Message: "wrote file",
				Fields:  map[string]any{"path": f.Path, "bytes": len(f.Content)},
			})
		}
	}

	plan.LogOps = append(plan.LogOps, effects.LogEffect{
		Level:   "info",
		Message: "generation complete",
		Fields:  map[string]any{"files": len(input.Files), "dry_run": input.DryRun},
	})

	return plan
}
