// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/example/stubgen/internal/core/effects"
	"github.com/example/stubgen/internal/logger"
	"github.com/example/stubgen/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor executes file effects through a FileSink and log
// effects through the logger.
type DefaultEffectExecutor struct {
	sink secondary.FileSink
	log  *logger.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(sink secondary.FileSink, log *logger.Logger) *DefaultEffectExecutor {
	if log == nil {
		log = logger.Nop()
	}
	return &DefaultEffectExecutor{sink: sink, log: log}
}

// Execute processes a slice of effects in sequence and stops at the first
// failure; effects already executed are not undone.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.FileEffect:
		return e.executeFile(ctx, typed)
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	case effects.LogEffect:
		e.executeLog(typed)
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeFile(ctx context.Context, eff effects.FileEffect) error {
	switch eff.Operation {
	case "write":
		return e.sink.WriteFile(ctx, eff.Path, eff.Content)
	default:
		return fmt.Errorf("unknown file operation: %s", eff.Operation)
	}
}

func (e *DefaultEffectExecutor) executeLog(eff effects.LogEffect) {
	kv := make([]any, 0, 2*len(eff.Fields))
	for _, k := range slices.Sorted(maps.Keys(eff.Fields)) {
		kv = append(kv, k, eff.Fields[k])
	}

	switch eff.Level {
	case "debug":
		e.log.Debugw(eff.Message, kv...)
	case "warn":
		e.log.Warnw(eff.Message, kv...)
	case "error":
		e.log.Errorw(eff.Message, kv...)
	default:
		e.log.Infow(eff.Message, kv...)
	}
}
