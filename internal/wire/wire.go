// Package wire provides dependency injection for the stubgen application.
// It builds the generation service from the resolved configuration.
package wire

import (
	"fmt"
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/stubgen/internal/adapters/cli"
	"github.com/example/stubgen/internal/adapters/filesystem"
	"github.com/example/stubgen/internal/app"
	"github.com/example/stubgen/internal/config"
	"github.com/example/stubgen/internal/logger"
	"github.com/example/stubgen/internal/ports/primary"
	"github.com/example/stubgen/internal/scaffold"
	"github.com/example/stubgen/rowmap"
)

var (
	log     *logger.Logger
	logOnce sync.Once
	verbose bool
)

// SetVerbose switches the process logger to debug output. It only has an
// effect before the first call to Logger.
func SetVerbose(v bool) {
	verbose = v
}

// Logger returns the singleton process logger.
func Logger() *logger.Logger {
	logOnce.Do(initLogger)
	return log
}

// initLogger builds the logger. This is called once via sync.Once.
func initLogger() {
	cfg := logger.Config{Level: "warn"}
	if verbose {
		cfg = logger.Config{Level: "debug", Development: true}
	}

	l, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		l = logger.Nop()
	}
	log = l
}

// GenerationService builds a GenerationService for the given configuration.
func GenerationService(cfg *config.Config) (primary.GenerationService, error) {
	generator, err := scaffold.NewGenerator(scaffold.Options{
		Package:   cfg.Package,
		ModelsDir: cfg.ModelsDir,
		DocsDir:   cfg.DocsDir,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Secondary adapter: files land under the configured output directory
	sink := filesystem.NewFileSink(cfg.OutputDir)
	executor := app.NewEffectExecutor(sink, Logger())

	return app.NewGenerationService(generator, executor, nil, rowmap.SystemClock, Logger()), nil
}

// GenerationAdapter returns a new GenerationAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func GenerationAdapter(cfg *config.Config) (*cliadapter.GenerationAdapter, error) {
	return GenerationAdapterWithOutput(cfg, os.Stdout)
}

// GenerationAdapterWithOutput returns a new GenerationAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func GenerationAdapterWithOutput(cfg *config.Config, out io.Writer) (*cliadapter.GenerationAdapter, error) {
	service, err := GenerationService(cfg)
	if err != nil {
		return nil, err
	}
	return cliadapter.NewGenerationAdapter(service, out), nil
}
