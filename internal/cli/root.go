// Package cli holds the cobra commands of the stubgen binary. The root
// command is assembled in cmd/stubgen.
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/stubgen/internal/adapters/cli"
	"github.com/example/stubgen/internal/config"
	"github.com/example/stubgen/internal/wire"
)

// AddGlobalFlags registers the flags shared by every command on root.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringP("project-dir", "C", ".", "Directory holding .stubgen/config.json")
	root.PersistentFlags().StringP("schema", "s", "", "Schema YAML file (default: config value or the built-in schema)")
	root.PersistentFlags().StringP("output", "o", "", "Output directory (default: config value)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// RunGenerate generates the models with the global flags of cmd. The root
// command uses it so that running stubgen without a subcommand generates.
func RunGenerate(cmd *cobra.Command, args []string) error {
	return runGenerate(cmd, false)
}

func runGenerate(cmd *cobra.Command, dryRun bool) error {
	adapter, cfg, err := adapterFor(cmd)
	if err != nil {
		return err
	}
	return adapter.Generate(cmd.Context(), cfg.SchemaPath, cfg.OutputDir, dryRun)
}

func projectDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("project-dir")
	if dir == "" {
		return "."
	}
	return dir
}

// resolveConfig loads the project config and applies flag overrides. Paths
// from the config file are relative to the project directory.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	dir := projectDir(cmd)
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, err
	}

	cfg.OutputDir = relativeTo(dir, cfg.OutputDir)
	if cfg.SchemaPath != "" {
		cfg.SchemaPath = relativeTo(dir, cfg.SchemaPath)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputDir = output
	}
	if schemaPath, _ := cmd.Flags().GetString("schema"); schemaPath != "" {
		cfg.SchemaPath = schemaPath
	}
	return cfg, nil
}

func relativeTo(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// adapterFor resolves the configuration and builds a GenerationAdapter
// writing to the command's output.
func adapterFor(cmd *cobra.Command) (*cliadapter.GenerationAdapter, *config.Config, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	wire.SetVerbose(verbose)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	adapter, err := wire.GenerationAdapterWithOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, err
	}
	return adapter, cfg, nil
}
