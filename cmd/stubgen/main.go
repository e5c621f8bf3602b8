package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/stubgen/internal/cli"
	"github.com/example/stubgen/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "stubgen",
		Short:   "stubgen - entity model generator",
		Version: version.String(),
		Long: `stubgen renders a Go model type per entity of a schema, plus a mapping
document and an overview README. Persistence methods are generated as
placeholders that return rowmap.ErrNotImplemented.

Without a subcommand, stubgen runs "generate".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cli.RunGenerate,
	}
	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.MappingCmd())
	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.EntityCmd())

	// Project setup
	rootCmd.AddCommand(cli.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
