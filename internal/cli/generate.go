package cli

import (
	"github.com/spf13/cobra"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the models package, mapping document and README",
		Long: `Render one Go file per entity plus docs/mapping.md and README.md, then
write them under the output directory. Nothing is written if any entity
fails to render.

Examples:
  stubgen generate
  stubgen generate --schema stubgen.yaml --output ./gen
  stubgen generate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render and list files without writing them")
	return cmd
}
