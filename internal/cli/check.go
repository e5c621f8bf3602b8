package cli

import (
	"github.com/spf13/cobra"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a schema and list its entities",
		Long: `Load a schema, report every problem found and exit non-zero if there is
any. On success, list each entity with its table and rule counts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, cfg, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.Check(cmd.Context(), cfg.SchemaPath)
		},
	}
}
