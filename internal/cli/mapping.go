package cli

import (
	"github.com/spf13/cobra"
)

// MappingCmd returns the mapping command
func MappingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mapping",
		Short: "Print the entity to table mapping document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, cfg, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.Mapping(cmd.Context(), cfg.SchemaPath)
		},
	}
}
