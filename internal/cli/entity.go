package cli

import (
	"github.com/spf13/cobra"
)

// EntityCmd returns the entity command
func EntityCmd() *cobra.Command {
	var (
		fields string
		enums  []string
	)

	cmd := &cobra.Command{
		Use:   "entity [name]",
		Short: "Render a single ad-hoc entity to stdout",
		Long: `Render the model file of one entity described on the command line.
Columns are the snake_case form of each field name.

Field types: int, string, time (add ? suffix for nullable)

Examples:
  stubgen entity widget --fields "id:int,name:string,deleted_at:time?"
  stubgen entity alert --fields "id:int,severity:string" --enum "severity=low|high"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, _, err := adapterFor(cmd)
			if err != nil {
				return err
			}
			return adapter.Entity(cmd.Context(), args[0], fields, enums)
		},
	}

	cmd.Flags().StringVarP(&fields, "fields", "f", "", "Field definitions (name:type,...)")
	cmd.Flags().StringArrayVarP(&enums, "enum", "e", nil, "Allowed values of a string field (field=a|b), repeatable")
	_ = cmd.MarkFlagRequired("fields")
	return cmd
}
