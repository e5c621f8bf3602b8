package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stubgen/internal/config"
	"github.com/example/stubgen/internal/schema"
)

// schemaFile is the editable copy of the built-in schema written by init.
const schemaFile = "stubgen.yaml"

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create .stubgen/config.json and an editable stubgen.yaml",
		Long: `Write the default configuration to .stubgen/config.json and dump the
built-in schema to stubgen.yaml, so fields can be added or renamed before
re-running generate. Existing files are kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dir := projectDir(cmd)
			check := color.New(color.FgGreen).Sprint("✓")
			dot := color.New(color.FgYellow).Sprint("•")

			cfgPath := config.Path(dir)
			if exists(cfgPath) && !force {
				fmt.Fprintf(out, "%s Kept existing %s\n", dot, cfgPath)
			} else {
				cfg := config.Default()
				cfg.SchemaPath = schemaFile
				if err := config.SaveConfig(dir, cfg); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s Created %s\n", check, cfgPath)
			}

			schemaPath := filepath.Join(dir, schemaFile)
			if exists(schemaPath) && !force {
				fmt.Fprintf(out, "%s Kept existing %s\n", dot, schemaPath)
			} else {
				if err := os.WriteFile(schemaPath, schema.DefaultYAML(), 0644); err != nil {
					return fmt.Errorf("failed to write schema: %w", err)
				}
				fmt.Fprintf(out, "%s Created %s\n", check, schemaPath)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintf(out, "  1. Edit %s\n", schemaFile)
			fmt.Fprintln(out, "  2. stubgen check")
			fmt.Fprintln(out, "  3. stubgen generate")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
