package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trialiris/iris/internal/services/criterion"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a curated-trials JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := setup()
		if err != nil {
			return err
		}
		defer cleanup()

		count, err := svc.Import(cmd.Context(), criterion.ImportRequest{Path: args[0]})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Printf("imported %d criteria from %s\n", count, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
