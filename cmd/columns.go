package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trialiris/iris/internal/columns"
	"github.com/trialiris/iris/internal/complete"
)

var columnsCmd = &cobra.Command{
	Use:   "columns [name]",
	Short: "List grid columns, or describe one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return describeColumn(cmd, args[0])
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDISPLAY\tDEFAULT")
		for _, d := range columns.Definitions() {
			shown := "shown"
			if d.DefaultHidden {
				shown = "hidden"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, columns.DisplayName(d.Name), shown)
		}
		return w.Flush()
	},
}

func describeColumn(cmd *cobra.Command, name string) error {
	def, ok := columns.Lookup(name)
	if !ok {
		msg := fmt.Sprintf("unknown column %q", name)
		if suggestion, ok := complete.SuggestFrom(name, columns.Names()); ok {
			msg += fmt.Sprintf(", did you mean %q?", suggestion)
		}
		return fmt.Errorf("%s", msg)
	}

	var traits []string
	if def.DefaultHidden {
		traits = append(traits, "hidden by default")
	}
	if def.Thin {
		traits = append(traits, "thin")
	}
	if def.Filterable {
		traits = append(traits, "filterable")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", def.Name, columns.DisplayName(def.Name))
	if len(traits) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(traits, ", "))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
