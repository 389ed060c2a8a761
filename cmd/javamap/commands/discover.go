package commands

import (
	"github.com/javamap/javamap/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover [path]",
		Short: "Discover components in a Java source tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			return c.app.Run(cmd.Context(), root, app.RunOptions{JSON: jsonOut})
		},
	}
	cmd.Flags().Bool("json", false, "Emit the machine-readable report")
	return cmd
}
