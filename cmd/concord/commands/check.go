package commands

import (
	"github.com/concord-tools/concord/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Verify that every dependency resolves to a single location",
		Long: `Check scans every package directory in the workspace and verifies that all
references to a named dependency resolve to the same on-disk location. On
conflict it prints a full report covering every conflicted package and exits
non-zero. Nothing is modified.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			list, _ := cmd.Flags().GetBool("list")
			ci, _ := cmd.Flags().GetBool("ci")

			return c.app.Check(cmd.Context(), app.CheckOptions{
				Dir:  dir,
				List: list,
				CI:   ci,
			})
		},
	}
	cmd.Flags().BoolP("list", "l", false, "Print the validated name→path map on success")
	cmd.Flags().Bool("ci", false, "Use JSON log output")
	return cmd
}
