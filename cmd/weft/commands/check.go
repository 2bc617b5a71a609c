package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/weft/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Classify the manifest and validate its binding graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			report, err := c.app.Check(cmd.Context(), configPath, app.CheckOptions{
				Parallelism: parallelism,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"ok: %d components, %d modules, %d bindings, %d entry points (%d passes)\n",
				report.Components, report.Modules, report.Bindings,
				report.EntryPoints, report.Passes)
			return nil
		},
	}
	cmd.Flags().IntP("parallelism", "p", 0, "Concurrent classifications per pass (0 = one per CPU)")
	return cmd
}
