package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newClusterCmd creates the cluster command group.
func newClusterCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Show cluster health as seen through SQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()

			health, err := client.ClusterHealth(cmd.Context())
			if err != nil {
				return err
			}
			tx, err := client.Transactions(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			lines := []string{
				cliRenderTitle("Cluster"),
				cliRenderMeta("Nodes:", fmt.Sprint(health.Nodes)),
				cliRenderMeta("Ranges:", fmt.Sprint(health.Ranges)),
				cliRenderMeta("Replicas:", fmt.Sprint(health.Replicas)),
				cliRenderMeta("Simulated writes:", fmt.Sprint(tx.Count)),
			}
			for _, line := range lines {
				if err := cliWriteLine(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.AddCommand(newClusterWritesCmd(opts))

	return cmd
}

// newClusterWritesCmd creates the cluster writes command.
func newClusterWritesCmd(opts *rootOptions) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "writes",
		Short: "Run a batch of simulated writes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := opts.client().SimulateWrites(cmd.Context(), count)
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("%d succeeded, %d failed, %d in total", report.Success, report.Failed, report.TotalCount)
			if report.Failed > 0 {
				return cliWriteLine(cmd.OutOrStdout(), cliRenderWarning(msg))
			}
			return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess(msg))
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of rows to insert")

	return cmd
}
