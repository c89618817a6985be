package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// newStatusCmd creates the status command.
func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status [region]",
		Short: "Show whether each region is up",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				status, err := client.RegionStatus(cmd.Context(), args[0])
				if status != nil {
					if werr := cliWriteLine(out, renderRegionDetail(args[0], *status)); werr != nil {
						return werr
					}
				}
				return err
			}

			statuses, err := client.Status(cmd.Context())
			if err != nil {
				return err
			}
			if len(statuses) == 0 {
				return cliWriteLine(out, cliRenderMuted("No regions configured"))
			}

			ids := make([]string, 0, len(statuses))
			for id := range statuses {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			return cliWriteLine(out, renderStatusTable(ids, statuses))
		},
	}
}

// newRegionsCmd creates the regions command.
func newRegionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the configured regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := opts.client().Regions(cmd.Context())
			if err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), renderRegionsTable(regions))
		},
	}
}

// newOperationsCmd creates the operations command.
func newOperationsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "Show how many fault operations were requested per action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := opts.client().Operations(cmd.Context())
			if err != nil {
				return err
			}

			actions := make([]string, 0, len(ops.Operations))
			for action := range ops.Operations {
				actions = append(actions, action)
			}
			sort.Strings(actions)

			out := cmd.OutOrStdout()
			for _, action := range actions {
				if err := cliWriteLine(out, cliRenderMeta(action+":", fmt.Sprint(ops.Operations[action]))); err != nil {
					return err
				}
			}
			return cliWriteLine(out, cliRenderMeta("total:", fmt.Sprint(ops.Total)))
		},
	}
}
