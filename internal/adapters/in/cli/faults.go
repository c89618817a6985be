package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/faultline/internal/adapters/dto"
)

// defaultLatencyMs matches the controller default.
const defaultLatencyMs = 700

var actionHelp = map[string]string{
	"kill":      "Kill every container of a region and close its proxies",
	"stop":      "Stop every container of a region gracefully and close its proxies",
	"partition": "Detach every container of a region from the cluster network and close its proxies",
	"recover":   "Reattach and start every container of a region and reopen its proxies",
}

// newActionCmd creates one of the kill, stop, partition and recover commands.
func newActionCmd(opts *rootOptions, action string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <region>",
		Short: actionHelp[action],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.client().Operate(cmd.Context(), action, args[0])
			return printOperation(cmd, result, err)
		},
	}
}

// newBrownoutCmd creates the brownout command.
func newBrownoutCmd(opts *rootOptions) *cobra.Command {
	var latency int

	cmd := &cobra.Command{
		Use:   "brownout <region>",
		Short: "Add latency to every proxy of a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if latency < 0 {
				return fmt.Errorf("--latency must not be negative")
			}
			result, err := opts.client().Brownout(cmd.Context(), args[0], latency)
			return printOperation(cmd, result, err)
		},
	}

	cmd.Flags().IntVarP(&latency, "latency", "l", defaultLatencyMs, "Latency in milliseconds")

	return cmd
}

// printOperation prints whatever part of the operation was applied, then
// returns the error so the exit code reflects it.
func printOperation(cmd *cobra.Command, result *dto.OperationResponse, err error) error {
	if result != nil {
		if werr := cliWriteLine(cmd.OutOrStdout(), renderOperation(*result)); werr != nil {
			return werr
		}
	}
	return err
}
