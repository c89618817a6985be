// Package cli implements the CLI adapter for faultline.
// This package provides Cobra commands that either start the controller or
// drive a running one over HTTP.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/faultline/internal/adapters/in/cli/remote"
	"github.com/bnema/faultline/internal/config"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	v          *viper.Viper
}

// client builds a controller client from --server and --token, falling back
// to FAULTLINE_REMOTE and FAULTLINE_TOKEN. FAULTLINE_SERVER_* belongs to the
// server configuration, so the address uses its own name.
func (o *rootOptions) client() *remote.Client {
	return remote.NewClient(o.v.GetString("server"), remote.WithToken(o.v.GetString("token")))
}

// NewRootCmd creates the root command for the faultline CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "faultline",
		Short: "faultline - regional fault injection for multi-region clusters",
		Long: `faultline injects regional failures into a database cluster laid out as
named regions. Each region is reached through traffic-control proxies and runs a
set of containers. faultline can kill, stop, partition, brown out and recover a
region, and reports whether each region is up.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to config file")
	flags.String("server", remote.DefaultServer, "Controller address")
	flags.String("token", "", "Bearer token for mutating endpoints")

	_ = opts.v.BindPFlag("server", flags.Lookup("server"))
	_ = opts.v.BindPFlag("token", flags.Lookup("token"))
	_ = opts.v.BindEnv("server", config.EnvPrefix+"_REMOTE")
	_ = opts.v.BindEnv("token", config.EnvPrefix+"_TOKEN", config.EnvPrefix+"_SERVER_TOKEN")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newRegionsCmd(opts))
	rootCmd.AddCommand(newOperationsCmd(opts))
	for _, action := range []string{"kill", "stop", "partition", "recover"} {
		rootCmd.AddCommand(newActionCmd(opts, action))
	}
	rootCmd.AddCommand(newBrownoutCmd(opts))
	rootCmd.AddCommand(newClusterCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
