package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/faultline/internal/app"
	"github.com/bnema/faultline/internal/config"
	"github.com/bnema/faultline/pkg/logger"
)

// loadConfig reads the configuration file and the environment.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	v := viper.New()
	if err := config.Init(v, opts.configPath); err != nil {
		return nil, err
	}
	return config.Load(v)
}

// newServeCmd creates the serve command.
func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the controller",
		Long:  `Start the HTTP control surface and act on the configured regions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			log := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
			log.Info("starting faultline", "version", Version, "commit", Commit)

			return app.Run(cmd.Context(), cfg, Version, log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}
