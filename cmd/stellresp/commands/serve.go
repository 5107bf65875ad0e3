package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stellrent/response/config"
	"github.com/stellrent/response/internal/server"
	"github.com/stellrent/response/logging/logger"
	"github.com/stellrent/response/version"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cleanup, err := logger.New(cfg.Logger)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer cleanup()

			log := logger.StdLogger()
			log.SetVersion(version.GetVersionInfo().Version)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Viper.ConfigFileUsed() != "" {
				cfg.Watch(func(next *config.Config) {
					log.SetLevel(logrus.Level(next.Logger.Level))
					log.Infof(context.Background(), "configuration reloaded, log level %s", log.GetLevel())
				})
			}

			return server.New(cfg, log).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configFile, "conf", "c", "", "config file path")
	return cmd
}
