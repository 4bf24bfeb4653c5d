package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"userservice/internal/config"
	"userservice/internal/logging"
	"userservice/internal/server"
	"userservice/internal/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type serveOptions struct {
	host string
	port string
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(root, opts)
			if err != nil {
				return err
			}

			logger, err := logging.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			logger.Info("starting userservice",
				zap.String("version", Version),
				zap.Int("pid", os.Getpid()),
				zap.String("runtime", runtime.GOOS+"/"+runtime.GOARCH),
				zap.String("go", runtime.Version()),
				zap.String("env", string(cfg.Environment)),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(cfg, web.NewHandler(cfg, logger), logger)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", "", "interface to listen on (overrides HOST)")
	cmd.Flags().StringVar(&opts.port, "port", "", "port to listen on (overrides PORT)")

	return cmd
}

// loadServeConfig reads the environment and applies command-line overrides.
func loadServeConfig(root *rootOptions, opts *serveOptions) (*config.Config, error) {
	cfg, err := config.LoadConfig(root.envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.host != "" {
		cfg.Host = opts.host
	}
	if opts.port != "" {
		cfg.Port = opts.port
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	return cfg, nil
}
