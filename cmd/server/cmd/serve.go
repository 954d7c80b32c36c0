package cmd

import (
	"fmt"

	"github.com/nfrund/goby-reset/internal/config"
	"github.com/nfrund/goby-reset/internal/logging"
	"github.com/nfrund/goby-reset/internal/server"
	"github.com/spf13/cobra"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().StringVar(&addrFlag, "addr", "", "listen address, overrides SERVER_ADDR")
	}
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addrFlag != "" {
		cfg.ServerAddr = addrFlag
	}

	logging.New(cfg.LogFormat, cfg.LogLevel)

	s := server.New(cfg)
	if err := s.RegisterRoutes(cmd.Context()); err != nil {
		return err
	}
	return s.Start(cmd.Context())
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
