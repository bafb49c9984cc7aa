// Command gridd runs the Grid daemon: it assembles the startup configuration
// from the command line, then serves the REST API and reports validator
// reachability.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/grid-daemon/internal/config"
	myHTTP "github.com/MKhiriev/grid-daemon/internal/handler/http"
	"github.com/MKhiriev/grid-daemon/internal/logger"
	"github.com/MKhiriev/grid-daemon/internal/server"
	"github.com/MKhiriev/grid-daemon/internal/validator"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gridd",
		Short:        "Grid daemon",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())

	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewBuilder().
		WithCLIArgs(config.NewFlagOptions(cmd.Flags())).
		Build()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	return cfg, nil
}

func run(cfg *config.Config) error {
	printBuildInfo()

	log := logger.NewLogger("gridd", cfg.LogLevel())
	log.Debug().Object("config", cfg).Msg("received configs")

	prober := validator.NewProber(cfg.ValidatorEndpoint(), validator.DefaultProbeTimeout, log)
	handler := myHTTP.NewHandler(prober, buildVersion, log)

	srv, err := server.NewServer(handler.Init(), cfg.RestAPIEndpoint(), log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return err
	}

	return srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
