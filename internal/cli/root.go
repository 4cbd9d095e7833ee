package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"planets-catalog/internal/catalog"
	"planets-catalog/internal/planet"
	"planets-catalog/internal/report"
	"planets-catalog/internal/shared/config"
	"planets-catalog/internal/shared/logger"
)

func Execute() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	logger.Init()

	cmd := newRootCmd(config.GlobalConfig, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	var (
		from       string
		to         string
		systemName string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:          "catalog",
		Short:        "Print a report over the built-in planet catalog",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := slog.Default()
			if cmd.Flags().Changed("log-level") {
				overridden := *cfg
				overridden.Logging.Level = strings.ToLower(logLevel)
				if err := overridden.Validate(); err != nil {
					return err
				}
				log = logger.Setup(stderr, overridden.Logging)
			}
			log = log.With("component", "cli")

			system, err := catalog.NewLoader(log).SolarSystem()
			if err != nil {
				return err
			}
			if systemName != "" {
				system = planet.NewSystem(systemName, system.Planets())
			}

			log.Debug("Writing report", "system", system.Name(), "from", from, "to", to)
			return report.Write(stdout, planet.NewService(log), system, report.Options{
				DistanceFrom: from,
				DistanceTo:   to,
			})
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&from, "from", cfg.Catalog.DistanceFrom, "first planet of the distance line")
	cmd.Flags().StringVar(&to, "to", cfg.Catalog.DistanceTo, "second planet of the distance line")
	cmd.Flags().StringVar(&systemName, "system-name", cfg.Catalog.SystemName, "override the catalog system name")
	cmd.Flags().StringVar(&logLevel, "log-level", cfg.Logging.Level, "log level: debug, info, warn or error")
	return cmd
}
