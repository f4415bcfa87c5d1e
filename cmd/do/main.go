package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/templui/inorbit/cmd/do/cmd"
	"github.com/templui/inorbit/internal/config"
	"github.com/templui/inorbit/internal/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Options{
		Development: cfg.IsDevelopment(),
		Environment: cfg.AppEnv,
		SentryDSN:   cfg.SentryDSN,
	})

	rootCmd := &cobra.Command{
		Use:           "do",
		Short:         "Maintenance tools for the goals database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(cmd.SeedCmd(cfg))
	rootCmd.AddCommand(cmd.MigrateCmd(cfg))
	rootCmd.AddCommand(cmd.ExportCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
