package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/templui/inorbit/internal/app"
	"github.com/templui/inorbit/internal/config"
	"github.com/templui/inorbit/internal/seed"
)

func SeedCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Clear goals and completions and insert example data",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			now := time.Now().In(cfg.Location)
			result, err := seed.Run(cmd.Context(), a.GoalRepository, a.GoalCompletionRepository, now, cfg.WeekStart)
			if err != nil {
				return err
			}

			for _, g := range result.Goals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-15s %d/week\n", g.ID, g.Title, g.DesiredWeeklyFrequency)
			}
			return nil
		},
	}
}
