package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templui/inorbit/internal/app"
	"github.com/templui/inorbit/internal/config"
	"github.com/templui/inorbit/internal/storage"
)

func ExportCmd(cfg *config.Config) *cobra.Command {
	var stdout bool

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export this week's goal progress as JSON to S3-compatible storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if stdout {
				return a.ExportService.Write(cmd.Context(), cmd.OutOrStdout())
			}

			store, err := storage.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			key, err := a.ExportService.Upload(cmd.Context(), store)
			if err != nil {
				return err
			}

			url, err := store.URL(cmd.Context(), key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	exportCmd.Flags().BoolVar(&stdout, "stdout", false, "Write the export to stdout instead of uploading")
	return exportCmd
}
