package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var configPath string

	root := &cobra.Command{
		Use:     "notes",
		Short:   "Terminal client for go-notes-keeper",
		Version: buildInfo.Short(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), configPath)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG"), "JSON config file path")

	root.AddCommand(
		newTUICmd(&configPath),
		newLoginCmd(&configPath),
		newLogoutCmd(&configPath),
		newBackupCmd(&configPath),
		newExportCmd(&configPath),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
