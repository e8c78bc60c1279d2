package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/client"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/internal/workers"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/spf13/cobra"
)

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive notes board (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), *configPath)
		},
	}
}

func newLoginCmd(configPath *string) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, app *client.App) error {
				if email == "" {
					return errors.New("--email is required")
				}

				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && password == "" {
					return fmt.Errorf("could not read password from stdin: %w", err)
				}

				session, err := app.Login(ctx, email, strings.TrimRight(password, "\r\n"))
				if err != nil {
					return fmt.Errorf("could not sign in: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", session.Email)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")

	return cmd
}

func newLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, app *client.App) error {
				return app.Logout(ctx)
			})
		},
	}
}

func newBackupCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Snapshot your notes unless the last backup is younger than 24 hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, app *client.App) error {
				result, err := app.Backup(ctx)
				if err != nil {
					return fmt.Errorf("could not back up: %w", err)
				}

				if result.Uploaded {
					fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d notes to %s\n", result.Notes, result.Path)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped, last backup at %s\n", result.LastBackupAt.Local().Format("2006-01-02 15:04"))
				return nil
			})
		},
	}
}

func newExportCmd(configPath *string) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the newest backup as a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), *configPath, func(ctx context.Context, app *client.App) error {
				result, err := app.Export(ctx, dir)
				if err != nil {
					return fmt.Errorf("could not export: %w", err)
				}
				if !result.OK() {
					return fmt.Errorf("could not export (%s): %s", result.Failure, result.Message)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", result.Backup, result.Path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "target directory")

	return cmd
}

func runTUI(ctx context.Context, configPath string) error {
	return withApp(ctx, configPath, func(ctx context.Context, app *client.App) error {
		return app.Run(ctx)
	})
}

// withApp wires the client from configuration, runs fn and releases the
// local storage afterwards.
func withApp(parent context.Context, configPath string, fn func(ctx context.Context, app *client.App) error) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetClientConfig(configPath)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("notes-client", cfg.App.LogFile)
	log.Debug().Str("remote", cfg.Remote.URL).Str("local_dsn", cfg.Storage.DSN).Msg("received configs")

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing local storage")
		}
	}()

	remote, err := adapter.NewRemoteDataService(cfg.Remote, log)
	if err != nil {
		return fmt.Errorf("create remote adapter: %w", err)
	}

	appState := state.NewAppState()
	defer appState.Close()

	services := service.NewClientServices(storages.LocalStorage, remote, appState, cfg, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(
		services,
		appState,
		tui.New(services, appState, buildInfo, log),
		workers.NewWorkers(services, appState, cfg.Workers, log),
		log,
	)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	if err = fn(ctx, app); err != nil {
		log.Err(err).Msg("client command failed")
		return err
	}
	return nil
}
