package main

import (
	"errors"
	"fmt"
	"io/fs"
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/local-library/catalog/app"
	"github.com/Astemirdum/local-library/catalog/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	return config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Local library catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCommand(), newMigrateCommand(), newCreateUserCommand())
	return cmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and serve HTTP until SIGINT/SIGTERM",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.Run(loadConfig())
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Migrate(cmd.Context(), loadConfig())
		},
	}
}

func newCreateUserCommand() *cobra.Command {
	var u app.NewUser
	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create a library account",
		Long: `Create a library account.

Example:
  catalog createuser --username librarian --password s3cret --perm catalog.can_mark_returned
  catalog createuser --username admin --password s3cret --superuser`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.CreateUser(cmd.Context(), loadConfig(), u)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id %d)\n", u.Username, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&u.Username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&u.Password, "password", "", "password (required)")
	cmd.Flags().BoolVar(&u.Superuser, "superuser", false, "grant every permission")
	cmd.Flags().StringSliceVar(&u.Permissions, "perm", nil, "permission codename, repeatable")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
