package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagEnv       = "env"
	flagConfigDir = "config-dir"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "club-ledger: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "club-ledger",
		Short:         "Club wallet, event roster and settlement service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String(flagEnv, "", "configuration environment (development, test, production)")
	cmd.PersistentFlags().String(flagConfigDir, "", "extra directory searched for <env>.yaml")
	_ = v.BindPFlag(flagEnv, cmd.PersistentFlags().Lookup(flagEnv))
	_ = v.BindPFlag(flagConfigDir, cmd.PersistentFlags().Lookup(flagConfigDir))

	cmd.AddCommand(newServeCommand(v), newMigrateCommand(v))
	return cmd
}

func newServeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer app.close()
			return app.serve(cmd.Context())
		},
	}
}

func newMigrateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations and seed the bootstrap super admin, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context(), v)
			if err != nil {
				return err
			}
			defer app.close()

			version, err := app.dbManager.MigrationManager().GetCurrentVersion(cmd.Context())
			if err != nil {
				return err
			}
			app.logger.Info("Schema up to date", map[string]any{"version": version})
			return nil
		},
	}
}
