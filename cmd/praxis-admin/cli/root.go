package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/praxisgrc/praxis/internal/config"
	"github.com/praxisgrc/praxis/internal/infrastructure/persistence/postgres"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// rootCmd is the entry point of the praxis-admin binary.
var rootCmd = &cobra.Command{
	Use:   "praxis-admin",
	Short: "Administrative CLI for the risk analytics service.",
	Long: `praxis-admin performs operational tasks against the risk analytics
service and its database, such as seeding benchmark references, inspecting
tenant risk matrices and running ad-hoc analyses.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDatabase loads the service configuration and opens the database the
// same way the server does.
func openDatabase(cmd *cobra.Command) (*postgres.DBConnection, logger.Logger, error) {
	log := logger.NewNoopLogger()
	cfg, err := config.LoadConfig(log)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	db, err := postgres.NewDBConnection(cmd.Context(), &cfg.Database, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, log, nil
}
