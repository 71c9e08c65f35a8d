package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxisgrc/praxis/internal/domain/service"
	"github.com/praxisgrc/praxis/internal/infrastructure/persistence/postgres"
)

var showMatrixTenant string

var showMatrixCmd = &cobra.Command{
	Use:   "show-matrix",
	Short: "Print the resolved risk matrix of a tenant.",
	Long: `show-matrix resolves the risk matrix a tenant classifies with,
including bucket defaulting when the tenant settings are absent or invalid,
and prints it as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, log, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		tenantRepo := postgres.NewTenantRepository(db.Gorm(), log)
		settings, err := tenantRepo.GetSettings(cmd.Context(), showMatrixTenant)
		if err != nil {
			return fmt.Errorf("fetch tenant settings: %w", err)
		}

		matrix := service.NewMatrixResolver(log).Resolve(cmd.Context(), showMatrixTenant, settings)
		out, err := json.MarshalIndent(matrix, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	showMatrixCmd.Flags().StringVar(&showMatrixTenant, "tenant", "", "tenant ID (required)")
	_ = showMatrixCmd.MarkFlagRequired("tenant")
	rootCmd.AddCommand(showMatrixCmd)
}
