package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/praxisgrc/praxis/internal/domain/models"
	"github.com/praxisgrc/praxis/internal/infrastructure/persistence/postgres"
)

var (
	seedIndustry string
	seedFile     string
)

// defaultBaselines seeds a reasonable starting point when no file is given.
var defaultBaselines = models.BenchmarkTable{
	models.MetricCompletionRate:    75.0,
	models.MetricAvgMaturityScore:  3.0,
	models.MetricComplianceScore:   70.0,
	models.MetricTimeToCompleteDay: 60.0,
}

var seedBenchmarksCmd = &cobra.Command{
	Use:   "seed-benchmarks",
	Short: "Upsert benchmark baselines for an industry.",
	Long: `seed-benchmarks writes per-industry baseline rows used by the
benchmarking analysis. Baselines come from a JSON file mapping metric name to
average value, or from built-in defaults when no file is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		baselines := defaultBaselines
		if seedFile != "" {
			data, err := os.ReadFile(seedFile)
			if err != nil {
				return fmt.Errorf("read baselines file: %w", err)
			}
			baselines = models.BenchmarkTable{}
			if err := json.Unmarshal(data, &baselines); err != nil {
				return fmt.Errorf("parse baselines file: %w", err)
			}
		}

		db, log, err := openDatabase(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := postgres.NewBenchmarkRepository(db.Gorm(), log)
		for metric, value := range baselines {
			ref := &models.BenchmarkReference{
				Industry:     seedIndustry,
				Metric:       metric,
				AverageValue: value,
			}
			if err := repo.Upsert(cmd.Context(), ref); err != nil {
				return fmt.Errorf("upsert %s/%s: %w", seedIndustry, metric, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s %s = %.2f\n", seedIndustry, metric, value)
		}
		return nil
	},
}

func init() {
	seedBenchmarksCmd.Flags().StringVar(&seedIndustry, "industry", "", "industry the baselines apply to (required)")
	seedBenchmarksCmd.Flags().StringVar(&seedFile, "file", "", "JSON file mapping metric name to average value")
	_ = seedBenchmarksCmd.MarkFlagRequired("industry")
	rootCmd.AddCommand(seedBenchmarksCmd)
}
