package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/praxisgrc/praxis/sdk/go/praxisclient"
)

var (
	runServerURL string
	runType      string
	runTenant    string
	runIndustry  string
	runToken     string
)

var runAnalysisCmd = &cobra.Command{
	Use:   "run-analysis",
	Short: "Run an ad-hoc analysis against a running service.",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []praxisclient.Option{}
		if runToken != "" {
			opts = append(opts, praxisclient.WithBearerToken(runToken))
		}
		client := praxisclient.New(runServerURL, opts...)

		req := &praxisclient.AnalysisRequest{
			AnalysisType: runType,
			TenantID:     runTenant,
		}
		if runIndustry != "" {
			req.BenchmarkCriteria = &praxisclient.BenchmarkCriteria{Industry: runIndustry}
		}

		resp, err := client.RunAnalysis(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("run analysis: %w", err)
		}

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	runAnalysisCmd.Flags().StringVar(&runServerURL, "server", "http://localhost:8080", "base URL of the analytics service")
	runAnalysisCmd.Flags().StringVar(&runType, "type", "", "analysis type to run (required)")
	runAnalysisCmd.Flags().StringVar(&runTenant, "tenant", "", "tenant ID (required)")
	runAnalysisCmd.Flags().StringVar(&runIndustry, "industry", "", "industry override for benchmarking")
	runAnalysisCmd.Flags().StringVar(&runToken, "token", "", "bearer token when auth is enabled")
	_ = runAnalysisCmd.MarkFlagRequired("type")
	_ = runAnalysisCmd.MarkFlagRequired("tenant")
	rootCmd.AddCommand(runAnalysisCmd)
}
