// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/statute-engine/internal/batch"
	"github.com/pdiddy/statute-engine/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze a directory of case files",
	Long: `Batch analyzes every *.txt file in the cases directory and writes one
YAML report per case into the reports directory. Cases whose report is
already newer than the case file are skipped, so re-runs only process
new or changed cases.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := batchConfig(cmd)

	summary, err := batch.Run(context.Background(), cfg, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d case(s) failed analysis", summary.Failed)
	}
	return nil
}

func batchConfig(cmd *cobra.Command) types.BatchConfig {
	casesDir, _ := cmd.Flags().GetString("cases-dir")
	if casesDir == "" {
		casesDir = viper.GetString("cases_dir")
	}
	if casesDir == "" {
		casesDir = "cases"
	}

	reportsDir, _ := cmd.Flags().GetString("reports-dir")
	if reportsDir == "" {
		reportsDir = viper.GetString("reports_dir")
	}
	if reportsDir == "" {
		reportsDir = "reports"
	}

	return types.BatchConfig{
		AnalyzerConfig: types.AnalyzerConfig{ModelDir: modelDir(cmd)},
		CasesDir:       casesDir,
		ReportsDir:     reportsDir,
	}
}

func init() {
	batchCmd.Flags().String("cases-dir", "", "directory scanned for *.txt case files (default: cases)")
	batchCmd.Flags().String("reports-dir", "", "directory for per-case YAML reports (default: reports)")

	rootCmd.AddCommand(batchCmd)
}
