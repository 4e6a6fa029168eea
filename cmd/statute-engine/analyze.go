// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/statute-engine/internal/analyzer"
	"github.com/pdiddy/statute-engine/internal/console"
	"github.com/pdiddy/statute-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [case text]",
	Short: "Analyze one case description",
	Long: `Analyze runs the full pipeline on a single case description and prints
the result: predicted section, confidence, parties involved, explanation,
and recommendations. The description is taken from the arguments, joined
with spaces.

Model artifacts are loaded fresh from the model directory for the call.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	caseText := strings.TrimSpace(strings.Join(args, " "))
	if caseText == "" {
		return fmt.Errorf("case description is empty")
	}

	cfg := types.AnalyzerConfig{ModelDir: modelDir(cmd)}
	result := analyzer.LoadAndAnalyze(cfg, caseText)

	if err := formatAnalysis(cmd, result); err != nil {
		return err
	}

	if result.Failed() {
		return fmt.Errorf("analysis failed: %s", result.Error)
	}
	return nil
}

// formatAnalysis writes the result as JSON, YAML, or the human report.
func formatAnalysis(cmd *cobra.Command, result types.Analysis) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")

	switch {
	case jsonOutput:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case yamlOutput:
		data, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		console.Print(os.Stdout, result)
		return nil
	}
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "output the result as JSON")
	analyzeCmd.Flags().Bool("yaml", false, "output the result as YAML")

	rootCmd.AddCommand(analyzeCmd)
}
