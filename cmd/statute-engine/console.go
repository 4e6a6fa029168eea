// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/statute-engine/internal/analyzer"
	"github.com/pdiddy/statute-engine/internal/console"
	"github.com/pdiddy/statute-engine/pkg/types"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run an interactive analysis session",
	Long: `Console starts a read-eval loop: one case description per line, one
analysis per case. Type 'quit' to exit. Model artifacts are loaded fresh
for each analysis, so a model directory updated between inputs takes
effect on the next line.`,
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg := types.AnalyzerConfig{ModelDir: modelDir(cmd)}

	return console.Run(os.Stdin, os.Stdout, func(caseText string) types.Analysis {
		return analyzer.LoadAndAnalyze(cfg, caseText)
	})
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
