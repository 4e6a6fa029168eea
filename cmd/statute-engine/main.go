// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the statute-engine CLI: a legal case
// analyzer that maps free-text case descriptions to statute sections using
// pre-trained model artifacts.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the statute-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "statute-engine",
	Short: "Map case descriptions to applicable statute sections",
	Long: `statute-engine analyzes free-text case descriptions against a pre-trained
classifier and reports the most applicable IPC section with a confidence
score, the parties involved, an explanation of the section, and a
confidence-tiered recommendation.

The model artifacts (classifier, vectorizer, label decoder, config) are
loaded from the model directory; training them is out of scope. Use analyze
for one-shot analysis, console for an interactive session, batch for a
directory of case files, and sections to browse the explanation table.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./statute-engine.yaml or ~/.config/statute-engine/config.yaml)")
	rootCmd.PersistentFlags().String("model-dir", "", "directory holding the model artifacts (default: model)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("statute-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "statute-engine"))
		}
	}

	viper.SetEnvPrefix("STATUTE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// modelDir resolves the model directory from the flag, then viper, then
// the default.
func modelDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("model-dir")
	if dir != "" {
		return dir
	}
	if dir := viper.GetString("model_dir"); dir != "" {
		return dir
	}
	return "model"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
