// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/statute-engine/internal/explain"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections [code]",
	Short: "Print the explanation table for statute sections",
	Long: `Sections prints the canned explanation for one section code, or lists
all covered codes when no argument is given. Codes outside the table get
the same generic fallback the analyzer would report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSections,
}

func runSections(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, code := range explain.SectionCodes() {
			fmt.Println(code)
		}
		return nil
	}

	code := args[0]
	if text, ok := explain.Section(code); ok {
		fmt.Println(text)
		return nil
	}
	fmt.Printf("Section %s of the Indian Penal Code\n", code)
	return nil
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}
