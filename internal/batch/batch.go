// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch analyzes a directory of case files and writes one YAML
// report per case, skipping cases whose report is already up to date.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/statute-engine/internal/analyzer"
	"github.com/pdiddy/statute-engine/internal/model"
	"github.com/pdiddy/statute-engine/pkg/types"
)

// caseExt is the file extension batch runs consider a case description.
const caseExt = ".txt"

// Summary holds counts from one batch run.
type Summary struct {
	Analyzed int
	Skipped  int
	Failed   int
}

// Total returns the number of case files processed.
func (s Summary) Total() int {
	return s.Analyzed + s.Skipped + s.Failed
}

// HasFailures reports whether any case failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run analyzes every *.txt file under cfg.CasesDir and writes a YAML report
// per case into cfg.ReportsDir. Cases whose report is newer than the case
// file are skipped. The artifact bundle is loaded once for the whole run;
// artifacts are immutable, so this is equivalent to per-case loading.
// Progress lines are written to w.
func Run(ctx context.Context, cfg types.BatchConfig, w io.Writer) (Summary, error) {
	bundle, err := model.Load(cfg.ModelDir)
	if err != nil {
		return Summary{}, err
	}
	a := analyzer.New(bundle)

	if err := os.MkdirAll(cfg.ReportsDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating reports directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.CasesDir)
	if err != nil {
		return Summary{}, fmt.Errorf("reading cases directory %s: %w", cfg.CasesDir, err)
	}

	var summary Summary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), caseExt) {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		caseID := strings.TrimSuffix(entry.Name(), caseExt)
		casePath := filepath.Join(cfg.CasesDir, entry.Name())
		reportPath := filepath.Join(cfg.ReportsDir, caseID+".yaml")

		changed, err := hasChanged(casePath, reportPath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", caseID, err)
			summary.Failed++
			continue
		}
		if !changed {
			fmt.Fprintf(w, "skipped %s\n", caseID)
			summary.Skipped++
			continue
		}

		data, err := os.ReadFile(casePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", caseID, err)
			summary.Failed++
			continue
		}

		caseText := strings.TrimSpace(string(data))
		if caseText == "" {
			fmt.Fprintf(w, "failed  %s: empty case file\n", caseID)
			summary.Failed++
			continue
		}

		result := a.Analyze(caseText)

		report := types.Report{
			ID:         ulid.Make().String(),
			CaseID:     caseID,
			AnalyzedAt: time.Now().UTC(),
			Analysis:   result,
		}

		if err := writeReport(reportPath, report); err != nil {
			fmt.Fprintf(w, "failed  %s: write error: %v\n", caseID, err)
			summary.Failed++
			continue
		}

		if result.Failed() {
			fmt.Fprintf(w, "failed  %s: %s\n", caseID, result.Error)
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "analyzed %s (section %s, confidence %.1f%%)\n", caseID, result.Section, result.Confidence)
		summary.Analyzed++
	}

	fmt.Fprintf(w, "\nanalyzed: %d, skipped: %d, failed: %d\n",
		summary.Analyzed, summary.Skipped, summary.Failed)

	return summary, nil
}

// hasChanged reports whether the case file is newer than its report.
// Returns true if the report does not exist.
func hasChanged(casePath, reportPath string) (bool, error) {
	caseInfo, err := os.Stat(casePath)
	if err != nil {
		return false, fmt.Errorf("stat case %s: %w", casePath, err)
	}

	reportInfo, err := os.Stat(reportPath)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat report %s: %w", reportPath, err)
	}

	return caseInfo.ModTime().After(reportInfo.ModTime()), nil
}

// writeReport marshals the report to a YAML file.
func writeReport(path string, report types.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
