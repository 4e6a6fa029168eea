// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AnalyzerConfig holds settings for the analysis pipeline.
type AnalyzerConfig struct {
	// ModelDir is the directory holding the model artifacts
	// (rf_classifier.json, tfidf_vectorizer.json, label_encoder.json,
	// model_config.json, and optionally manifest.yaml).
	ModelDir string `json:"model_dir" yaml:"model_dir"`
}

// BatchConfig holds settings for batch analysis runs.
type BatchConfig struct {
	AnalyzerConfig `yaml:",inline"`

	// CasesDir is the directory scanned for *.txt case files.
	CasesDir string `json:"cases_dir" yaml:"cases_dir"`

	// ReportsDir is the directory where per-case YAML reports are written.
	ReportsDir string `json:"reports_dir" yaml:"reports_dir"`
}
