// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types for the statute-engine pipeline.
package types

import "time"

// Analysis is the outcome of analyzing one case description. Exactly one of
// the two arms is populated: the prediction fields on success, or Error and
// Message on failure. Failed reports which arm applies.
type Analysis struct {
	// CaseText is the raw case description as supplied by the caller.
	// Populated on both arms.
	CaseText string `json:"case_text" yaml:"case_text"`

	// Section is the predicted statute section code (e.g. "302", "304A").
	// The code universe is defined by the label decoder artifact, not by
	// this package.
	Section string `json:"predicted_section,omitempty" yaml:"predicted_section,omitempty"`

	// Confidence is the classifier's peak class probability as a percentage
	// in [0, 100]. It is the maximum over the full probability distribution,
	// independent of which class was chosen as the point prediction.
	Confidence float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`

	// Parties lists participant names detected in the raw case text, in
	// encounter order. Canonical "Person A"/"Person B"/"Person C" entries
	// are appended after pattern-matched names and may duplicate them.
	Parties []string `json:"parties,omitempty" yaml:"parties,omitempty"`

	// Explanation is the canned explanatory text for the predicted section,
	// or for a special-case topic detected in the raw text.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`

	// Recommendations is the confidence-tiered advisory text.
	Recommendations string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`

	// Error describes the underlying failure. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Message is the fixed user-facing remediation text accompanying Error.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Failed reports whether the analysis produced the failure arm.
func (a Analysis) Failed() bool {
	return a.Error != ""
}

// Report wraps one Analysis for batch output, adding provenance.
type Report struct {
	// ID is a ULID assigned when the report is written.
	ID string `json:"id" yaml:"id"`

	// CaseID is the case file name without its extension.
	CaseID string `json:"case_id" yaml:"case_id"`

	// AnalyzedAt is the wall-clock time the analysis completed.
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at"`

	Analysis `yaml:",inline"`
}
