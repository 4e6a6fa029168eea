// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyzer composes the analysis pipeline: normalize, vectorize,
// classify, extract participants, explain, recommend. It owns error
// containment: any artifact failure collapses into the failure arm of the
// result at this boundary.
package analyzer

import (
	"github.com/pdiddy/statute-engine/internal/explain"
	"github.com/pdiddy/statute-engine/internal/model"
	"github.com/pdiddy/statute-engine/internal/textproc"
	"github.com/pdiddy/statute-engine/pkg/types"
)

// FailureMessage is the fixed user-facing remediation text on the failure
// arm of an Analysis.
const FailureMessage = "An error occurred during analysis. Please check if all model files are available."

// Analyzer runs the analysis pipeline against an injected artifact bundle.
type Analyzer struct {
	bundle *model.Bundle
}

// New returns an Analyzer using the given loaded bundle.
func New(bundle *model.Bundle) *Analyzer {
	return &Analyzer{bundle: bundle}
}

// Analyze maps one case description to its most applicable statute section.
// On any pipeline failure it returns the failure arm: the original case
// text, the error description, and FailureMessage — no partial results,
// even for stages that did not depend on the failed one.
func (a *Analyzer) Analyze(caseText string) types.Analysis {
	result, err := a.run(caseText)
	if err != nil {
		return types.Analysis{
			CaseText: caseText,
			Error:    err.Error(),
			Message:  FailureMessage,
		}
	}
	return result
}

// run executes the pipeline stages in order, returning the first error.
func (a *Analyzer) run(caseText string) (types.Analysis, error) {
	doc := textproc.Normalize(caseText)

	vec, err := a.bundle.Vectorizer.Transform(doc)
	if err != nil {
		return types.Analysis{}, err
	}

	idx, err := a.bundle.Forest.Predict(vec)
	if err != nil {
		return types.Analysis{}, err
	}

	probs, err := a.bundle.Forest.PredictProba(vec)
	if err != nil {
		return types.Analysis{}, err
	}

	section, err := a.bundle.Labels.Decode(idx)
	if err != nil {
		return types.Analysis{}, err
	}

	// Confidence is the distribution's peak, not the probability of the
	// decoded index. The decoupling is part of the contract.
	confidence := maxProb(probs) * 100

	return types.Analysis{
		CaseText:        caseText,
		Section:         section,
		Confidence:      confidence,
		Parties:         textproc.Participants(caseText),
		Explanation:     explain.Explain(section, caseText),
		Recommendations: explain.Recommend(confidence),
	}, nil
}

// LoadAndAnalyze loads the artifact bundle fresh from cfg.ModelDir and
// analyzes one case. Loading per call mirrors the original design; the
// artifacts are immutable, so callers holding a Bundle may instead reuse
// it through New.
func LoadAndAnalyze(cfg types.AnalyzerConfig, caseText string) types.Analysis {
	bundle, err := model.Load(cfg.ModelDir)
	if err != nil {
		return types.Analysis{
			CaseText: caseText,
			Error:    err.Error(),
			Message:  FailureMessage,
		}
	}
	return New(bundle).Analyze(caseText)
}

// maxProb returns the largest probability in the distribution.
func maxProb(probs []float64) float64 {
	best := 0.0
	for _, p := range probs {
		if p > best {
			best = p
		}
	}
	return best
}
