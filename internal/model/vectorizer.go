// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"math"
	"strings"
)

// Vectorizer is a fitted TF-IDF transform. The vocabulary and idf weights
// are fixed at fit time; Transform must not be given documents that were
// normalized differently from the fitting corpus.
type Vectorizer struct {
	// Vocabulary maps a term to its column index in the feature vector.
	Vocabulary map[string]int `json:"vocabulary"`

	// IDF holds one inverse-document-frequency weight per column.
	IDF []float64 `json:"idf"`

	// MinTokenLen is the minimum token length the fitted tokenizer kept.
	// Shorter tokens never entered the vocabulary and are dropped at
	// transform time.
	MinTokenLen int `json:"min_token_len"`
}

// Dim returns the fixed dimensionality of vectors this transform produces.
func (v *Vectorizer) Dim() int {
	return len(v.IDF)
}

// validate checks internal consistency of the fitted transform.
func (v *Vectorizer) validate() error {
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return artifactErrf("vectorizer: term %q has index %d outside idf range [0,%d)", term, idx, len(v.IDF))
		}
	}
	return nil
}

// Transform converts one normalized document into a fixed-dimension feature
// vector: raw term counts weighted by idf, then L2-normalized. Terms outside
// the fitted vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) ([]float64, error) {
	if len(v.IDF) == 0 {
		return nil, artifactErrf("vectorizer: empty idf vector")
	}

	vec := make([]float64, len(v.IDF))
	for _, token := range strings.Fields(doc) {
		if len(token) < v.MinTokenLen {
			continue
		}
		idx, ok := v.Vocabulary[token]
		if !ok {
			continue
		}
		vec[idx] += v.IDF[idx]
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec, nil
}
