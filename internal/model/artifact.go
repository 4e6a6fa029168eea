// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package model loads pre-trained model artifacts and runs inference with
// them: a TF-IDF vectorizer, a random-forest classifier, and a label
// decoder, plus an auxiliary configuration document. All artifacts are
// read-only once loaded.
package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// ArtifactError indicates that a model artifact could not be loaded or
// applied: a missing or corrupt file, or a shape mismatch between the
// artifact and its input. It is the only failure kind this package reports.
type ArtifactError struct {
	// Path is the artifact file involved, when known.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *ArtifactError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("model artifact: %v", e.Err)
	}
	return fmt.Sprintf("model artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// artifactErrf wraps a formatted cause in an ArtifactError without a path.
func artifactErrf(format string, args ...any) error {
	return &ArtifactError{Err: fmt.Errorf(format, args...)}
}

// loadJSON reads path and unmarshals it into v, reporting any failure as
// an ArtifactError carrying the path.
func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ArtifactError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ArtifactError{Path: path, Err: fmt.Errorf("parsing: %w", err)}
	}
	return nil
}
