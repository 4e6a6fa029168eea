// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Artifact file names within a model directory.
const (
	classifierFile = "rf_classifier.json"
	vectorizerFile = "tfidf_vectorizer.json"
	labelsFile     = "label_encoder.json"
	configFile     = "model_config.json"
	manifestFile   = "manifest.yaml"
)

// Labels decodes internal class indexes to statute section codes. The
// mapping is bijective over [0, len(Classes)).
type Labels struct {
	// Classes holds the section code for each internal class index.
	Classes []string `json:"classes"`
}

// Decode maps an internal class index to its section code.
func (l *Labels) Decode(idx int) (string, error) {
	if idx < 0 || idx >= len(l.Classes) {
		return "", artifactErrf("label decoder: class index %d outside [0,%d)", idx, len(l.Classes))
	}
	return l.Classes[idx], nil
}

// ConfigDocument is the auxiliary configuration shipped alongside the model.
// Its keys are informational; nothing in the pipeline branches on them.
type ConfigDocument struct {
	Model     string `json:"model" yaml:"model"`
	Version   string `json:"version" yaml:"version"`
	TrainedAt string `json:"trained_at" yaml:"trained_at"`
	Notes     string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Manifest is optional bundle metadata listing the artifact files.
type Manifest struct {
	Name      string   `yaml:"name"`
	Version   string   `yaml:"version"`
	Artifacts []string `yaml:"artifacts"`
}

// Bundle holds the four loaded artifacts. A Bundle is immutable after Load
// and safe for concurrent use.
type Bundle struct {
	Vectorizer *Vectorizer
	Forest     *Forest
	Labels     *Labels
	Config     ConfigDocument

	// Manifest is non-nil when the model directory ships a manifest.yaml.
	Manifest *Manifest
}

// Load reads the classifier, vectorizer, label decoder, and configuration
// document from dir and validates that their shapes agree: the vectorizer's
// dimensionality must match the forest's feature count, and the decoder must
// cover exactly the forest's class set. Every failure is an ArtifactError.
func Load(dir string) (*Bundle, error) {
	var forest Forest
	if err := loadJSON(filepath.Join(dir, classifierFile), &forest); err != nil {
		return nil, err
	}
	if err := forest.validate(); err != nil {
		return nil, err
	}

	var vectorizer Vectorizer
	if err := loadJSON(filepath.Join(dir, vectorizerFile), &vectorizer); err != nil {
		return nil, err
	}
	if err := vectorizer.validate(); err != nil {
		return nil, err
	}

	var labels Labels
	if err := loadJSON(filepath.Join(dir, labelsFile), &labels); err != nil {
		return nil, err
	}

	var config ConfigDocument
	if err := loadJSON(filepath.Join(dir, configFile), &config); err != nil {
		return nil, err
	}

	if vectorizer.Dim() != forest.NumFeatures {
		return nil, artifactErrf("vectorizer produces %d features but classifier expects %d", vectorizer.Dim(), forest.NumFeatures)
	}
	if len(labels.Classes) != forest.NumClasses {
		return nil, artifactErrf("label decoder has %d classes but classifier has %d", len(labels.Classes), forest.NumClasses)
	}

	b := &Bundle{
		Vectorizer: &vectorizer,
		Forest:     &forest,
		Labels:     &labels,
		Config:     config,
	}

	manifest, err := loadManifest(filepath.Join(dir, manifestFile))
	if err != nil {
		return nil, err
	}
	b.Manifest = manifest

	return b, nil
}

// loadManifest reads the optional bundle manifest. A missing file is not
// an error; a malformed one is.
func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &ArtifactError{Path: path, Err: err}
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ArtifactError{Path: path, Err: err}
	}
	return &m, nil
}
