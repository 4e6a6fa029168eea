// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureVectorizer covers four terms with uniform idf weights.
func fixtureVectorizer() *Vectorizer {
	return &Vectorizer{
		Vocabulary:  map[string]int{"murdered": 0, "stabbing": 1, "stole": 2, "laptop": 3},
		IDF:         []float64{1, 1, 1, 1},
		MinTokenLen: 2,
	}
}

// fixtureForest is a single tree splitting on the "murdered" column:
// above the threshold it predicts class 0 at 0.91, otherwise class 1 at 0.8.
func fixtureForest() *Forest {
	return &Forest{
		NumFeatures: 4,
		NumClasses:  2,
		Trees: []Tree{
			{
				Feature:   []int{0, leafMarker, leafMarker},
				Threshold: []float64{0.5, 0, 0},
				Left:      []int{1, 0, 0},
				Right:     []int{2, 0, 0},
				Value:     [][]float64{{0, 0}, {0.2, 0.8}, {0.91, 0.09}},
			},
		},
	}
}

func fixtureLabels() *Labels {
	return &Labels{Classes: []string{"302", "379"}}
}

func TestVectorizerTransform(t *testing.T) {
	v := fixtureVectorizer()

	vec, err := v.Transform("person a murdered person b by stabbing multiple times")
	require.NoError(t, err)
	require.Len(t, vec, 4)

	// "murdered" and "stabbing" hit; single-letter tokens and unknown terms
	// are dropped. The vector is L2-normalized.
	inv := 1 / math.Sqrt2
	assert.InDelta(t, inv, vec[0], 1e-9)
	assert.InDelta(t, inv, vec[1], 1e-9)
	assert.Zero(t, vec[2])
	assert.Zero(t, vec[3])

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestVectorizerTransformWeightsByIDF(t *testing.T) {
	v := fixtureVectorizer()
	v.IDF = []float64{3, 1, 1, 1}

	vec, err := v.Transform("murdered stabbing")
	require.NoError(t, err)

	// 3:1 idf ratio survives normalization.
	assert.InDelta(t, 3.0, vec[0]/vec[1], 1e-9)
}

func TestVectorizerTransformEmptyDoc(t *testing.T) {
	vec, err := fixtureVectorizer().Transform("")
	require.NoError(t, err)
	for i, x := range vec {
		assert.Zerof(t, x, "vec[%d]", i)
	}
}

func TestVectorizerTransformMinTokenLen(t *testing.T) {
	v := fixtureVectorizer()
	v.Vocabulary["a"] = 0 // hostile vocabulary entry shorter than the minimum

	vec, err := v.Transform("a a a")
	require.NoError(t, err)
	assert.Zero(t, vec[0], "tokens below the minimum length must be dropped")
}

func TestForestPredictProba(t *testing.T) {
	f := fixtureForest()

	probs, err := f.PredictProba([]float64{0.7, 0.7, 0, 0})
	require.NoError(t, err)
	require.Len(t, probs, 2)
	assert.InDelta(t, 0.91, probs[0], 1e-9)
	assert.InDelta(t, 0.09, probs[1], 1e-9)

	var sum float64
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestForestPredictProbaAveragesTrees(t *testing.T) {
	f := fixtureForest()
	f.Trees = append(f.Trees, Tree{
		Feature:   []int{leafMarker},
		Threshold: []float64{0},
		Left:      []int{0},
		Right:     []int{0},
		Value:     [][]float64{{0.5, 0.5}},
	})

	probs, err := f.PredictProba([]float64{0.7, 0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, (0.91+0.5)/2, probs[0], 1e-9)
	assert.InDelta(t, (0.09+0.5)/2, probs[1], 1e-9)
}

func TestForestPredict(t *testing.T) {
	f := fixtureForest()

	idx, err := f.Predict([]float64{0.7, 0.7, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = f.Predict([]float64{0, 0, 0.7, 0.7})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestForestDimensionMismatch(t *testing.T) {
	f := fixtureForest()

	_, err := f.PredictProba([]float64{1, 2})
	require.Error(t, err)

	var artErr *ArtifactError
	require.ErrorAs(t, err, &artErr)
}

func TestForestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *Forest)
	}{
		{"no trees", func(f *Forest) { f.Trees = nil }},
		{"zero classes", func(f *Forest) { f.NumClasses = 0 }},
		{"inconsistent arrays", func(f *Forest) { f.Trees[0].Threshold = f.Trees[0].Threshold[:1] }},
		{"feature out of range", func(f *Forest) { f.Trees[0].Feature[0] = 99 }},
		{"leaf class count mismatch", func(f *Forest) { f.Trees[0].Value[2] = []float64{1} }},
		{"backward child link", func(f *Forest) { f.Trees[0].Left[0] = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fixtureForest()
			tt.mutate(f)
			assert.Error(t, f.validate())
		})
	}
}

func TestLabelsDecode(t *testing.T) {
	l := fixtureLabels()

	section, err := l.Decode(0)
	require.NoError(t, err)
	assert.Equal(t, "302", section)

	section, err = l.Decode(1)
	require.NoError(t, err)
	assert.Equal(t, "379", section)

	_, err = l.Decode(2)
	require.Error(t, err)
	_, err = l.Decode(-1)
	require.Error(t, err)
}

// writeFixtureBundle writes a complete artifact directory for Load tests.
func writeFixtureBundle(t *testing.T, dir string) {
	t.Helper()
	writeArtifact(t, dir, classifierFile, fixtureForest())
	writeArtifact(t, dir, vectorizerFile, fixtureVectorizer())
	writeArtifact(t, dir, labelsFile, fixtureLabels())
	writeArtifact(t, dir, configFile, ConfigDocument{Model: "random_forest", Version: "1"})
}

func writeArtifact(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFixtureBundle(t, dir)

	b, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Vectorizer.Dim())
	assert.Equal(t, 2, b.Forest.NumClasses)
	assert.Equal(t, []string{"302", "379"}, b.Labels.Classes)
	assert.Equal(t, "random_forest", b.Config.Model)
	assert.Nil(t, b.Manifest, "manifest is optional")
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeFixtureBundle(t, dir)
	manifest := "name: ipc-case-model\nversion: \"1\"\nartifacts:\n  - rf_classifier.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestFile), []byte(manifest), 0o644))

	b, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, b.Manifest)
	assert.Equal(t, "ipc-case-model", b.Manifest.Name)
}

func TestLoadMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	writeFixtureBundle(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, classifierFile)))

	_, err := Load(dir)
	require.Error(t, err)

	var artErr *ArtifactError
	require.ErrorAs(t, err, &artErr)
	assert.Contains(t, artErr.Path, classifierFile)
}

func TestLoadCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	writeFixtureBundle(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, vectorizerFile), []byte("{not json"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)

	var artErr *ArtifactError
	require.ErrorAs(t, err, &artErr)
}

func TestLoadCrossArtifactValidation(t *testing.T) {
	t.Run("vectorizer dimension mismatch", func(t *testing.T) {
		dir := t.TempDir()
		writeFixtureBundle(t, dir)
		v := fixtureVectorizer()
		v.IDF = append(v.IDF, 1) // dim 5 vs forest's 4
		writeArtifact(t, dir, vectorizerFile, v)

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "classifier expects")
	})

	t.Run("label count mismatch", func(t *testing.T) {
		dir := t.TempDir()
		writeFixtureBundle(t, dir)
		writeArtifact(t, dir, labelsFile, &Labels{Classes: []string{"302"}})

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "label decoder")
	})
}
