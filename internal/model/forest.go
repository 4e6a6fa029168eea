// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

// leafMarker is the feature value that marks a leaf node in the flattened
// tree arrays, matching the export convention of the training pipeline.
const leafMarker = -2

// Tree is one decision tree in flattened-array form. Index i across the
// five arrays describes node i; node 0 is the root.
type Tree struct {
	// Feature is the column tested at each node, or leafMarker for leaves.
	Feature []int `json:"feature"`

	// Threshold is the split value: inputs with vec[feature] <= threshold
	// descend left, others right.
	Threshold []float64 `json:"threshold"`

	// Left and Right are child node indexes.
	Left  []int `json:"children_left"`
	Right []int `json:"children_right"`

	// Value holds the class distribution at each node. Only leaf rows are
	// consulted during inference.
	Value [][]float64 `json:"value"`
}

// Forest is a fitted random-forest classifier over a fixed feature space
// and class set.
type Forest struct {
	// NumFeatures is the input vector dimensionality the forest was fit on.
	NumFeatures int `json:"n_features"`

	// NumClasses is the number of classes in the fitted label set.
	NumClasses int `json:"n_classes"`

	// Trees are the ensemble members.
	Trees []Tree `json:"trees"`
}

// validate checks structural consistency of the fitted forest so that
// traversal cannot index out of range.
func (f *Forest) validate() error {
	if f.NumFeatures <= 0 {
		return artifactErrf("classifier: n_features must be positive, got %d", f.NumFeatures)
	}
	if f.NumClasses <= 0 {
		return artifactErrf("classifier: n_classes must be positive, got %d", f.NumClasses)
	}
	if len(f.Trees) == 0 {
		return artifactErrf("classifier: forest has no trees")
	}

	for ti, tree := range f.Trees {
		n := len(tree.Feature)
		if n == 0 {
			return artifactErrf("classifier: tree %d is empty", ti)
		}
		if len(tree.Threshold) != n || len(tree.Left) != n || len(tree.Right) != n || len(tree.Value) != n {
			return artifactErrf("classifier: tree %d has inconsistent node arrays", ti)
		}
		for i := 0; i < n; i++ {
			if tree.Feature[i] == leafMarker {
				if len(tree.Value[i]) != f.NumClasses {
					return artifactErrf("classifier: tree %d leaf %d has %d class values, want %d", ti, i, len(tree.Value[i]), f.NumClasses)
				}
				continue
			}
			if tree.Feature[i] < 0 || tree.Feature[i] >= f.NumFeatures {
				return artifactErrf("classifier: tree %d node %d tests feature %d outside [0,%d)", ti, i, tree.Feature[i], f.NumFeatures)
			}
			if tree.Left[i] < 0 || tree.Left[i] >= n || tree.Right[i] < 0 || tree.Right[i] >= n {
				return artifactErrf("classifier: tree %d node %d has child index out of range", ti, i)
			}
			if tree.Left[i] <= i || tree.Right[i] <= i {
				return artifactErrf("classifier: tree %d node %d has non-forward child link", ti, i)
			}
		}
	}
	return nil
}

// leafDistribution walks one tree for vec and returns the class distribution
// at the reached leaf, normalized to sum to 1.
func (t *Tree) leafDistribution(vec []float64, numClasses int) []float64 {
	node := 0
	for t.Feature[node] != leafMarker {
		if vec[t.Feature[node]] <= t.Threshold[node] {
			node = t.Left[node]
		} else {
			node = t.Right[node]
		}
	}

	dist := make([]float64, numClasses)
	var total float64
	for i, v := range t.Value[node] {
		dist[i] = v
		total += v
	}
	if total > 0 {
		for i := range dist {
			dist[i] /= total
		}
	}
	return dist
}

// PredictProba returns the full class probability distribution for vec:
// the mean of the per-tree leaf distributions. The result sums to 1 within
// floating tolerance and is ordered by internal class index.
func (f *Forest) PredictProba(vec []float64) ([]float64, error) {
	if len(vec) != f.NumFeatures {
		return nil, artifactErrf("classifier: input has %d features, model expects %d", len(vec), f.NumFeatures)
	}

	probs := make([]float64, f.NumClasses)
	for i := range f.Trees {
		dist := f.Trees[i].leafDistribution(vec, f.NumClasses)
		for c, p := range dist {
			probs[c] += p
		}
	}
	for c := range probs {
		probs[c] /= float64(len(f.Trees))
	}
	return probs, nil
}

// Predict returns the internal class index of the point prediction: the
// argmax of the averaged distribution, lowest index winning ties.
func (f *Forest) Predict(vec []float64) (int, error) {
	probs, err := f.PredictProba(vec)
	if err != nil {
		return 0, err
	}

	best := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return best, nil
}
