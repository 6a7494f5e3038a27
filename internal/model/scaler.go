// Package model holds the match-score models: a ridge regression trained on
// synthetic data, the raw weighted-sum heuristic, and the registry that
// publishes the serving artifact.
package model

import "math"

// Scaler standardizes features to zero mean and unit variance using the
// statistics of the training set. Constant columns keep a std of 1 so they
// pass through unchanged.
type Scaler struct {
	Means []float64 `json:"means"`
	Stds  []float64 `json:"stds"`
}

// FitScaler computes per-column mean and population standard deviation.
func FitScaler(rows [][]float64) *Scaler {
	if len(rows) == 0 {
		return &Scaler{}
	}
	cols := len(rows[0])
	n := float64(len(rows))

	means := make([]float64, cols)
	for _, row := range rows {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= n
	}

	stds := make([]float64, cols)
	for _, row := range rows {
		for j, v := range row {
			d := v - means[j]
			stds[j] += d * d
		}
	}
	for j := range stds {
		stds[j] = math.Sqrt(stds[j] / n)
		if stds[j] == 0 {
			stds[j] = 1
		}
	}

	return &Scaler{Means: means, Stds: stds}
}

// Transform standardizes a single feature vector.
func (s *Scaler) Transform(vector []float64) []float64 {
	scaled := make([]float64, len(vector))
	for j, v := range vector {
		scaled[j] = (v - s.Means[j]) / s.Stds[j]
	}
	return scaled
}

// TransformAll standardizes a whole matrix of rows.
func (s *Scaler) TransformAll(rows [][]float64) [][]float64 {
	scaled := make([][]float64, len(rows))
	for i, row := range rows {
		scaled[i] = s.Transform(row)
	}
	return scaled
}
