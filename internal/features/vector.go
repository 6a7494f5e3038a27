// Package features builds the fixed-order numeric vector that feeds the
// match-score models. The column order is a stable contract shared by the
// synthetic dataset, the trainer and every persisted model artifact.
package features

import (
	"fmt"

	"github.com/mauricio/profile-matcher/internal/types"
)

// FeatureOrderVersion identifies the column layout below. Model artifacts
// record it and refuse to load against a different layout.
const FeatureOrderVersion = 1

// VectorSize is the number of columns in a feature vector.
const VectorSize = 18

// Allowed deviation of the institutional weight sum from 1.0.
const weightSumTolerance = 0.01

var featureNames = [VectorSize]string{
	"hard_skills_score",
	"soft_skills_score",
	"experience_score",
	"education_score",
	"languages_score",
	"inst_weight_hard",
	"inst_weight_soft",
	"inst_weight_exp",
	"inst_weight_edu",
	"inst_weight_lang",
	"interaction_hard",
	"interaction_soft",
	"interaction_exp",
	"interaction_edu",
	"interaction_lang",
	"total_experience_years",
	"min_required_years",
	"experience_delta",
}

// Names returns the canonical column names in vector order.
func Names() []string {
	names := make([]string, VectorSize)
	copy(names[:], featureNames[:])
	return names
}

// Input bundles everything the vector is built from: the five dimension
// scores, the institutional weights and the raw experience numbers.
type Input struct {
	Scores      types.CVScores
	Weights     types.Weights
	TotalYears  float64
	MinRequired float64
}

// Build assembles the 18-column feature vector: the five dimension scores,
// the five institutional weights, the five score-times-weight interaction
// terms, and the three raw experience columns.
func Build(in Input) ([]float64, error) {
	if sum := in.Weights.Sum(); sum < 1.0-weightSumTolerance || sum > 1.0+weightSumTolerance {
		return nil, &types.ConfigError{
			Reason: fmt.Sprintf("weights must sum to 1.0 ±%.2f (got %.4f)", weightSumTolerance, sum),
		}
	}

	s := in.Scores
	w := in.Weights
	return []float64{
		s.HardSkills,
		s.SoftSkills,
		s.Experience,
		s.Education,
		s.Languages,
		w.HardSkills,
		w.SoftSkills,
		w.Experience,
		w.Education,
		w.Languages,
		s.HardSkills * w.HardSkills,
		s.SoftSkills * w.SoftSkills,
		s.Experience * w.Experience,
		s.Education * w.Education,
		s.Languages * w.Languages,
		in.TotalYears,
		in.MinRequired,
		in.TotalYears - in.MinRequired,
	}, nil
}

// AsMap pairs a vector with its column names for contribution reporting.
func AsMap(vector []float64) map[string]float64 {
	m := make(map[string]float64, len(vector))
	for i, value := range vector {
		if i >= VectorSize {
			break
		}
		m[featureNames[i]] = value
	}
	return m
}
