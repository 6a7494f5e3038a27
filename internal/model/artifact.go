package model

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/mauricio/profile-matcher/internal/features"
	"github.com/mauricio/profile-matcher/internal/types"
)

// ArtifactSchemaVersion is bumped whenever the artifact JSON layout changes.
const ArtifactSchemaVersion = 1

// Strategy scores a feature vector and explains the score per feature. Both
// the trained ridge artifact and the raw weighted-sum heuristic implement it.
type Strategy interface {
	Predict(vector []float64) (float64, error)
	Contributions(vector []float64) (map[string]float64, error)
}

// Artifact is a trained model in its persistable form. It is read-only after
// load so it can be shared across goroutines without locks.
type Artifact struct {
	SchemaVersion       int       `json:"schema_version"`
	FeatureOrderVersion int       `json:"feature_order_version"`
	FeatureNames        []string  `json:"feature_names"`
	Alpha               float64   `json:"alpha"`
	Coefficients        []float64 `json:"coefficients"`
	Intercept           float64   `json:"intercept"`
	ScalerMeans         []float64 `json:"scaler_means"`
	ScalerStds          []float64 `json:"scaler_stds"`
	TrainingMetrics     Metrics   `json:"training_metrics"`
	CVMeanR2            float64   `json:"cv_mean_r2"`
	TrainedAt           time.Time `json:"trained_at"`
}

// DecodeArtifact parses and validates a persisted artifact.
func DecodeArtifact(data []byte) (*Artifact, error) {
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, &ArtifactError{Reason: "malformed artifact JSON", Cause: err}
	}

	if artifact.SchemaVersion != ArtifactSchemaVersion {
		return nil, &ArtifactError{Reason: "unsupported artifact schema version"}
	}
	if artifact.FeatureOrderVersion != features.FeatureOrderVersion {
		return nil, &ArtifactError{Reason: "artifact was trained against a different feature order"}
	}
	if len(artifact.Coefficients) != features.VectorSize ||
		len(artifact.ScalerMeans) != features.VectorSize ||
		len(artifact.ScalerStds) != features.VectorSize {
		return nil, &ArtifactError{Reason: "artifact coefficient shape does not match the feature vector"}
	}

	return &artifact, nil
}

// Encode serializes the artifact for storage.
func (a *Artifact) Encode() ([]byte, error) {
	return json.Marshal(a)
}

func (a *Artifact) ridge() *Ridge {
	return &Ridge{
		Alpha:        a.Alpha,
		Coefficients: a.Coefficients,
		Intercept:    a.Intercept,
		Scaler:       &Scaler{Means: a.ScalerMeans, Stds: a.ScalerStds},
	}
}

// Predict scores a feature vector with the trained coefficients.
func (a *Artifact) Predict(vector []float64) (float64, error) {
	return a.ridge().Predict(vector)
}

// Contributions attributes the score to each feature as coefficient times
// standardized value. The intercept is not attributed to any feature.
func (a *Artifact) Contributions(vector []float64) (map[string]float64, error) {
	if len(vector) != len(a.Coefficients) {
		return nil, &ArtifactError{Reason: "feature vector length does not match model"}
	}

	scaled := a.ridge().Scaler.Transform(vector)
	contributions := make(map[string]float64, len(vector))
	for i, name := range a.FeatureNames {
		contributions[name] = a.Coefficients[i] * scaled[i]
	}
	return contributions, nil
}

// TopContributions returns the n features with the largest (desc=true) or
// smallest contributions, name-ordered on ties for stable output.
func TopContributions(contributions map[string]float64, n int, desc bool) []types.Contribution {
	ranked := make([]types.Contribution, 0, len(contributions))
	for name, value := range contributions {
		ranked = append(ranked, types.Contribution{Feature: name, Value: value})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value == ranked[j].Value {
			return ranked[i].Feature < ranked[j].Feature
		}
		if desc {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Value < ranked[j].Value
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
