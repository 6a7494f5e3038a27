package model

import (
	"github.com/mauricio/profile-matcher/internal/features"
)

// Interaction-term columns of the feature vector (score times weight).
const (
	interactionStart = 10
	interactionEnd   = 15
)

// Heuristic is the explicit weighted-sum strategy: the match score is the sum
// of the five score-times-weight interaction terms. It needs no training and
// is the serving default.
type Heuristic struct{}

// Predict sums the interaction terms, clipped to [0,1].
func (Heuristic) Predict(vector []float64) (float64, error) {
	if len(vector) != features.VectorSize {
		return 0, &ArtifactError{Reason: "feature vector length does not match the heuristic layout"}
	}

	score := 0.0
	for _, v := range vector[interactionStart:interactionEnd] {
		score += v
	}
	return clip01(score), nil
}

// Contributions reports each interaction term as its own contribution.
func (Heuristic) Contributions(vector []float64) (map[string]float64, error) {
	if len(vector) != features.VectorSize {
		return nil, &ArtifactError{Reason: "feature vector length does not match the heuristic layout"}
	}

	names := features.Names()
	contributions := make(map[string]float64, interactionEnd-interactionStart)
	for i := interactionStart; i < interactionEnd; i++ {
		contributions[names[i]] = vector[i]
	}
	return contributions, nil
}
