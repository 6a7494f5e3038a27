package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauricio/profile-matcher/internal/features"
	"github.com/mauricio/profile-matcher/internal/types"
)

func heuristicVector(t *testing.T, scores types.CVScores, weights types.Weights) []float64 {
	t.Helper()
	vector, err := features.Build(features.Input{Scores: scores, Weights: weights, TotalYears: 3, MinRequired: 1})
	require.NoError(t, err)
	return vector
}

func TestHeuristicPredict_IsWeightedSum(t *testing.T) {
	vector := heuristicVector(t,
		types.CVScores{HardSkills: 0.8, SoftSkills: 0.6, Experience: 0.5, Education: 1.0, Languages: 0.7},
		types.Weights{HardSkills: 0.45, SoftSkills: 0.15, Experience: 0.20, Education: 0.10, Languages: 0.10},
	)

	score, err := Heuristic{}.Predict(vector)
	require.NoError(t, err)

	expected := 0.8*0.45 + 0.6*0.15 + 0.5*0.20 + 1.0*0.10 + 0.7*0.10
	assert.InDelta(t, expected, score, 1e-9)
}

func TestHeuristicPredict_LengthMismatch(t *testing.T) {
	_, err := Heuristic{}.Predict([]float64{1, 2, 3})

	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
}

func TestHeuristicContributions(t *testing.T) {
	vector := heuristicVector(t,
		types.CVScores{HardSkills: 0.8, SoftSkills: 0.6, Experience: 0.5, Education: 1.0, Languages: 0.7},
		types.Weights{HardSkills: 0.45, SoftSkills: 0.15, Experience: 0.20, Education: 0.10, Languages: 0.10},
	)

	contributions, err := Heuristic{}.Contributions(vector)
	require.NoError(t, err)

	require.Len(t, contributions, 5)
	assert.InDelta(t, 0.8*0.45, contributions["interaction_hard"], 1e-9)
	assert.InDelta(t, 1.0*0.10, contributions["interaction_edu"], 1e-9)
}

func TestRegistry_NotReady(t *testing.T) {
	registry := NewRegistry()

	assert.False(t, registry.Ready())

	_, err := registry.Get()
	var notReady *ModelNotReadyError
	require.ErrorAs(t, err, &notReady)
}

func TestRegistry_ReloadPublishes(t *testing.T) {
	registry := NewRegistry()
	artifact := testArtifact()

	registry.Reload(artifact)

	assert.True(t, registry.Ready())
	loaded, err := registry.Get()
	require.NoError(t, err)
	assert.Same(t, artifact, loaded)
}

func TestRegistry_ConcurrentReaders(t *testing.T) {
	registry := NewRegistry()
	registry.Reload(testArtifact())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if j%10 == 0 {
					registry.Reload(testArtifact())
				}
				artifact, err := registry.Get()
				assert.NoError(t, err)
				assert.NotNil(t, artifact)
			}
		}()
	}
	wg.Wait()
}
