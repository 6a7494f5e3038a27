package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauricio/profile-matcher/internal/features"
	"github.com/mauricio/profile-matcher/internal/synthetic"
)

func trainingData(t *testing.T, n int) ([][]float64, []float64) {
	t.Helper()
	samples, err := synthetic.NewGenerator(synthetic.DefaultSeed).GenerateDataset(n)
	require.NoError(t, err)

	rows := make([][]float64, len(samples))
	targets := make([]float64, len(samples))
	for i, sample := range samples {
		rows[i] = sample.Features
		targets[i] = sample.MatchScore
	}
	return rows, targets
}

func TestTrain_EndToEnd(t *testing.T) {
	rows, targets := trainingData(t, 400)

	result, err := Train(context.Background(), rows, targets, TrainOptions{})
	require.NoError(t, err)

	assert.Len(t, result.GridResults, len(DefaultAlphas))
	assert.Equal(t, 320, result.TrainSize)
	assert.Equal(t, 80, result.TestSize)

	// The expert rules are mostly linear in the interaction terms, so ridge
	// should explain the bulk of the variance.
	assert.Greater(t, result.TestMetrics.R2, 0.5)

	artifact := result.Artifact
	require.NotNil(t, artifact)
	assert.Equal(t, ArtifactSchemaVersion, artifact.SchemaVersion)
	assert.Equal(t, features.FeatureOrderVersion, artifact.FeatureOrderVersion)
	assert.Len(t, artifact.Coefficients, features.VectorSize)
	assert.Equal(t, result.BestAlpha, artifact.Alpha)
	assert.False(t, artifact.TrainedAt.IsZero())
}

func TestTrain_Deterministic(t *testing.T) {
	rows, targets := trainingData(t, 200)

	first, err := Train(context.Background(), rows, targets, TrainOptions{Seed: 9})
	require.NoError(t, err)
	second, err := Train(context.Background(), rows, targets, TrainOptions{Seed: 9})
	require.NoError(t, err)

	assert.Equal(t, first.BestAlpha, second.BestAlpha)
	assert.Equal(t, first.Artifact.Coefficients, second.Artifact.Coefficients)
}

func TestTrain_NotEnoughSamples(t *testing.T) {
	rows, targets := trainingData(t, 5)

	_, err := Train(context.Background(), rows, targets, TrainOptions{})

	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
}

func TestTrain_PredictionsStayInRange(t *testing.T) {
	rows, targets := trainingData(t, 200)

	result, err := Train(context.Background(), rows, targets, TrainOptions{})
	require.NoError(t, err)

	for _, row := range rows[:50] {
		score, err := result.Artifact.Predict(row)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
