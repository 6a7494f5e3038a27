package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauricio/profile-matcher/internal/features"
)

func testArtifact() *Artifact {
	coefficients := make([]float64, features.VectorSize)
	means := make([]float64, features.VectorSize)
	stds := make([]float64, features.VectorSize)
	for i := range coefficients {
		coefficients[i] = 0.01 * float64(i+1)
		stds[i] = 1
	}
	return &Artifact{
		SchemaVersion:       ArtifactSchemaVersion,
		FeatureOrderVersion: features.FeatureOrderVersion,
		FeatureNames:        features.Names(),
		Alpha:               1.0,
		Coefficients:        coefficients,
		Intercept:           0.5,
		ScalerMeans:         means,
		ScalerStds:          stds,
		TrainedAt:           time.Now().UTC(),
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	original := testArtifact()

	data, err := original.Encode()
	require.NoError(t, err)

	decoded, err := DecodeArtifact(data)
	require.NoError(t, err)
	assert.Equal(t, original.Coefficients, decoded.Coefficients)
	assert.Equal(t, original.Intercept, decoded.Intercept)
	assert.Equal(t, original.FeatureNames, decoded.FeatureNames)
}

func TestDecodeArtifact_RejectsWrongSchemaVersion(t *testing.T) {
	artifact := testArtifact()
	artifact.SchemaVersion = 99
	data, err := artifact.Encode()
	require.NoError(t, err)

	_, err = DecodeArtifact(data)

	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
}

func TestDecodeArtifact_RejectsWrongFeatureOrder(t *testing.T) {
	artifact := testArtifact()
	artifact.FeatureOrderVersion = 99
	data, err := artifact.Encode()
	require.NoError(t, err)

	_, err = DecodeArtifact(data)

	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
}

func TestDecodeArtifact_RejectsShapeMismatch(t *testing.T) {
	artifact := testArtifact()
	artifact.Coefficients = artifact.Coefficients[:3]
	data, err := artifact.Encode()
	require.NoError(t, err)

	_, err = DecodeArtifact(data)

	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
}

func TestDecodeArtifact_MalformedJSON(t *testing.T) {
	_, err := DecodeArtifact([]byte("{not json"))

	var artifactErr *ArtifactError
	require.ErrorAs(t, err, &artifactErr)
}

func TestArtifactContributions(t *testing.T) {
	artifact := testArtifact()
	vector := make([]float64, features.VectorSize)
	for i := range vector {
		vector[i] = 1
	}

	contributions, err := artifact.Contributions(vector)
	require.NoError(t, err)

	require.Len(t, contributions, features.VectorSize)
	// identity scaler: contribution = coefficient * value
	assert.InDelta(t, 0.01, contributions["hard_skills_score"], 1e-9)
	assert.InDelta(t, 0.18, contributions["experience_delta"], 1e-9)
}

func TestTopContributions(t *testing.T) {
	contributions := map[string]float64{
		"a": 0.5,
		"b": -0.2,
		"c": 0.3,
		"d": 0.1,
	}

	strengths := TopContributions(contributions, 3, true)
	weaknesses := TopContributions(contributions, 3, false)

	require.Len(t, strengths, 3)
	assert.Equal(t, "a", strengths[0].Feature)
	assert.Equal(t, "c", strengths[1].Feature)

	require.Len(t, weaknesses, 3)
	assert.Equal(t, "b", weaknesses[0].Feature)
	assert.Equal(t, "d", weaknesses[1].Feature)
}
