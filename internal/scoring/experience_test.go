package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		years float64
	}{
		{"3 años", 3.0},
		{"2.5 years", 2.5},
		{"1 año", 1.0},
		{"18 meses", 1.5},
		{"6 months", 0.5},
		{"2019 - 2023", 4.0},
		{"4", 4.0},
		{"", 0.0},
		{"sin datos", 0.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.years, ParseDuration(tt.input), tt.input)
	}
}

func TestParseDuration_OpenRange(t *testing.T) {
	// Open ranges close at the current year
	assert.GreaterOrEqual(t, ParseDuration("2019 - presente"), 6.0)
	assert.GreaterOrEqual(t, ParseDuration("2019 - present"), 6.0)
}

func TestParseDuration_InvertedRange(t *testing.T) {
	assert.Equal(t, 0.0, ParseDuration("2023 - 2019"))
}

func TestTotalYears(t *testing.T) {
	assert.Equal(t, 3.5, TotalYears([]string{"3 años", "6 meses"}))
	assert.Equal(t, 0.0, TotalYears(nil))
}

func TestScoreExperienceYears_NoExperience(t *testing.T) {
	result, err := ScoreExperienceYears(0, 2, DefaultMaxIdealYears)

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, "Sin experiencia", result.Classification)
	assert.False(t, result.MeetsMinimum)
}

func TestScoreExperienceYears_BelowMinimum(t *testing.T) {
	result, err := ScoreExperienceYears(1, 2, DefaultMaxIdealYears)

	require.NoError(t, err)
	assert.InDelta(t, 0.25, result.Score, 1e-9)
	assert.False(t, result.MeetsMinimum)
	assert.Equal(t, -1.0, result.Delta)
}

func TestScoreExperienceYears_ExactlyMinimum(t *testing.T) {
	result, err := ScoreExperienceYears(2, 2, DefaultMaxIdealYears)

	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.True(t, result.MeetsMinimum)
}

func TestScoreExperienceYears_AtOrAboveIdeal(t *testing.T) {
	result, err := ScoreExperienceYears(5, 2, DefaultMaxIdealYears)
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Score)

	result, err = ScoreExperienceYears(12, 2, DefaultMaxIdealYears)
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, "Experiencia máxima", result.Classification)
}

func TestScoreExperienceYears_Monotonic(t *testing.T) {
	previous := -1.0
	for _, years := range []float64{0.5, 1, 2, 3, 4, 5} {
		result, err := ScoreExperienceYears(years, 2, DefaultMaxIdealYears)
		require.NoError(t, err)
		assert.Greater(t, result.Score, previous, "years=%v", years)
		previous = result.Score
	}
}

func TestScoreExperienceYears_InvalidParameters(t *testing.T) {
	var paramErr *ParameterError

	_, err := ScoreExperienceYears(3, -1, DefaultMaxIdealYears)
	require.ErrorAs(t, err, &paramErr)

	_, err = ScoreExperienceYears(3, 5, 5)
	require.ErrorAs(t, err, &paramErr)
}

func TestScoreExperience_FromDurations(t *testing.T) {
	result, err := ScoreExperience([]string{"2 años", "1 año"}, 2, DefaultMaxIdealYears)

	require.NoError(t, err)
	assert.Equal(t, 3.0, result.TotalYears)
	assert.True(t, result.MeetsMinimum)
	assert.Greater(t, result.Score, 0.5)
	assert.Less(t, result.Score, 1.0)
}
