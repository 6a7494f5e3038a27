package synthetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauricio/profile-matcher/internal/features"
	"github.com/mauricio/profile-matcher/internal/types"
)

var uniformWeights = types.Weights{
	HardSkills: 0.2,
	SoftSkills: 0.2,
	Experience: 0.2,
	Education:  0.2,
	Languages:  0.2,
}

func TestGenerateDataset_ShapeAndBounds(t *testing.T) {
	samples, err := NewGenerator(DefaultSeed).GenerateDataset(200)
	require.NoError(t, err)
	require.Len(t, samples, 200)

	for _, sample := range samples {
		assert.Len(t, sample.Features, features.VectorSize)
		assert.GreaterOrEqual(t, sample.MatchScore, 0.0)
		assert.LessOrEqual(t, sample.MatchScore, 1.0)
		assert.Equal(t, types.Classify(sample.MatchScore, types.DefaultThresholds), sample.Classification)

		assert.LessOrEqual(t, sample.Features[15], 10.0)
		assert.LessOrEqual(t, sample.Features[16], 5.0)
		assert.InDelta(t, sample.Features[15]-sample.Features[16], sample.Features[17], 1e-9)
	}
}

func TestGenerateDataset_DeterministicPerSeed(t *testing.T) {
	first, err := NewGenerator(7).GenerateDataset(50)
	require.NoError(t, err)
	second, err := NewGenerator(7).GenerateDataset(50)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateDataset_SeedChangesOutput(t *testing.T) {
	first, err := NewGenerator(1).GenerateDataset(10)
	require.NoError(t, err)
	second, err := NewGenerator(2).GenerateDataset(10)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestExpertScore_StrongProfileSaturates(t *testing.T) {
	scores := types.CVScores{
		HardSkills: 0.8,
		SoftSkills: 0.8,
		Experience: 0.8,
		Education:  1.0,
		Languages:  0.8,
	}

	score := expertScore(scores, uniformWeights, 5, 1)

	assert.Equal(t, 1.0, score)
}

func TestExpertScore_WeakProfileCollapses(t *testing.T) {
	scores := types.CVScores{
		HardSkills: 0.2,
		SoftSkills: 0.2,
		Experience: 0.2,
		Education:  0.25,
		Languages:  0.2,
	}

	// base 0.21, halved for zero experience against a 3-year minimum,
	// language penalty, then the multi-failure penalty
	score := expertScore(scores, uniformWeights, 0, 3)

	assert.InDelta(t, 0.21*0.5*0.80*0.60, score, 1e-9)
}

func TestExpertScore_TopWeightedDimensionPenalty(t *testing.T) {
	weights := types.Weights{
		HardSkills: 0.40,
		SoftSkills: 0.15,
		Experience: 0.15,
		Education:  0.15,
		Languages:  0.15,
	}
	weak := types.CVScores{
		HardSkills: 0.35,
		SoftSkills: 0.6,
		Experience: 0.6,
		Education:  0.75,
		Languages:  0.6,
	}
	solid := weak
	solid.HardSkills = 0.55

	weakScore := expertScore(weak, weights, 3, 1)
	solidScore := expertScore(solid, weights, 3, 1)

	assert.Less(t, weakScore, solidScore)
}

func TestExpertScore_ExperienceDeficitIsProportional(t *testing.T) {
	scores := types.CVScores{
		HardSkills: 0.6,
		SoftSkills: 0.6,
		Experience: 0.6,
		Education:  0.75,
		Languages:  0.6,
	}

	meets := expertScore(scores, uniformWeights, 4, 4)
	short := expertScore(scores, uniformWeights, 2, 4)

	// 2 of 4 required years scores the 0.5+0.5*(2/4) factor
	assert.InDelta(t, meets*0.75, short, 1e-9)
}
