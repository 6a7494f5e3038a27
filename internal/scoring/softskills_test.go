package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSoftSkill(t *testing.T) {
	assert.Equal(t, "trabajo en equipo", NormalizeSoftSkill("Teamwork"))
	assert.Equal(t, "liderazgo", NormalizeSoftSkill("  Liderazgo  "))
	assert.Equal(t, "comunicación", NormalizeSoftSkill("Communication"))
}

func TestSoftSkillCategory(t *testing.T) {
	assert.Equal(t, "interpersonal", SoftSkillCategory("Liderazgo"))
	assert.Equal(t, "cognitivo", SoftSkillCategory("Pensamiento crítico"))
	assert.Equal(t, "organizacional", SoftSkillCategory("Gestión del tiempo"))
	assert.Equal(t, "personal", SoftSkillCategory("Adaptabilidad"))
	assert.Equal(t, "general", SoftSkillCategory("Carpintería"))
}

func TestSoftSkillCategory_SubstringMembership(t *testing.T) {
	assert.Equal(t, "interpersonal", SoftSkillCategory("Liderazgo de equipos"))
}

func TestScoreSoftSkills_NoRequirements(t *testing.T) {
	result := ScoreSoftSkills([]string{"Liderazgo"}, nil)

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, 1.0, result.ExactMatchRatio)
}

func TestScoreSoftSkills_NoCandidateSkills(t *testing.T) {
	result := ScoreSoftSkills(nil, []string{"Liderazgo", "Empatía"})

	assert.Equal(t, 0.0, result.Score)
	assert.ElementsMatch(t, []string{"liderazgo", "empatía"}, result.Missing)
}

func TestScoreSoftSkills_AllExact(t *testing.T) {
	result := ScoreSoftSkills(
		[]string{"Liderazgo", "Trabajo en equipo"},
		[]string{"Trabajo en equipo", "Liderazgo"},
	)

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, 1.0, result.ExactMatchRatio)
	assert.Empty(t, result.Missing)
}

func TestScoreSoftSkills_EnglishSynonymMatches(t *testing.T) {
	result := ScoreSoftSkills([]string{"Teamwork"}, []string{"Trabajo en equipo"})

	assert.Equal(t, 1.0, result.ExactMatchRatio)
}

func TestScoreSoftSkills_CategoryPartialCredit(t *testing.T) {
	// No exact match, but creatividad shares the cognitive category
	result := ScoreSoftSkills([]string{"Creatividad"}, []string{"Pensamiento crítico"})

	assert.Equal(t, 0.0, result.ExactMatchRatio)
	assert.Equal(t, 1.0, result.CategoryMatchRatio)
	assert.InDelta(t, 0.30, result.Score, 1e-9)
	assert.ElementsMatch(t, []string{"creatividad"}, result.MatchedByCategory)
}

func TestScoreSoftSkills_MixedExactAndMissing(t *testing.T) {
	result := ScoreSoftSkills(
		[]string{"Liderazgo", "Comunicación"},
		[]string{"Liderazgo", "Adaptabilidad"},
	)

	assert.InDelta(t, 0.5, result.ExactMatchRatio, 1e-9)
	assert.InDelta(t, 0.5, result.CategoryMatchRatio, 1e-9)
	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.ElementsMatch(t, []string{"adaptabilidad"}, result.Missing)
}
