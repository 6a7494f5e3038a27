package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageLevelScore(t *testing.T) {
	tests := []struct {
		input string
		score float64
	}{
		{"Inglés (C2)", 0.95},
		{"English C1", 0.90},
		{"Inglés (B2)", 0.75},
		{"Francés B1", 0.60},
		{"Alemán A2", 0.45},
		{"Portugués A1", 0.35},
		{"Español (Nativo)", 1.00},
		{"Español lengua materna", 1.00},
		{"English advanced", 0.85},
		{"Inglés avanzado", 0.85},
		{"French fluent", 0.80},
		{"Inglés intermedio", 0.55},
		{"Francés básico", 0.30},
		{"Alemán", 0.50},
		{"", 0.50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.score, LanguageLevelScore(tt.input), tt.input)
	}
}

func TestParseLanguage(t *testing.T) {
	parsed := ParseLanguage("Inglés (B2)")
	assert.Equal(t, "Inglés", parsed.Language)
	assert.Equal(t, "B2", parsed.Level)
	assert.Equal(t, 0.75, parsed.Score)

	parsed = ParseLanguage("Español")
	assert.Equal(t, "Español", parsed.Language)
	assert.Equal(t, "Sin especificar", parsed.Level)
	assert.Equal(t, 0.50, parsed.Score)
}

func TestScoreLanguages_NoRequirements(t *testing.T) {
	result := ScoreLanguages([]string{"Inglés (B2)"}, nil)

	assert.Equal(t, 1.0, result.Score)
}

func TestScoreLanguages_MatchedRequirement(t *testing.T) {
	result := ScoreLanguages(
		[]string{"Español (Nativo)", "Inglés (B2)"},
		[]string{"Inglés"},
	)

	assert.Equal(t, 0.75, result.Score)
	assert.ElementsMatch(t, []string{"Inglés"}, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestScoreLanguages_MissingScoresZero(t *testing.T) {
	result := ScoreLanguages(
		[]string{"Inglés (C1)"},
		[]string{"Inglés", "Alemán"},
	)

	assert.InDelta(t, 0.45, result.Score, 1e-9)
	assert.ElementsMatch(t, []string{"Alemán"}, result.Missing)
}

func TestScoreLanguages_NameIsSubstringMatch(t *testing.T) {
	result := ScoreLanguages([]string{"Inglés técnico (B2)"}, []string{"Inglés"})

	assert.Equal(t, 0.75, result.Score)
}

func TestScoreLanguages_NoCandidateLanguages(t *testing.T) {
	result := ScoreLanguages(nil, []string{"Inglés"})

	assert.Equal(t, 0.0, result.Score)
	assert.ElementsMatch(t, []string{"Inglés"}, result.Missing)

	assert.Len(t, result.Details, 1)
	assert.False(t, result.Details[0].Found)
}
