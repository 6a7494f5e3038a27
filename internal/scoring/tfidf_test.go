package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTFIDFSimilarity_IdenticalTexts(t *testing.T) {
	skills := []string{"Python", "SQL", "Docker"}

	assert.InDelta(t, 1.0, tfidfSimilarity(skills, skills), 1e-9)
}

func TestTFIDFSimilarity_DisjointTexts(t *testing.T) {
	similarity := tfidfSimilarity(
		[]string{"Python", "Django"},
		[]string{"Java", "Spring"},
	)

	assert.Equal(t, 0.0, similarity)
}

func TestTFIDFSimilarity_PartialOverlap(t *testing.T) {
	similarity := tfidfSimilarity(
		[]string{"Python", "SQL"},
		[]string{"Python", "Kubernetes"},
	)

	assert.Greater(t, similarity, 0.0)
	assert.Less(t, similarity, 1.0)
}

func TestTFIDFSimilarity_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, tfidfSimilarity(nil, []string{"Python"}))
	assert.Equal(t, 0.0, tfidfSimilarity([]string{"Python"}, nil))
}
