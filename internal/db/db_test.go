package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mauricio/profile-matcher/internal/types"
)

func TestConfigRecordType(t *testing.T) {
	record := ConfigRecord{
		Name: "universidad-tecnica",
		Config: types.InstitutionalConfig{
			Weights: types.Weights{HardSkills: 0.45, SoftSkills: 0.15, Experience: 0.20, Education: 0.10, Languages: 0.10},
		},
	}

	assert.Equal(t, "universidad-tecnica", record.Name)
	assert.InDelta(t, 1.0, record.Config.Weights.Sum(), 1e-9)
}

func TestEvaluationRecordType(t *testing.T) {
	record := EvaluationRecord{
		ConfigID:       uuid.New(),
		MatchScore:     0.72,
		Classification: "APTO",
	}

	assert.Nil(t, record.ModelID)
	assert.Equal(t, "APTO", record.Classification)
}
