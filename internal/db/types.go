package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/mauricio/profile-matcher/internal/types"
)

// ConfigRecord is a stored institutional configuration with its identity.
type ConfigRecord struct {
	ID        uuid.UUID                 `json:"id"`
	Name      string                    `json:"name"`
	Config    types.InstitutionalConfig `json:"config"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

// ModelRecord is a stored trained model artifact. Only one record is active
// at a time; the active one is what serving processes load on startup.
type ModelRecord struct {
	ID        uuid.UUID `json:"id"`
	Active    bool      `json:"active"`
	Artifact  []byte    `json:"artifact"`
	CreatedAt time.Time `json:"created_at"`
}

// EvaluationRecord is one persisted evaluation outcome, kept for auditing
// which candidate was scored against which config and model.
type EvaluationRecord struct {
	ID             uuid.UUID  `json:"id"`
	ConfigID       uuid.UUID  `json:"config_id"`
	ModelID        *uuid.UUID `json:"model_id,omitempty"`
	MatchScore     float64    `json:"match_score"`
	Classification string     `json:"classification"`
	Report         []byte     `json:"report"`
	CreatedAt      time.Time  `json:"created_at"`
}
