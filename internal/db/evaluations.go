package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mauricio/profile-matcher/internal/engine"
)

// SaveEvaluation persists an evaluation outcome for auditing. modelID is nil
// for heuristic evaluations.
func (db *DB) SaveEvaluation(ctx context.Context, configID uuid.UUID, modelID *uuid.UUID, report *engine.Report) (uuid.UUID, error) {
	content, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal evaluation report: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO evaluations (config_id, model_id, match_score, classification, report)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		configID, modelID, report.Prediction.MatchScore, string(report.Prediction.Classification), content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return id, nil
}

// ListEvaluations returns the most recent evaluations for a config.
func (db *DB) ListEvaluations(ctx context.Context, configID uuid.UUID, limit int) ([]EvaluationRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, config_id, model_id, match_score, classification, report, created_at
		 FROM evaluations WHERE config_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		configID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	var records []EvaluationRecord
	for rows.Next() {
		var record EvaluationRecord
		if err := rows.Scan(&record.ID, &record.ConfigID, &record.ModelID,
			&record.MatchScore, &record.Classification, &record.Report, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation row: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
