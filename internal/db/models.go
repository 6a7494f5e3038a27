package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mauricio/profile-matcher/internal/model"
)

// SaveModel stores a trained artifact and marks it active, deactivating the
// previous one in the same transaction.
func (db *DB) SaveModel(ctx context.Context, artifact *model.Artifact) (uuid.UUID, error) {
	content, err := artifact.Encode()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode model artifact: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE model_artifacts SET active = FALSE WHERE active`); err != nil {
		return uuid.Nil, fmt.Errorf("failed to deactivate previous model: %w", err)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO model_artifacts (active, artifact)
		 VALUES (TRUE, $1)
		 RETURNING id`,
		content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save model artifact: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit model artifact: %w", err)
	}
	return id, nil
}

// GetActiveModel loads and decodes the active artifact along with its row
// ID. Returns a nil artifact when no model has been trained yet.
func (db *DB) GetActiveModel(ctx context.Context) (*model.Artifact, uuid.UUID, error) {
	var id uuid.UUID
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, artifact FROM model_artifacts WHERE active ORDER BY created_at DESC LIMIT 1`,
	).Scan(&id, &content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, uuid.Nil, nil
		}
		return nil, uuid.Nil, fmt.Errorf("failed to get active model: %w", err)
	}

	artifact, err := model.DecodeArtifact(content)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return artifact, id, nil
}

// ListModels returns artifact metadata without decoding the payloads.
func (db *DB) ListModels(ctx context.Context) ([]ModelRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, active, created_at FROM model_artifacts ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer rows.Close()

	var records []ModelRecord
	for rows.Next() {
		var record ModelRecord
		if err := rows.Scan(&record.ID, &record.Active, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan model row: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
