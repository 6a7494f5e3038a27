package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mauricio/profile-matcher/internal/types"
)

// SaveConfig stores a validated institutional configuration and returns its ID.
// An existing config with the same name is updated in place.
func (db *DB) SaveConfig(ctx context.Context, name string, cfg *types.InstitutionalConfig) (uuid.UUID, error) {
	if err := cfg.Validate(); err != nil {
		return uuid.Nil, err
	}

	content, err := json.Marshal(cfg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO institutional_configs (name, config)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET config = $2, updated_at = NOW()
		 RETURNING id`,
		name, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save config %s: %w", name, err)
	}
	return id, nil
}

// GetConfig retrieves a config by name. Returns nil when no config exists.
func (db *DB) GetConfig(ctx context.Context, name string) (*ConfigRecord, error) {
	var record ConfigRecord
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, config, created_at, updated_at
		 FROM institutional_configs WHERE name = $1`,
		name,
	).Scan(&record.ID, &record.Name, &content, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get config %s: %w", name, err)
	}

	if err := json.Unmarshal(content, &record.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", name, err)
	}
	return &record, nil
}

// ListConfigs returns all stored configs, newest first.
func (db *DB) ListConfigs(ctx context.Context) ([]ConfigRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, config, created_at, updated_at
		 FROM institutional_configs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}
	defer rows.Close()

	var records []ConfigRecord
	for rows.Next() {
		var record ConfigRecord
		var content []byte
		if err := rows.Scan(&record.ID, &record.Name, &content, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan config row: %w", err)
		}
		if err := json.Unmarshal(content, &record.Config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", record.Name, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// DeleteConfig removes a config by name.
func (db *DB) DeleteConfig(ctx context.Context, name string) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM institutional_configs WHERE name = $1`, name,
	)
	if err != nil {
		return fmt.Errorf("failed to delete config %s: %w", name, err)
	}
	return nil
}
