package turso

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) List(ctx context.Context) ([]domain.SiteSetting, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, key, value FROM site_settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []domain.SiteSetting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (*domain.SiteSetting, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, key, value FROM site_settings WHERE key = ?`, key)

	s, err := scanSetting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *domain.SiteSetting) error {
	value, err := json.Marshal(s.Value)
	if err != nil {
		return fmt.Errorf("failed to marshal setting value: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO site_settings (id, key, value) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, s.ID, s.Key, string(value))
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

func scanSetting(row rowScanner) (domain.SiteSetting, error) {
	var s domain.SiteSetting
	var value string

	err := row.Scan(&s.ID, &s.Key, &value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.SiteSetting{}, sql.ErrNoRows
		}
		return domain.SiteSetting{}, fmt.Errorf("failed to scan setting: %w", err)
	}

	if err := json.Unmarshal([]byte(value), &s.Value); err != nil {
		return domain.SiteSetting{}, fmt.Errorf("failed to parse setting value: %w", err)
	}
	return s, nil
}
