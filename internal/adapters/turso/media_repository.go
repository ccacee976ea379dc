package turso

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

type MediaRepository struct {
	db *sql.DB
}

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) List(ctx context.Context) ([]domain.MediaAsset, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, url, size_bytes, uploaded_at
		FROM media_assets ORDER BY uploaded_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list media assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.MediaAsset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *MediaRepository) GetByID(ctx context.Context, id string) (*domain.MediaAsset, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, url, size_bytes, uploaded_at
		FROM media_assets WHERE id = ?
	`, id)

	a, err := scanAsset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *MediaRepository) Create(ctx context.Context, a *domain.MediaAsset) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO media_assets (id, name, type, url, size_bytes, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.ID, a.Name, string(a.Type), a.URL, a.SizeBytes, a.UploadedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create media asset: %w", err)
	}
	return nil
}

func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM media_assets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete media asset: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAsset(row rowScanner) (domain.MediaAsset, error) {
	var a domain.MediaAsset
	var mediaType, uploadedAt string

	err := row.Scan(&a.ID, &a.Name, &mediaType, &a.URL, &a.SizeBytes, &uploadedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.MediaAsset{}, sql.ErrNoRows
		}
		return domain.MediaAsset{}, fmt.Errorf("failed to scan media asset: %w", err)
	}

	a.Type = domain.MediaType(mediaType)
	a.UploadedAt, _ = time.Parse(time.RFC3339, uploadedAt)
	return a, nil
}
