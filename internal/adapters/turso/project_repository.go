package turso

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, slug, title, category, description, content, thumbnail_url, featured, status, created_at, updated_at`

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+projectColumns+` FROM projects ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+projectColumns+` FROM projects WHERE slug = ?
	`, slug)
	return r.getProject(ctx, row)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+projectColumns+` FROM projects WHERE id = ?
	`, id)
	return r.getProject(ctx, row)
}

func (r *ProjectRepository) getProject(ctx context.Context, row *sql.Row) (*domain.Project, error) {
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if p.Timeline, err = r.timeline(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Media, err = r.media(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) timeline(ctx context.Context, projectID string) ([]domain.TimelineEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, project_id, title, description, date, order_index
		FROM timeline_events WHERE project_id = ? ORDER BY order_index
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load timeline: %w", err)
	}
	defer rows.Close()

	var events []domain.TimelineEvent
	for rows.Next() {
		var e domain.TimelineEvent
		var date string
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Title, &e.Description, &date, &e.OrderIndex); err != nil {
			return nil, fmt.Errorf("failed to scan timeline event: %w", err)
		}
		e.Date, _ = time.Parse(time.RFC3339, date)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *ProjectRepository) media(ctx context.Context, projectID string) ([]domain.ProjectMedia, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, project_id, type, url, caption, order_index
		FROM project_media WHERE project_id = ? ORDER BY order_index
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project media: %w", err)
	}
	defer rows.Close()

	var media []domain.ProjectMedia
	for rows.Next() {
		var m domain.ProjectMedia
		var mediaType string
		if err := rows.Scan(&m.ID, &m.ProjectID, &mediaType, &m.URL, &m.Caption, &m.OrderIndex); err != nil {
			return nil, fmt.Errorf("failed to scan project media: %w", err)
		}
		m.Type = domain.MediaType(mediaType)
		media = append(media, m)
	}
	return media, rows.Err()
}

func (r *ProjectRepository) Contributors(ctx context.Context, projectID string) ([]domain.ProjectContributor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+memberColumnsPrefixed+`, mp.contribution
		FROM member_projects mp
		JOIN team_members m ON m.id = mp.team_member_id
		WHERE mp.project_id = ?
		ORDER BY m.name
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contributors: %w", err)
	}
	defer rows.Close()

	var contributors []domain.ProjectContributor
	for rows.Next() {
		var c domain.ProjectContributor
		if err := scanMemberInto(rows, &c.Member, &c.Contribution); err != nil {
			return nil, err
		}
		contributors = append(contributors, c)
	}
	return contributors, rows.Err()
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if err := r.slugTaken(ctx, p.Slug, p.ID); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.Slug, p.Title, string(p.Category), p.Description, p.Content,
		p.ThumbnailURL, boolToInt(p.Featured), string(p.Status),
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return r.saveChildren(ctx, p)
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	if err := r.slugTaken(ctx, p.Slug, p.ID); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET slug = ?, title = ?, category = ?, description = ?, content = ?,
		    thumbnail_url = ?, featured = ?, status = ?, updated_at = ?
		WHERE id = ?
	`,
		p.Slug, p.Title, string(p.Category), p.Description, p.Content,
		p.ThumbnailURL, boolToInt(p.Featured), string(p.Status),
		p.UpdatedAt.Format(time.RFC3339), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return r.saveChildren(ctx, p)
}

// saveChildren rewrites the project's timeline and media rows wholesale. The
// admin form always submits the full lists, so replace is simpler than diffing.
func (r *ProjectRepository) saveChildren(ctx context.Context, p *domain.Project) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timeline_events WHERE project_id = ?`, p.ID); err != nil {
		return fmt.Errorf("failed to clear timeline: %w", err)
	}
	for _, e := range p.Timeline {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO timeline_events (id, project_id, title, description, date, order_index)
			VALUES (?, ?, ?, ?, ?, ?)
		`, e.ID, p.ID, e.Title, e.Description, e.Date.Format(time.RFC3339), e.OrderIndex)
		if err != nil {
			return fmt.Errorf("failed to insert timeline event: %w", err)
		}
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM project_media WHERE project_id = ?`, p.ID); err != nil {
		return fmt.Errorf("failed to clear project media: %w", err)
	}
	for _, m := range p.Media {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO project_media (id, project_id, type, url, caption, order_index)
			VALUES (?, ?, ?, ?, ?, ?)
		`, m.ID, p.ID, string(m.Type), m.URL, m.Caption, m.OrderIndex)
		if err != nil {
			return fmt.Errorf("failed to insert project media: %w", err)
		}
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) slugTaken(ctx context.Context, slug, excludeID string) error {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM projects WHERE slug = ? AND id != ?
	`, slug, excludeID).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if count > 0 {
		return domain.ErrDuplicateSlug
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (domain.Project, error) {
	var p domain.Project
	var category, status, createdAt, updatedAt string
	var featured int

	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &category, &p.Description, &p.Content,
		&p.ThumbnailURL, &featured, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, sql.ErrNoRows
		}
		return domain.Project{}, fmt.Errorf("failed to scan project: %w", err)
	}

	p.Category = domain.Category(category)
	p.Status = domain.Status(status)
	p.Featured = featured == 1
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
