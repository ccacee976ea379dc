package turso

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

type TeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

const memberColumns = `id, slug, name, role, bio, photo_url, resume_url, email, linkedin_url, github_url, skills, education, publications, created_at`

const memberColumnsPrefixed = `m.id, m.slug, m.name, m.role, m.bio, m.photo_url, m.resume_url, m.email, m.linkedin_url, m.github_url, m.skills, m.education, m.publications, m.created_at`

func (r *TeamRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+memberColumns+` FROM team_members ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := scanMemberInto(rows, &m); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (*domain.TeamMember, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM team_members WHERE slug = ?
	`, slug)
	return getMember(row)
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+` FROM team_members WHERE id = ?
	`, id)
	return getMember(row)
}

func getMember(row *sql.Row) (*domain.TeamMember, error) {
	var m domain.TeamMember
	if err := scanMemberInto(row, &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *TeamRepository) Contributions(ctx context.Context, memberID string) ([]domain.MemberContribution, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.slug, p.title, p.category, p.description, p.content,
		       p.thumbnail_url, p.featured, p.status, p.created_at, p.updated_at,
		       mp.contribution
		FROM member_projects mp
		JOIN projects p ON p.id = mp.project_id
		WHERE mp.team_member_id = ?
		ORDER BY p.updated_at DESC
	`, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load contributions: %w", err)
	}
	defer rows.Close()

	var contributions []domain.MemberContribution
	for rows.Next() {
		var c domain.MemberContribution
		var category, status, createdAt, updatedAt string
		var featured int
		err := rows.Scan(
			&c.Project.ID, &c.Project.Slug, &c.Project.Title, &category,
			&c.Project.Description, &c.Project.Content, &c.Project.ThumbnailURL,
			&featured, &status, &createdAt, &updatedAt, &c.Contribution,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		c.Project.Category = domain.Category(category)
		c.Project.Status = domain.Status(status)
		c.Project.Featured = featured == 1
		c.Project.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		c.Project.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		contributions = append(contributions, c)
	}
	return contributions, rows.Err()
}

func (r *TeamRepository) Create(ctx context.Context, m *domain.TeamMember) error {
	if err := r.slugTaken(ctx, m.Slug, m.ID); err != nil {
		return err
	}

	skills, education, publications, err := marshalProfile(m)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO team_members (`+memberColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		m.ID, m.Slug, m.Name, m.Role, m.Bio, m.PhotoURL, m.ResumeURL,
		m.Email, m.LinkedInURL, m.GitHubURL, skills, education, publications,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, m *domain.TeamMember) error {
	if err := r.slugTaken(ctx, m.Slug, m.ID); err != nil {
		return err
	}

	skills, education, publications, err := marshalProfile(m)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE team_members
		SET slug = ?, name = ?, role = ?, bio = ?, photo_url = ?, resume_url = ?,
		    email = ?, linkedin_url = ?, github_url = ?, skills = ?, education = ?,
		    publications = ?
		WHERE id = ?
	`,
		m.Slug, m.Name, m.Role, m.Bio, m.PhotoURL, m.ResumeURL,
		m.Email, m.LinkedInURL, m.GitHubURL, skills, education, publications,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) slugTaken(ctx context.Context, slug, excludeID string) error {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM team_members WHERE slug = ? AND id != ?
	`, slug, excludeID).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if count > 0 {
		return domain.ErrDuplicateSlug
	}
	return nil
}

func marshalProfile(m *domain.TeamMember) (skills, education, publications string, err error) {
	b, err := json.Marshal(valueOrEmpty(m.Skills))
	if err != nil {
		return "", "", "", fmt.Errorf("failed to marshal skills: %w", err)
	}
	skills = string(b)

	b, err = json.Marshal(valueOrEmpty(m.Education))
	if err != nil {
		return "", "", "", fmt.Errorf("failed to marshal education: %w", err)
	}
	education = string(b)

	b, err = json.Marshal(valueOrEmpty(m.Publications))
	if err != nil {
		return "", "", "", fmt.Errorf("failed to marshal publications: %w", err)
	}
	publications = string(b)
	return skills, education, publications, nil
}

// valueOrEmpty keeps nil slices serialized as [] instead of null.
func valueOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// scanMemberInto scans a team member row, plus any trailing columns such as a
// join's contribution text.
func scanMemberInto(row rowScanner, m *domain.TeamMember, extra ...any) error {
	var skills, education, publications, createdAt string

	dest := []any{
		&m.ID, &m.Slug, &m.Name, &m.Role, &m.Bio, &m.PhotoURL, &m.ResumeURL,
		&m.Email, &m.LinkedInURL, &m.GitHubURL, &skills, &education,
		&publications, &createdAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("failed to scan team member: %w", err)
	}

	if err := json.Unmarshal([]byte(skills), &m.Skills); err != nil {
		return fmt.Errorf("failed to parse skills: %w", err)
	}
	if err := json.Unmarshal([]byte(education), &m.Education); err != nil {
		return fmt.Errorf("failed to parse education: %w", err)
	}
	if err := json.Unmarshal([]byte(publications), &m.Publications); err != nil {
		return fmt.Errorf("failed to parse publications: %w", err)
	}
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return nil
}
