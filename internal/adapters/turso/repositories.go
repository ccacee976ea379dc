package turso

import (
	"context"
	"database/sql"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/ports"
)

// SeedData is the initial catalog inserted into an empty database.
type SeedData struct {
	Projects       []domain.Project
	Members        []domain.TeamMember
	MemberProjects []domain.MemberProject
	Assets         []domain.MediaAsset
	Settings       []domain.SiteSetting
}

// Repositories holds all turso repository implementations as port interfaces.
type Repositories struct {
	Projects ports.ProjectRepository
	Team     ports.TeamRepository
	Media    ports.MediaLibraryRepository
	Settings ports.SettingsRepository
}

// NewRepositories creates all turso repository implementations from a database
// connection.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Projects: NewProjectRepository(db),
		Team:     NewTeamRepository(db),
		Media:    NewMediaRepository(db),
		Settings: NewSettingsRepository(db),
	}
}

// Seed inserts the given records if the database is empty, so a fresh
// deployment starts with browsable content.
func Seed(ctx context.Context, db *sql.DB, data SeedData) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repos := NewRepositories(db)

	for i := range data.Projects {
		if err := repos.Projects.Create(ctx, &data.Projects[i]); err != nil {
			return err
		}
	}
	for i := range data.Members {
		if err := repos.Team.Create(ctx, &data.Members[i]); err != nil {
			return err
		}
	}
	for _, mp := range data.MemberProjects {
		_, err := db.ExecContext(ctx, `
			INSERT INTO member_projects (id, team_member_id, project_id, contribution)
			VALUES (?, ?, ?, ?)
		`, mp.ID, mp.TeamMemberID, mp.ProjectID, mp.Contribution)
		if err != nil {
			return err
		}
	}
	for i := range data.Assets {
		if err := repos.Media.Create(ctx, &data.Assets[i]); err != nil {
			return err
		}
	}
	for i := range data.Settings {
		if err := repos.Settings.Upsert(ctx, &data.Settings[i]); err != nil {
			return err
		}
	}
	return nil
}
