package turso_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/turso"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

func testProject(id, slug string) *domain.Project {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	return &domain.Project{
		ID:          id,
		Slug:        slug,
		Title:       "Neural Processor",
		Category:    domain.CategoryVLSI,
		Description: "A neuromorphic chip.",
		Content:     "# Overview",
		Featured:    true,
		Status:      domain.StatusPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
		Timeline: []domain.TimelineEvent{
			{ID: id + "-t1", ProjectID: id, Title: "Tape-out", Date: now, OrderIndex: 1},
			{ID: id + "-t2", ProjectID: id, Title: "Bring-up", Date: now.AddDate(0, 1, 0), OrderIndex: 2},
		},
		Media: []domain.ProjectMedia{
			{ID: id + "-m1", ProjectID: id, Type: domain.MediaImage, URL: "/media/die.jpg", Caption: "Die shot", OrderIndex: 1},
		},
	}
}

func TestProjectRepositoryRoundTrip(t *testing.T) {
	db := testDB(t)
	repo := turso.NewProjectRepository(db)
	ctx := context.Background()

	p := testProject("p1", "neural-processor")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetBySlug(ctx, "neural-processor")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Title != p.Title || got.Category != domain.CategoryVLSI || !got.Featured || !got.Published() {
		t.Errorf("GetBySlug() = %+v, fields lost in round trip", got)
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, p.CreatedAt)
	}
	if len(got.Timeline) != 2 || got.Timeline[0].Title != "Tape-out" {
		t.Errorf("Timeline = %+v, want 2 ordered events", got.Timeline)
	}
	if len(got.Media) != 1 || got.Media[0].Type != domain.MediaImage {
		t.Errorf("Media = %+v, want 1 image", got.Media)
	}
}

func TestProjectRepositoryNotFound(t *testing.T) {
	db := testDB(t)
	repo := turso.NewProjectRepository(db)
	ctx := context.Background()

	if _, err := repo.GetBySlug(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetBySlug() error = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
	if err := repo.Update(ctx, testProject("missing", "missing")); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestProjectRepositoryDuplicateSlug(t *testing.T) {
	db := testDB(t)
	repo := turso.NewProjectRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testProject("p1", "neural-processor")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	err := repo.Create(ctx, testProject("p2", "neural-processor"))
	if !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Fatalf("Create() error = %v, want ErrDuplicateSlug", err)
	}

	p2 := testProject("p2", "other-slug")
	if err := repo.Create(ctx, p2); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	p2.Slug = "neural-processor"
	if err := repo.Update(ctx, p2); !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Fatalf("Update() error = %v, want ErrDuplicateSlug", err)
	}
}

func TestProjectRepositoryUpdateReplacesChildren(t *testing.T) {
	db := testDB(t)
	repo := turso.NewProjectRepository(db)
	ctx := context.Background()

	p := testProject("p1", "neural-processor")
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	p.Title = "Neural Processor v2"
	p.Timeline = p.Timeline[:1]
	p.Media = nil
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "Neural Processor v2" {
		t.Errorf("Title = %q, want updated title", got.Title)
	}
	if len(got.Timeline) != 1 {
		t.Errorf("Timeline has %d events after update, want 1", len(got.Timeline))
	}
	if len(got.Media) != 0 {
		t.Errorf("Media has %d entries after update, want 0", len(got.Media))
	}
}

func TestProjectRepositoryContributors(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	projects := turso.NewProjectRepository(db)
	team := turso.NewTeamRepository(db)

	if err := projects.Create(ctx, testProject("p1", "neural-processor")); err != nil {
		t.Fatalf("Create() project error = %v", err)
	}
	member := &domain.TeamMember{
		ID: "m1", Slug: "sarah-chen", Name: "Dr. Sarah Chen",
		Role: "Principal Investigator", CreatedAt: time.Now().UTC(),
	}
	if err := team.Create(ctx, member); err != nil {
		t.Fatalf("Create() member error = %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO member_projects (id, team_member_id, project_id, contribution)
		VALUES ('mp1', 'm1', 'p1', 'Lead architect')
	`); err != nil {
		t.Fatalf("failed to insert member_projects row: %v", err)
	}

	contributors, err := projects.Contributors(ctx, "p1")
	if err != nil {
		t.Fatalf("Contributors() error = %v", err)
	}
	if len(contributors) != 1 {
		t.Fatalf("Contributors() returned %d, want 1", len(contributors))
	}
	if contributors[0].Member.Name != "Dr. Sarah Chen" || contributors[0].Contribution != "Lead architect" {
		t.Errorf("Contributors()[0] = %+v", contributors[0])
	}

	contributions, err := team.Contributions(ctx, "m1")
	if err != nil {
		t.Fatalf("Contributions() error = %v", err)
	}
	if len(contributions) != 1 || contributions[0].Project.Slug != "neural-processor" {
		t.Errorf("Contributions() = %+v, want the linked project", contributions)
	}
}
