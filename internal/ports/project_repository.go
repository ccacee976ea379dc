// Package ports defines the repository interfaces the web and CLI layers
// depend on. The content store behind them is swappable: a seeded in-memory
// snapshot by default, libsql when a database is configured.
package ports

import (
	"context"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

// ProjectRepository is the content-store surface for portfolio projects.
// List returns projects in authoring order; lookups return
// domain.ErrNotFound for unknown keys, never a substitute record.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Contributors(ctx context.Context, projectID string) ([]domain.ProjectContributor, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
