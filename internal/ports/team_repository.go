package ports

import (
	"context"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

// TeamRepository is the content-store surface for team member profiles.
type TeamRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	GetBySlug(ctx context.Context, slug string) (*domain.TeamMember, error)
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	Contributions(ctx context.Context, memberID string) ([]domain.MemberContribution, error)
	Create(ctx context.Context, m *domain.TeamMember) error
	Update(ctx context.Context, m *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
}
