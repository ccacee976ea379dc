package ports

import (
	"context"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

// SettingsRepository is the content-store surface for keyed site settings.
type SettingsRepository interface {
	List(ctx context.Context) ([]domain.SiteSetting, error)
	Get(ctx context.Context, key string) (*domain.SiteSetting, error)
	Upsert(ctx context.Context, s *domain.SiteSetting) error
}
