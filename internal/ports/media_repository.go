package ports

import (
	"context"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

// MediaLibraryRepository is the content-store surface for standalone media
// assets managed through the admin library.
type MediaLibraryRepository interface {
	List(ctx context.Context) ([]domain.MediaAsset, error)
	GetByID(ctx context.Context, id string) (*domain.MediaAsset, error)
	Create(ctx context.Context, a *domain.MediaAsset) error
	Delete(ctx context.Context, id string) error
}

// MediaStorage stores uploaded media bytes and serves them back under a
// durable URL. The admin bulk-delete action is its natural caller.
type MediaStorage interface {
	Store(ctx context.Context, name string, data []byte) (url string, err error)
	Delete(ctx context.Context, url string) error
	Exists(ctx context.Context, url string) (bool, error)
}
