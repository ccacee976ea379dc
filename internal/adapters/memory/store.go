// Package memory is the snapshot-backed content store: the whole catalog is
// held in memory, seeded at startup from the built-in fixture or a YAML
// content file, and served through the same repository ports as the database
// adapter. It doubles as the repository double in handler tests.
package memory

import (
	"context"
	"sync"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

// Snapshot is the full catalog loaded at startup.
type Snapshot struct {
	Projects       []domain.Project
	Members        []domain.TeamMember
	MemberProjects []domain.MemberProject
	Assets         []domain.MediaAsset
	Settings       []domain.SiteSetting
}

// Store serves a Snapshot through the repository ports. Reads return copies;
// admin mutations rewrite the snapshot under the lock.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewStore creates a store serving the given snapshot.
func NewStore(snap Snapshot) *Store {
	return &Store{snap: snap}
}

// Reload replaces the whole snapshot, used by the content-file watcher.
func (s *Store) Reload(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// ---- ProjectRepository ----

func (s *Store) List(ctx context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, len(s.snap.Projects))
	copy(out, s.snap.Projects)
	return out, nil
}

func (s *Store) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.snap.Projects {
		if p.Slug == slug {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.snap.Projects {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) Contributors(ctx context.Context, projectID string) ([]domain.ProjectContributor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.ProjectContributor
	for _, mp := range s.snap.MemberProjects {
		if mp.ProjectID != projectID {
			continue
		}
		for _, m := range s.snap.Members {
			if m.ID == mp.TeamMemberID {
				out = append(out, domain.ProjectContributor{
					Member:       m,
					Contribution: mp.Contribution,
				})
				break
			}
		}
	}
	return out, nil
}

func (s *Store) Create(ctx context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.snap.Projects {
		if existing.Slug == p.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	s.snap.Projects = append(s.snap.Projects, *p)
	return nil
}

func (s *Store) Update(ctx context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.snap.Projects {
		if existing.Slug == p.Slug && existing.ID != p.ID {
			return domain.ErrDuplicateSlug
		}
	}
	for i, existing := range s.snap.Projects {
		if existing.ID == p.ID {
			s.snap.Projects[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.snap.Projects {
		if existing.ID == id {
			s.snap.Projects = append(s.snap.Projects[:i], s.snap.Projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ---- TeamRepository ----

// TeamStore exposes the team member port over the same snapshot. Separate
// receivers keep the List/Get method sets from colliding.
type TeamStore struct{ s *Store }

// Team returns the team-member view of the store.
func (s *Store) Team() *TeamStore { return &TeamStore{s: s} }

func (t *TeamStore) List(ctx context.Context) ([]domain.TeamMember, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	out := make([]domain.TeamMember, len(t.s.snap.Members))
	copy(out, t.s.snap.Members)
	return out, nil
}

func (t *TeamStore) GetBySlug(ctx context.Context, slug string) (*domain.TeamMember, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	for _, m := range t.s.snap.Members {
		if m.Slug == slug {
			cp := m
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (t *TeamStore) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	for _, m := range t.s.snap.Members {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (t *TeamStore) Contributions(ctx context.Context, memberID string) ([]domain.MemberContribution, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	var out []domain.MemberContribution
	for _, mp := range t.s.snap.MemberProjects {
		if mp.TeamMemberID != memberID {
			continue
		}
		for _, p := range t.s.snap.Projects {
			if p.ID == mp.ProjectID {
				out = append(out, domain.MemberContribution{
					Project:      p,
					Contribution: mp.Contribution,
				})
				break
			}
		}
	}
	return out, nil
}

func (t *TeamStore) Create(ctx context.Context, m *domain.TeamMember) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for _, existing := range t.s.snap.Members {
		if existing.Slug == m.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	t.s.snap.Members = append(t.s.snap.Members, *m)
	return nil
}

func (t *TeamStore) Update(ctx context.Context, m *domain.TeamMember) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for _, existing := range t.s.snap.Members {
		if existing.Slug == m.Slug && existing.ID != m.ID {
			return domain.ErrDuplicateSlug
		}
	}
	for i, existing := range t.s.snap.Members {
		if existing.ID == m.ID {
			t.s.snap.Members[i] = *m
			return nil
		}
	}
	return domain.ErrNotFound
}

func (t *TeamStore) Delete(ctx context.Context, id string) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for i, existing := range t.s.snap.Members {
		if existing.ID == id {
			t.s.snap.Members = append(t.s.snap.Members[:i], t.s.snap.Members[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ---- MediaLibraryRepository ----

// MediaStore exposes the media asset port over the same snapshot.
type MediaStore struct{ s *Store }

// MediaLibrary returns the media-asset view of the store.
func (s *Store) MediaLibrary() *MediaStore { return &MediaStore{s: s} }

func (m *MediaStore) List(ctx context.Context) ([]domain.MediaAsset, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	out := make([]domain.MediaAsset, len(m.s.snap.Assets))
	copy(out, m.s.snap.Assets)
	return out, nil
}

func (m *MediaStore) GetByID(ctx context.Context, id string) (*domain.MediaAsset, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	for _, a := range m.s.snap.Assets {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MediaStore) Create(ctx context.Context, a *domain.MediaAsset) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	m.s.snap.Assets = append(m.s.snap.Assets, *a)
	return nil
}

func (m *MediaStore) Delete(ctx context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	for i, a := range m.s.snap.Assets {
		if a.ID == id {
			m.s.snap.Assets = append(m.s.snap.Assets[:i], m.s.snap.Assets[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ---- SettingsRepository ----

// SettingsStore exposes the site settings port over the same snapshot.
type SettingsStore struct{ s *Store }

// Settings returns the site-settings view of the store.
func (s *Store) Settings() *SettingsStore { return &SettingsStore{s: s} }

func (st *SettingsStore) List(ctx context.Context) ([]domain.SiteSetting, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	out := make([]domain.SiteSetting, len(st.s.snap.Settings))
	copy(out, st.s.snap.Settings)
	return out, nil
}

func (st *SettingsStore) Get(ctx context.Context, key string) (*domain.SiteSetting, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	for _, setting := range st.s.snap.Settings {
		if setting.Key == key {
			cp := setting
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (st *SettingsStore) Upsert(ctx context.Context, s *domain.SiteSetting) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for i, setting := range st.s.snap.Settings {
		if setting.Key == s.Key {
			st.s.snap.Settings[i] = *s
			return nil
		}
	}
	st.s.snap.Settings = append(st.s.snap.Settings, *s)
	return nil
}
