package memory

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

// contentDate is the date layout used in content files.
const contentDate = "2006-01-02"

type contentFile struct {
	Projects       []contentProject     `yaml:"projects"`
	Members        []contentMember      `yaml:"members"`
	MemberProjects []contentMemberProj  `yaml:"member_projects"`
	Assets         []contentAsset       `yaml:"assets"`
	Settings       []contentSiteSetting `yaml:"settings"`
}

type contentProject struct {
	ID           string             `yaml:"id"`
	Slug         string             `yaml:"slug"`
	Title        string             `yaml:"title"`
	Category     string             `yaml:"category"`
	Description  string             `yaml:"description"`
	Content      string             `yaml:"content"`
	ThumbnailURL string             `yaml:"thumbnail_url"`
	Featured     bool               `yaml:"featured"`
	Status       string             `yaml:"status"`
	CreatedAt    string             `yaml:"created_at"`
	UpdatedAt    string             `yaml:"updated_at"`
	Timeline     []contentTimeline  `yaml:"timeline"`
	Media        []contentProjMedia `yaml:"media"`
}

type contentTimeline struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	OrderIndex  int    `yaml:"order_index"`
}

type contentProjMedia struct {
	ID         string `yaml:"id"`
	Type       string `yaml:"type"`
	URL        string `yaml:"url"`
	Caption    string `yaml:"caption"`
	OrderIndex int    `yaml:"order_index"`
}

type contentMember struct {
	ID          string   `yaml:"id"`
	Slug        string   `yaml:"slug"`
	Name        string   `yaml:"name"`
	Role        string   `yaml:"role"`
	Bio         string   `yaml:"bio"`
	PhotoURL    string   `yaml:"photo_url"`
	ResumeURL   string   `yaml:"resume_url"`
	Email       string   `yaml:"email"`
	LinkedInURL string   `yaml:"linkedin_url"`
	GitHubURL   string   `yaml:"github_url"`
	CreatedAt   string   `yaml:"created_at"`
	Skills      []string `yaml:"skills"`
	Education   []struct {
		Degree      string `yaml:"degree"`
		Institution string `yaml:"institution"`
		Year        string `yaml:"year"`
	} `yaml:"education"`
	Publications []struct {
		Title string `yaml:"title"`
		Venue string `yaml:"venue"`
	} `yaml:"publications"`
}

type contentMemberProj struct {
	ID           string `yaml:"id"`
	MemberID     string `yaml:"member_id"`
	ProjectID    string `yaml:"project_id"`
	Contribution string `yaml:"contribution"`
}

type contentAsset struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	URL        string `yaml:"url"`
	SizeBytes  int64  `yaml:"size_bytes"`
	UploadedAt string `yaml:"uploaded_at"`
}

type contentSiteSetting struct {
	ID    string         `yaml:"id"`
	Key   string         `yaml:"key"`
	Value map[string]any `yaml:"value"`
}

// LoadContentFile reads a YAML content file into a Snapshot, validating
// category/status/type enumerations and slug uniqueness.
func LoadContentFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read content file: %w", err)
	}

	var cf contentFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse content file: %w", err)
	}

	snap := Snapshot{}

	slugs := make(map[string]bool)
	for _, cp := range cf.Projects {
		p, err := cp.toDomain()
		if err != nil {
			return Snapshot{}, fmt.Errorf("project %q: %w", cp.Slug, err)
		}
		if slugs[p.Slug] {
			return Snapshot{}, fmt.Errorf("project %q: %w", p.Slug, domain.ErrDuplicateSlug)
		}
		slugs[p.Slug] = true
		snap.Projects = append(snap.Projects, p)
	}

	memberSlugs := make(map[string]bool)
	for _, cm := range cf.Members {
		m, err := cm.toDomain()
		if err != nil {
			return Snapshot{}, fmt.Errorf("member %q: %w", cm.Slug, err)
		}
		if memberSlugs[m.Slug] {
			return Snapshot{}, fmt.Errorf("member %q: %w", m.Slug, domain.ErrDuplicateSlug)
		}
		memberSlugs[m.Slug] = true
		snap.Members = append(snap.Members, m)
	}

	for _, mp := range cf.MemberProjects {
		snap.MemberProjects = append(snap.MemberProjects, domain.MemberProject{
			ID:           mp.ID,
			TeamMemberID: mp.MemberID,
			ProjectID:    mp.ProjectID,
			Contribution: mp.Contribution,
		})
	}

	for _, ca := range cf.Assets {
		a, err := ca.toDomain()
		if err != nil {
			return Snapshot{}, fmt.Errorf("asset %q: %w", ca.Name, err)
		}
		snap.Assets = append(snap.Assets, a)
	}

	for _, cs := range cf.Settings {
		snap.Settings = append(snap.Settings, domain.SiteSetting{
			ID:    cs.ID,
			Key:   cs.Key,
			Value: cs.Value,
		})
	}

	return snap, nil
}

func parseContentDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(contentDate, s)
}

func (cp contentProject) toDomain() (domain.Project, error) {
	category, err := domain.ParseCategory(cp.Category)
	if err != nil {
		return domain.Project{}, err
	}
	status, err := domain.ParseStatus(cp.Status)
	if err != nil {
		return domain.Project{}, err
	}
	createdAt, err := parseContentDate(cp.CreatedAt)
	if err != nil {
		return domain.Project{}, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := parseContentDate(cp.UpdatedAt)
	if err != nil {
		return domain.Project{}, fmt.Errorf("invalid updated_at: %w", err)
	}

	p := domain.Project{
		ID:           cp.ID,
		Slug:         cp.Slug,
		Title:        cp.Title,
		Category:     category,
		Description:  cp.Description,
		Content:      cp.Content,
		ThumbnailURL: cp.ThumbnailURL,
		Featured:     cp.Featured,
		Status:       status,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}

	for _, ct := range cp.Timeline {
		d, err := parseContentDate(ct.Date)
		if err != nil {
			return domain.Project{}, fmt.Errorf("timeline %q: invalid date: %w", ct.Title, err)
		}
		p.Timeline = append(p.Timeline, domain.TimelineEvent{
			ID:          ct.ID,
			ProjectID:   cp.ID,
			Title:       ct.Title,
			Description: ct.Description,
			Date:        d,
			OrderIndex:  ct.OrderIndex,
		})
	}

	for _, cm := range cp.Media {
		mt, err := domain.ParseMediaType(cm.Type)
		if err != nil {
			return domain.Project{}, err
		}
		p.Media = append(p.Media, domain.ProjectMedia{
			ID:         cm.ID,
			ProjectID:  cp.ID,
			Type:       mt,
			URL:        cm.URL,
			Caption:    cm.Caption,
			OrderIndex: cm.OrderIndex,
		})
	}

	return p, nil
}

func (cm contentMember) toDomain() (domain.TeamMember, error) {
	createdAt, err := parseContentDate(cm.CreatedAt)
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("invalid created_at: %w", err)
	}

	m := domain.TeamMember{
		ID:          cm.ID,
		Slug:        cm.Slug,
		Name:        cm.Name,
		Role:        cm.Role,
		Bio:         cm.Bio,
		PhotoURL:    cm.PhotoURL,
		ResumeURL:   cm.ResumeURL,
		Email:       cm.Email,
		LinkedInURL: cm.LinkedInURL,
		GitHubURL:   cm.GitHubURL,
		CreatedAt:   createdAt,
		Skills:      cm.Skills,
	}
	for _, e := range cm.Education {
		m.Education = append(m.Education, domain.Education{
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
		})
	}
	for _, p := range cm.Publications {
		m.Publications = append(m.Publications, domain.Publication{
			Title: p.Title,
			Venue: p.Venue,
		})
	}
	return m, nil
}

func (ca contentAsset) toDomain() (domain.MediaAsset, error) {
	mt, err := domain.ParseMediaType(ca.Type)
	if err != nil {
		return domain.MediaAsset{}, err
	}
	uploadedAt, err := parseContentDate(ca.UploadedAt)
	if err != nil {
		return domain.MediaAsset{}, fmt.Errorf("invalid uploaded_at: %w", err)
	}
	return domain.MediaAsset{
		ID:         ca.ID,
		Name:       ca.Name,
		Type:       mt,
		URL:        ca.URL,
		SizeBytes:  ca.SizeBytes,
		UploadedAt: uploadedAt,
	}, nil
}
