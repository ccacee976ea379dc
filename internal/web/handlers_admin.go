package web

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/filter"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/shared/middleware"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/util"
)

// maxUploadBytes caps media uploads at 10 MB.
const maxUploadBytes = 10 << 20

// DashboardView is the admin landing page counters.
type DashboardView struct {
	ProjectCount   int
	PublishedCount int
	DraftCount     int
	MemberCount    int
	AssetCount     int
	Recent         []domain.Project
}

// AdminProjectsView is the project management table with its filter state.
type AdminProjectsView struct {
	Query    string
	Category string
	Status   string
	Projects []domain.Project
}

// ProjectFormView carries the edit form state, including the error from a
// rejected submit.
type ProjectFormView struct {
	Project domain.Project
	IsNew   bool
	Error   string
}

// AdminTeamView is the team management table with its filter state.
type AdminTeamView struct {
	Query   string
	Members []domain.TeamMember
}

// MemberFormView carries the member edit form state.
type MemberFormView struct {
	Member domain.TeamMember
	Skills string
	IsNew  bool
	Error  string
}

// AssetRow is one media library row plus its bulk-selection state.
type AssetRow struct {
	Asset    domain.MediaAsset
	Selected bool
}

// AdminMediaView is the media library with filters and the selection count.
type AdminMediaView struct {
	Query         string
	Type          string
	Assets        []AssetRow
	SelectedCount int
	Error         string
}

// SettingsFormView is the site settings form.
type SettingsFormView struct {
	SiteTitle    string
	Tagline      string
	Subtitle     string
	AboutHeading string
	AboutBody    string
	Email        string
	Address      string
	Saved        bool
}

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := s.stores.Projects.List(ctx)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	members, err := s.stores.Team.List(ctx)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	assets, err := s.stores.Media.List(ctx)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	view := DashboardView{
		ProjectCount: len(projects),
		MemberCount:  len(members),
		AssetCount:   len(assets),
		Recent:       projects[:min(5, len(projects))],
	}
	for _, p := range projects {
		if p.Published() {
			view.PublishedCount++
		} else {
			view.DraftCount++
		}
	}

	s.render(w, r, http.StatusOK, "admin_dashboard", Page{
		Title:   "Dashboard",
		Active:  "admin",
		Admin:   true,
		Content: view,
	})
}

// ---- Projects ----

func (s *Server) handleAdminProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.stores.Projects.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	query := r.URL.Query().Get(searchParam)
	category := categoryFromQuery(r.URL.Query())
	status := r.URL.Query().Get("status")
	if status == "" {
		status = filter.All
	}

	filtered := s.projectEngine.Apply(projects, filter.Query{
		Text: query,
		Facets: map[string]string{
			"category": category,
			"status":   status,
		},
	})

	s.render(w, r, http.StatusOK, "admin_projects", Page{
		Title:  "Projects",
		Active: "admin-projects",
		Admin:  true,
		Content: AdminProjectsView{
			Query:    query,
			Category: category,
			Status:   status,
			Projects: filtered,
		},
	})
}

func (s *Server) handleAdminProjectNew(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "admin_project_form", Page{
		Title:  "New Project",
		Active: "admin-projects",
		Admin:  true,
		Content: ProjectFormView{
			Project: domain.Project{Category: domain.CategoryVLSI, Status: domain.StatusDraft},
			IsNew:   true,
		},
	})
}

// projectFromForm fills the scalar fields from the submitted form, leaving
// timeline and media untouched.
func projectFromForm(r *http.Request, p *domain.Project) error {
	if err := r.ParseForm(); err != nil {
		return err
	}

	p.Title = strings.TrimSpace(r.FormValue("title"))
	p.Slug = strings.TrimSpace(r.FormValue("slug"))
	if p.Slug == "" {
		p.Slug = util.Slugify(p.Title)
	}
	p.Description = r.FormValue("description")
	p.Content = r.FormValue("content")
	p.ThumbnailURL = r.FormValue("thumbnail_url")
	p.Featured = r.FormValue("featured") == "on"

	category, err := domain.ParseCategory(r.FormValue("category"))
	if err != nil {
		return err
	}
	p.Category = category

	status, err := domain.ParseStatus(r.FormValue("status"))
	if err != nil {
		return err
	}
	p.Status = status

	if p.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

func (s *Server) handleAdminProjectCreate(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	project := domain.Project{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := projectFromForm(r, &project); err != nil {
		s.renderProjectForm(w, r, project, true, err.Error())
		return
	}

	if err := s.stores.Projects.Create(r.Context(), &project); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			s.renderProjectForm(w, r, project, true, "That slug is already in use")
			return
		}
		s.renderError(w, r, err)
		return
	}

	middleware.Redirect(w, r, "/admin/projects")
}

func (s *Server) handleAdminProjectEdit(w http.ResponseWriter, r *http.Request) {
	project, err := s.stores.Projects.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.renderNotFound(w, r, "project")
			return
		}
		s.renderError(w, r, err)
		return
	}

	s.renderProjectForm(w, r, *project, false, "")
}

func (s *Server) handleAdminProjectUpdate(w http.ResponseWriter, r *http.Request) {
	project, err := s.stores.Projects.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.renderNotFound(w, r, "project")
			return
		}
		s.renderError(w, r, err)
		return
	}

	if err := projectFromForm(r, project); err != nil {
		s.renderProjectForm(w, r, *project, false, err.Error())
		return
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.stores.Projects.Update(r.Context(), project); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			s.renderProjectForm(w, r, *project, false, "That slug is already in use")
			return
		}
		s.renderError(w, r, err)
		return
	}

	middleware.Redirect(w, r, "/admin/projects")
}

func (s *Server) renderProjectForm(w http.ResponseWriter, r *http.Request, p domain.Project, isNew bool, errMsg string) {
	status := http.StatusOK
	title := "Edit Project"
	if errMsg != "" {
		status = http.StatusUnprocessableEntity
	}
	if isNew {
		title = "New Project"
	}

	s.render(w, r, status, "admin_project_form", Page{
		Title:  title,
		Active: "admin-projects",
		Admin:  true,
		Content: ProjectFormView{
			Project: p,
			IsNew:   isNew,
			Error:   errMsg,
		},
	})
}

func (s *Server) handleAdminProjectDelete(w http.ResponseWriter, r *http.Request) {
	err := s.stores.Projects.Delete(r.Context(), r.PathValue("id"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.renderError(w, r, err)
		return
	}
	middleware.Redirect(w, r, "/admin/projects")
}

// ---- Team ----

func (s *Server) handleAdminTeam(w http.ResponseWriter, r *http.Request) {
	members, err := s.stores.Team.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	query := r.URL.Query().Get(searchParam)
	filtered := s.memberEngine.Apply(members, filter.Query{Text: query})

	s.render(w, r, http.StatusOK, "admin_team", Page{
		Title:  "Team",
		Active: "admin-team",
		Admin:  true,
		Content: AdminTeamView{
			Query:   query,
			Members: filtered,
		},
	})
}

func (s *Server) handleAdminMemberNew(w http.ResponseWriter, r *http.Request) {
	s.renderMemberForm(w, r, domain.TeamMember{}, true, "")
}

func memberFromForm(r *http.Request, m *domain.TeamMember) error {
	if err := r.ParseForm(); err != nil {
		return err
	}

	m.Name = strings.TrimSpace(r.FormValue("name"))
	m.Slug = strings.TrimSpace(r.FormValue("slug"))
	if m.Slug == "" {
		m.Slug = util.Slugify(m.Name)
	}
	m.Role = r.FormValue("role")
	m.Bio = r.FormValue("bio")
	m.PhotoURL = r.FormValue("photo_url")
	m.ResumeURL = r.FormValue("resume_url")
	m.Email = r.FormValue("email")
	m.LinkedInURL = r.FormValue("linkedin_url")
	m.GitHubURL = r.FormValue("github_url")

	m.Skills = nil
	for _, skill := range strings.Split(r.FormValue("skills"), ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			m.Skills = append(m.Skills, skill)
		}
	}

	if m.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func (s *Server) handleAdminMemberCreate(w http.ResponseWriter, r *http.Request) {
	member := domain.TeamMember{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	if err := memberFromForm(r, &member); err != nil {
		s.renderMemberForm(w, r, member, true, err.Error())
		return
	}

	if err := s.stores.Team.Create(r.Context(), &member); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			s.renderMemberForm(w, r, member, true, "That slug is already in use")
			return
		}
		s.renderError(w, r, err)
		return
	}

	middleware.Redirect(w, r, "/admin/team")
}

func (s *Server) handleAdminMemberEdit(w http.ResponseWriter, r *http.Request) {
	member, err := s.stores.Team.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.renderNotFound(w, r, "team member")
			return
		}
		s.renderError(w, r, err)
		return
	}
	s.renderMemberForm(w, r, *member, false, "")
}

func (s *Server) handleAdminMemberUpdate(w http.ResponseWriter, r *http.Request) {
	member, err := s.stores.Team.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.renderNotFound(w, r, "team member")
			return
		}
		s.renderError(w, r, err)
		return
	}

	if err := memberFromForm(r, member); err != nil {
		s.renderMemberForm(w, r, *member, false, err.Error())
		return
	}

	if err := s.stores.Team.Update(r.Context(), member); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			s.renderMemberForm(w, r, *member, false, "That slug is already in use")
			return
		}
		s.renderError(w, r, err)
		return
	}

	middleware.Redirect(w, r, "/admin/team")
}

func (s *Server) renderMemberForm(w http.ResponseWriter, r *http.Request, m domain.TeamMember, isNew bool, errMsg string) {
	status := http.StatusOK
	title := "Edit Team Member"
	if errMsg != "" {
		status = http.StatusUnprocessableEntity
	}
	if isNew {
		title = "New Team Member"
	}

	s.render(w, r, status, "admin_team_form", Page{
		Title:  title,
		Active: "admin-team",
		Admin:  true,
		Content: MemberFormView{
			Member: m,
			Skills: strings.Join(m.Skills, ", "),
			IsNew:  isNew,
			Error:  errMsg,
		},
	})
}

func (s *Server) handleAdminMemberDelete(w http.ResponseWriter, r *http.Request) {
	err := s.stores.Team.Delete(r.Context(), r.PathValue("id"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.renderError(w, r, err)
		return
	}
	middleware.Redirect(w, r, "/admin/team")
}

// ---- Media library ----

func (s *Server) handleAdminMedia(w http.ResponseWriter, r *http.Request) {
	s.renderAdminMedia(w, r, "")
}

func (s *Server) renderAdminMedia(w http.ResponseWriter, r *http.Request, errMsg string) {
	assets, err := s.stores.Media.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	query := r.URL.Query().Get(searchParam)
	mediaType := r.URL.Query().Get("type")
	if mediaType == "" {
		mediaType = filter.All
	}

	filtered := s.assetEngine.Apply(assets, filter.Query{
		Text:   query,
		Facets: map[string]string{"type": mediaType},
	})

	sess := adminSession(r)

	rows := make([]AssetRow, 0, len(filtered))
	for _, a := range filtered {
		rows = append(rows, AssetRow{
			Asset:    a,
			Selected: sess.MediaSelection.Selected(a.ID),
		})
	}

	status := http.StatusOK
	if errMsg != "" {
		status = http.StatusUnprocessableEntity
	}
	s.render(w, r, status, "admin_media", Page{
		Title:  "Media Library",
		Active: "admin-media",
		Admin:  true,
		Content: AdminMediaView{
			Query:         query,
			Type:          mediaType,
			Assets:        rows,
			SelectedCount: sess.MediaSelection.Count(),
			Error:         errMsg,
		},
	})
}

// mediaListURL rebuilds the library URL with the submitted filter state, so
// toggling a selection lands back on the same view.
func mediaListURL(r *http.Request) string {
	values := url.Values{}
	if q := r.FormValue(searchParam); q != "" {
		values.Set(searchParam, q)
	}
	if t := r.FormValue("type"); t != "" && t != filter.All {
		values.Set("type", t)
	}
	if len(values) == 0 {
		return "/admin/media"
	}
	return "/admin/media?" + values.Encode()
}

func (s *Server) handleAdminMediaToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	sess := adminSession(r)
	sess.MediaSelection.Toggle(r.PathValue("id"))

	middleware.Redirect(w, r, mediaListURL(r))
}

func (s *Server) handleAdminMediaUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.renderAdminMedia(w, r, "Upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.renderAdminMedia(w, r, "Choose a file to upload")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	storedURL, err := s.uploads.Store(r.Context(), header.Filename, data)
	if err != nil {
		s.renderAdminMedia(w, r, "Could not store that file")
		return
	}

	asset := &domain.MediaAsset{
		ID:         uuid.NewString(),
		Name:       filepath.Base(header.Filename),
		Type:       mediaTypeForFile(header.Filename),
		URL:        storedURL,
		SizeBytes:  int64(len(data)),
		UploadedAt: time.Now().UTC(),
	}
	if err := s.stores.Media.Create(r.Context(), asset); err != nil {
		s.renderError(w, r, err)
		return
	}

	middleware.Redirect(w, r, "/admin/media")
}

func mediaTypeForFile(name string) domain.MediaType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp4", ".webm", ".mov":
		return domain.MediaVideo
	default:
		return domain.MediaImage
	}
}

func (s *Server) handleAdminMediaDeleteSelected(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := adminSession(r)

	for _, id := range sess.MediaSelection.IDs() {
		asset, err := s.stores.Media.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			s.renderError(w, r, err)
			return
		}

		// Seeded and external assets have no backing file in the media
		// directory; only delete what is actually on disk.
		switch stored, err := s.uploads.Exists(ctx, asset.URL); {
		case err != nil:
			s.logger.Warn("failed to check stored file", "url", asset.URL, "error", err)
		case stored:
			if err := s.uploads.Delete(ctx, asset.URL); err != nil {
				s.logger.Warn("failed to delete stored file", "url", asset.URL, "error", err)
			}
		}
		if err := s.stores.Media.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
			s.renderError(w, r, err)
			return
		}
	}
	sess.MediaSelection.Clear()

	middleware.Redirect(w, r, "/admin/media")
}

// ---- Settings ----

func (s *Server) handleAdminSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	view := SettingsFormView{Saved: r.URL.Query().Get("saved") == "1"}

	if setting, err := s.stores.Settings.Get(ctx, domain.SettingSiteInfo); err == nil {
		view.SiteTitle = setting.Text("title")
		view.Tagline = setting.Text("tagline")
		view.Subtitle = setting.Text("subtitle")
	}
	if setting, err := s.stores.Settings.Get(ctx, domain.SettingAbout); err == nil {
		view.AboutHeading = setting.Text("heading")
		view.AboutBody = setting.Text("body")
	}
	if setting, err := s.stores.Settings.Get(ctx, domain.SettingContact); err == nil {
		view.Email = setting.Text("email")
		view.Address = setting.Text("address")
	}

	s.render(w, r, http.StatusOK, "admin_settings", Page{
		Title:   "Site Settings",
		Active:  "admin-settings",
		Admin:   true,
		Content: view,
	})
}

func (s *Server) handleAdminSettingsSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	updates := []domain.SiteSetting{
		{Key: domain.SettingSiteInfo, Value: map[string]any{
			"title":    r.FormValue("site_title"),
			"tagline":  r.FormValue("tagline"),
			"subtitle": r.FormValue("subtitle"),
		}},
		{Key: domain.SettingAbout, Value: map[string]any{
			"heading": r.FormValue("about_heading"),
			"body":    r.FormValue("about_body"),
		}},
		{Key: domain.SettingContact, Value: map[string]any{
			"email":   r.FormValue("contact_email"),
			"address": r.FormValue("contact_address"),
		}},
	}

	for i := range updates {
		if existing, err := s.stores.Settings.Get(ctx, updates[i].Key); err == nil {
			updates[i].ID = existing.ID
		} else {
			updates[i].ID = uuid.NewString()
		}
		if err := s.stores.Settings.Upsert(ctx, &updates[i]); err != nil {
			s.renderError(w, r, err)
			return
		}
	}

	middleware.Redirect(w, r, "/admin/settings?saved=1")
}
