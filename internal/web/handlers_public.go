package web

import (
	"errors"
	"net/http"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/filter"
)

// HomeView is the landing page: hero copy plus the featured project strip.
type HomeView struct {
	Featured []domain.Project
	Contact  ContactView
}

// ContactView is the contact block rendered in the footer and on the home
// page.
type ContactView struct {
	Email   string
	Address string
}

// AboutView is the about page copy from site settings.
type AboutView struct {
	Heading string
	Body    string
	Contact ContactView
}

// PortfolioView is the filterable public project grid.
type PortfolioView struct {
	Query      string
	Category   string
	Categories []CategoryOption
	Projects   []domain.Project
}

// ProjectView is the public project detail page.
type ProjectView struct {
	Project      domain.Project
	Contributors []domain.ProjectContributor
}

// MemberView is the public team member profile.
type MemberView struct {
	Member        domain.TeamMember
	Contributions []domain.MemberContribution
}

func (s *Server) contact(r *http.Request) ContactView {
	setting, err := s.stores.Settings.Get(r.Context(), domain.SettingContact)
	if err != nil {
		return ContactView{}
	}
	return ContactView{
		Email:   setting.Text("email"),
		Address: setting.Text("address"),
	}
}

func (s *Server) publishedProjects(r *http.Request) ([]domain.Project, error) {
	all, err := s.stores.Projects.List(r.Context())
	if err != nil {
		return nil, err
	}

	var published []domain.Project
	for _, p := range all {
		if p.Published() {
			published = append(published, p)
		}
	}
	return published, nil
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	projects, err := s.publishedProjects(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	var featured []domain.Project
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	if len(featured) == 0 && len(projects) > 0 {
		featured = projects[:min(3, len(projects))]
	}

	s.render(w, r, http.StatusOK, "home", Page{
		Title:  s.siteInfo(r.Context()).Title,
		Active: "home",
		Content: HomeView{
			Featured: featured,
			Contact:  s.contact(r),
		},
	})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	view := AboutView{Contact: s.contact(r)}
	if setting, err := s.stores.Settings.Get(r.Context(), domain.SettingAbout); err == nil {
		view.Heading = setting.Text("heading")
		view.Body = setting.Text("body")
	}

	s.render(w, r, http.StatusOK, "about", Page{
		Title:   "About",
		Active:  "about",
		Content: view,
	})
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	projects, err := s.publishedProjects(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	query := r.URL.Query().Get(searchParam)
	category := categoryFromQuery(r.URL.Query())

	filtered := s.projectEngine.Apply(projects, filter.Query{
		Text:   query,
		Facets: map[string]string{"category": category},
	})

	options := []CategoryOption{{
		Value:    filter.All,
		Label:    "All Projects",
		URL:      portfolioURL(filter.All),
		Selected: category == filter.All,
	}}
	for _, c := range domain.Categories() {
		options = append(options, CategoryOption{
			Value:    string(c),
			Label:    c.Label(),
			URL:      portfolioURL(string(c)),
			Selected: category == string(c),
		})
	}

	s.render(w, r, http.StatusOK, "portfolio", Page{
		Title:  "Portfolio",
		Active: "portfolio",
		Content: PortfolioView{
			Query:      query,
			Category:   category,
			Categories: options,
			Projects:   filtered,
		},
	})
}

func (s *Server) handleProjectDetail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	project, err := s.stores.Projects.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.renderNotFound(w, r, "project")
			return
		}
		s.renderError(w, r, err)
		return
	}
	// Drafts stay hidden on the public site.
	if !project.Published() {
		s.renderNotFound(w, r, "project")
		return
	}

	contributors, err := s.stores.Projects.Contributors(r.Context(), project.ID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "project_detail", Page{
		Title:  project.Title,
		Active: "portfolio",
		Content: ProjectView{
			Project:      *project,
			Contributors: contributors,
		},
	})
}

func (s *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	members, err := s.stores.Team.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "team", Page{
		Title:   "Team",
		Active:  "team",
		Content: members,
	})
}

func (s *Server) handleTeamMember(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	member, err := s.stores.Team.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.renderNotFound(w, r, "team member")
			return
		}
		s.renderError(w, r, err)
		return
	}

	all, err := s.stores.Team.Contributions(r.Context(), member.ID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	var contributions []domain.MemberContribution
	for _, c := range all {
		if c.Project.Published() {
			contributions = append(contributions, c)
		}
	}

	s.render(w, r, http.StatusOK, "team_member", Page{
		Title:  member.Name,
		Active: "team",
		Content: MemberView{
			Member:        *member,
			Contributions: contributions,
		},
	})
}
