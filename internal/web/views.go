package web

import (
	"context"
	"net/http"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
)

// SiteInfo is the header/footer branding pulled from site settings.
type SiteInfo struct {
	Title    string
	Tagline  string
	Subtitle string
}

// Page is the data every template receives. Content carries the page-specific
// view model.
type Page struct {
	Title   string
	Site    SiteInfo
	Active  string
	Admin   bool
	Content any
}

// CategoryOption is one entry in the portfolio category selector.
type CategoryOption struct {
	Value    string
	Label    string
	URL      string
	Selected bool
}

func (s *Server) siteInfo(ctx context.Context) SiteInfo {
	info := SiteInfo{Title: "VLSI Research Lab"}

	setting, err := s.stores.Settings.Get(ctx, domain.SettingSiteInfo)
	if err != nil {
		return info
	}
	if v := setting.Text("title"); v != "" {
		info.Title = v
	}
	info.Tagline = setting.Text("tagline")
	info.Subtitle = setting.Text("subtitle")
	return info
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, p Page) {
	if p.Site == (SiteInfo{}) {
		p.Site = s.siteInfo(r.Context())
	}
	if err := s.renderer.Render(w, status, page, p); err != nil {
		s.logger.Error("template render failed", "page", page, "error", err)
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request, what string) {
	s.render(w, r, http.StatusNotFound, "notfound", Page{
		Title:   "Not Found",
		Content: what,
	})
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	s.render(w, r, http.StatusInternalServerError, "error", Page{
		Title: "Something went wrong",
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderNotFound(w, r, "page")
}
