// Package web serves the public brochure site and the admin panel.
package web

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/auth"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/domain"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/filter"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/ports"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/shared/middleware"
)

// Stores bundles the repository ports the handlers read and write.
type Stores struct {
	Projects ports.ProjectRepository
	Team     ports.TeamRepository
	Media    ports.MediaLibraryRepository
	Settings ports.SettingsRepository
}

type Server struct {
	router   *http.ServeMux
	port     int
	logger   *slog.Logger
	stores   Stores
	uploads  ports.MediaStorage
	mediaDir string
	gate     *auth.Gate
	sessions *auth.SessionStore
	renderer *Renderer

	projectEngine *filter.Engine[domain.Project]
	memberEngine  *filter.Engine[domain.TeamMember]
	assetEngine   *filter.Engine[domain.MediaAsset]
}

func NewServer(
	port int,
	logger *slog.Logger,
	stores Stores,
	uploads ports.MediaStorage,
	mediaDir string,
	gate *auth.Gate,
	sessions *auth.SessionStore,
) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:   http.NewServeMux(),
		port:     port,
		logger:   logger,
		stores:   stores,
		uploads:  uploads,
		mediaDir: mediaDir,
		gate:     gate,
		sessions: sessions,
		renderer: renderer,

		projectEngine: filter.New(func(p domain.Project) []string {
			return []string{p.Title, p.Description}
		}).
			WithFacet("category", func(p domain.Project) string { return string(p.Category) }).
			WithFacet("status", func(p domain.Project) string { return string(p.Status) }),

		memberEngine: filter.New(func(m domain.TeamMember) []string {
			return []string{m.Name, m.Role}
		}),

		assetEngine: filter.New(func(a domain.MediaAsset) []string {
			return []string{a.Name}
		}).
			WithFacet("type", func(a domain.MediaAsset) string { return string(a.Type) }),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Uploaded media
	if s.mediaDir != "" {
		s.router.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(s.mediaDir))))
	}

	// Health check and metrics
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("GET /metrics", promhttp.Handler())

	// Public pages
	s.router.HandleFunc("GET /{$}", s.handleHome)
	s.router.HandleFunc("GET /about", s.handleAbout)
	s.router.HandleFunc("GET /portfolio", s.handlePortfolio)
	s.router.HandleFunc("GET /portfolio/{slug}", s.handleProjectDetail)
	s.router.HandleFunc("GET /team", s.handleTeam)
	s.router.HandleFunc("GET /team/{slug}", s.handleTeamMember)

	// Login and logout
	s.router.HandleFunc("GET /admin/login", s.handleLoginPage)
	s.router.HandleFunc("POST /admin/login", s.handleLogin)
	s.router.HandleFunc("POST /admin/logout", s.handleLogout)

	// Admin panel, session required
	s.router.HandleFunc("GET /admin", s.requireAdmin(s.handleAdminDashboard))
	s.router.HandleFunc("GET /admin/projects", s.requireAdmin(s.handleAdminProjects))
	s.router.HandleFunc("GET /admin/projects/new", s.requireAdmin(s.handleAdminProjectNew))
	s.router.HandleFunc("POST /admin/projects", s.requireAdmin(s.handleAdminProjectCreate))
	s.router.HandleFunc("GET /admin/projects/{id}/edit", s.requireAdmin(s.handleAdminProjectEdit))
	s.router.HandleFunc("POST /admin/projects/{id}", s.requireAdmin(s.handleAdminProjectUpdate))
	s.router.HandleFunc("POST /admin/projects/{id}/delete", s.requireAdmin(s.handleAdminProjectDelete))
	s.router.HandleFunc("GET /admin/team", s.requireAdmin(s.handleAdminTeam))
	s.router.HandleFunc("GET /admin/team/new", s.requireAdmin(s.handleAdminMemberNew))
	s.router.HandleFunc("POST /admin/team", s.requireAdmin(s.handleAdminMemberCreate))
	s.router.HandleFunc("GET /admin/team/{id}/edit", s.requireAdmin(s.handleAdminMemberEdit))
	s.router.HandleFunc("POST /admin/team/{id}", s.requireAdmin(s.handleAdminMemberUpdate))
	s.router.HandleFunc("POST /admin/team/{id}/delete", s.requireAdmin(s.handleAdminMemberDelete))
	s.router.HandleFunc("GET /admin/media", s.requireAdmin(s.handleAdminMedia))
	s.router.HandleFunc("POST /admin/media/upload", s.requireAdmin(s.handleAdminMediaUpload))
	s.router.HandleFunc("POST /admin/media/{id}/toggle", s.requireAdmin(s.handleAdminMediaToggle))
	s.router.HandleFunc("POST /admin/media/delete-selected", s.requireAdmin(s.handleAdminMediaDeleteSelected))
	s.router.HandleFunc("GET /admin/settings", s.requireAdmin(s.handleAdminSettings))
	s.router.HandleFunc("POST /admin/settings", s.requireAdmin(s.handleAdminSettingsSave))

	// Everything else is a page-not-found
	s.router.HandleFunc("/", s.handleNotFound)
}

// Handler returns the full middleware-wrapped handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return middleware.RequestLog(s.logger, middleware.Metrics(middleware.HTMX(s.router)))
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
