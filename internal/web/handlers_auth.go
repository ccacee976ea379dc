package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/auth"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/shared/middleware"
)

// LoginView carries the login form state back to the page on failure.
type LoginView struct {
	Email string
	Error string
}

func (s *Server) currentSession(r *http.Request) (*auth.Session, bool) {
	cookie, err := r.Cookie(auth.SessionCookie)
	if err != nil {
		return nil, false
	}
	return s.sessions.Get(cookie.Value)
}

type contextKey int

const sessionContextKey contextKey = iota

// requireAdmin redirects unauthenticated requests to the login page. Every
// /admin route goes through it; there is no way to reach a panel handler
// without a live session. The resolved session rides the request context so
// handlers never look it up again; a lookup of their own could miss if the
// session expired mid-request.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.currentSession(r)
		if !ok {
			middleware.Redirect(w, r, "/admin/login")
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next(w, r.WithContext(ctx))
	}
}

// adminSession returns the session requireAdmin attached to the request.
func adminSession(r *http.Request) *auth.Session {
	sess, _ := r.Context().Value(sessionContextKey).(*auth.Session)
	return sess
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentSession(r); ok {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	s.render(w, r, http.StatusOK, "admin_login", Page{
		Title:   "Admin Login",
		Content: LoginView{},
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	if err := s.gate.Submit(email, password); err != nil {
		status := http.StatusUnauthorized
		message := "Invalid email or password"
		if errors.Is(err, auth.ErrLoginInFlight) {
			status = http.StatusConflict
			message = "A login attempt is already in progress"
		}
		s.render(w, r, status, "admin_login", Page{
			Title:   "Admin Login",
			Content: LoginView{Email: email, Error: message},
		})
		return
	}

	sess := s.sessions.Create(email)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.Redirect(w, r, "/admin")
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookie); err == nil {
		s.sessions.Delete(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.Redirect(w, r, "/admin/login")
}
