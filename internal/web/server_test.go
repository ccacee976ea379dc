package web

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/memory"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/adapters/storage"
	"github.com/ANOOPSONKRIYA/vlsi-web/internal/auth"
)

func newTestServer(t *testing.T) (*Server, *memory.Store) {
	t.Helper()

	store := memory.NewStore(memory.SeedSnapshot())
	uploads, err := storage.NewMediaStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewMediaStorage() error = %v", err)
	}

	srv, err := NewServer(
		0,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		Stores{
			Projects: store,
			Team:     store.Team(),
			Media:    store.MediaLibrary(),
			Settings: store.Settings(),
		},
		uploads,
		uploads.Dir(),
		auth.NewGate(auth.Credentials{Email: "admin@university.edu", Password: "admin123"}),
		auth.NewSessionStore(time.Hour),
	)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return srv, store
}

func get(t *testing.T, srv *Server, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, srv *Server, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, srv *Server) *http.Cookie {
	t.Helper()
	rec := postForm(t, srv, "/admin/login", url.Values{
		"email":    {"admin@university.edu"},
		"password": {"admin123"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func TestPublicPages(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/", "/about", "/portfolio", "/team", "/health"} {
		rec := get(t, srv, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
	}
}

func TestPortfolioHidesDrafts(t *testing.T) {
	srv, _ := newTestServer(t)

	body := get(t, srv, "/portfolio").Body.String()
	if !strings.Contains(body, "Neural Network Processor") {
		t.Error("portfolio missing a published project")
	}
	if strings.Contains(body, "FPGA ML Accelerator") {
		t.Error("portfolio shows a draft project")
	}
}

func TestPortfolioCategoryFilter(t *testing.T) {
	srv, _ := newTestServer(t)

	body := get(t, srv, "/portfolio?category=ai-robotics").Body.String()
	if strings.Contains(body, "Neural Network Processor") {
		t.Error("ai-robotics view shows a vlsi project")
	}
	if !strings.Contains(body, "Autonomous Navigation Robot") {
		t.Error("ai-robotics view missing its own project")
	}

	// An unknown category behaves like no filter at all.
	fallback := get(t, srv, "/portfolio?category=quantum").Body.String()
	if !strings.Contains(fallback, "Neural Network Processor") {
		t.Error("unknown category did not fall back to all projects")
	}
}

func TestPortfolioTextSearch(t *testing.T) {
	srv, _ := newTestServer(t)

	body := get(t, srv, "/portfolio?q=neural").Body.String()
	if !strings.Contains(body, "Neural Network Processor") {
		t.Error("text search missed a matching project")
	}
	if strings.Contains(body, "Autonomous Navigation Robot") {
		t.Error("text search kept a non-matching project")
	}
}

func TestProjectDetail(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/portfolio/neural-processor")
	if rec.Code != http.StatusOK {
		t.Fatalf("detail status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Project Timeline") || !strings.Contains(body, "Contributors") {
		t.Error("detail page missing timeline or contributors sections")
	}

	if rec := get(t, srv, "/portfolio/no-such-project"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown slug status = %d, want 404", rec.Code)
	}
	// Draft projects are a 404 to the public, not a fallback.
	if rec := get(t, srv, "/portfolio/fpga-accelerator"); rec.Code != http.StatusNotFound {
		t.Errorf("draft project status = %d, want 404", rec.Code)
	}
}

func TestTeamMemberDetail(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/team/sarah-chen")
	if rec.Code != http.StatusOK {
		t.Fatalf("member detail status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Dr. Sarah Chen") {
		t.Error("member detail missing the member name")
	}

	if rec := get(t, srv, "/team/nobody"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown member status = %d, want 404", rec.Code)
	}
}

func TestUnknownPageIs404(t *testing.T) {
	srv, _ := newTestServer(t)

	if rec := get(t, srv, "/does-not-exist"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rec.Code)
	}
}

func TestAdminRequiresSession(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/admin", "/admin/projects", "/admin/team", "/admin/media", "/admin/settings"} {
		rec := get(t, srv, path)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("GET %s status = %d, want redirect", path, rec.Code)
			continue
		}
		if loc := rec.Header().Get("Location"); loc != "/admin/login" {
			t.Errorf("GET %s redirects to %q, want /admin/login", path, loc)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@university.edu", "nope"},
		{"wrong email", "someone@university.edu", "admin123"},
		{"both wrong", "someone@university.edu", "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(t, srv, "/admin/login", url.Values{
				"email":    {tt.email},
				"password": {tt.password},
			})
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			// The message never says which field was wrong.
			if !strings.Contains(rec.Body.String(), "Invalid email or password") {
				t.Error("rejection message missing or too specific")
			}
		})
	}
}

func TestLoginAndAdminAccess(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := login(t, srv)

	rec := get(t, srv, "/admin", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin dashboard status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Dashboard") {
		t.Error("dashboard content missing")
	}

	// Logout invalidates the session.
	postForm(t, srv, "/admin/logout", url.Values{}, cookie)
	if rec := get(t, srv, "/admin", cookie); rec.Code != http.StatusSeeOther {
		t.Errorf("post-logout admin status = %d, want redirect", rec.Code)
	}
}

func TestAdminProjectCreate(t *testing.T) {
	srv, store := newTestServer(t)
	cookie := login(t, srv)

	rec := postForm(t, srv, "/admin/projects", url.Values{
		"title":       {"Photonic Interconnect"},
		"category":    {"vlsi"},
		"status":      {"published"},
		"description": {"On-chip optical links."},
	}, cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("create status = %d, want redirect, body: %s", rec.Code, rec.Body.String())
	}

	created, err := store.GetBySlug(context.Background(), "photonic-interconnect")
	if err != nil {
		t.Fatalf("created project not found: %v", err)
	}
	if !created.Published() {
		t.Error("created project is not published")
	}

	// A duplicate slug re-renders the form instead of saving.
	rec = postForm(t, srv, "/admin/projects", url.Values{
		"title":    {"Photonic Interconnect"},
		"category": {"vlsi"},
		"status":   {"draft"},
	}, cookie)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("duplicate slug status = %d, want 422", rec.Code)
	}
}

func TestAdminProjectDelete(t *testing.T) {
	srv, store := newTestServer(t)
	cookie := login(t, srv)

	rec := postForm(t, srv, "/admin/projects/1/delete", url.Values{}, cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d, want redirect", rec.Code)
	}
	if _, err := store.GetByID(context.Background(), "1"); err == nil {
		t.Error("project still present after delete")
	}
}

func TestAdminMediaSelectionFlow(t *testing.T) {
	srv, store := newTestServer(t)
	cookie := login(t, srv)

	assets, _ := store.MediaLibrary().List(context.Background())
	first, second := assets[0], assets[1]

	// Select two files.
	postForm(t, srv, "/admin/media/"+first.ID+"/toggle", url.Values{}, cookie)
	postForm(t, srv, "/admin/media/"+second.ID+"/toggle", url.Values{}, cookie)

	body := get(t, srv, "/admin/media", cookie).Body.String()
	if !strings.Contains(body, "2 selected") {
		t.Error("selection count not shown after two toggles")
	}

	// Toggling one again deselects it.
	postForm(t, srv, "/admin/media/"+second.ID+"/toggle", url.Values{}, cookie)

	rec := postForm(t, srv, "/admin/media/delete-selected", url.Values{}, cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete-selected status = %d, want redirect", rec.Code)
	}

	remaining, _ := store.MediaLibrary().List(context.Background())
	if len(remaining) != len(assets)-1 {
		t.Fatalf("asset count after bulk delete = %d, want %d", len(remaining), len(assets)-1)
	}
	for _, a := range remaining {
		if a.ID == first.ID {
			t.Error("selected asset survived bulk delete")
		}
	}
}

func TestAdminMediaUpload(t *testing.T) {
	srv, store := newTestServer(t)
	cookie := login(t, srv)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "wafer map.png")
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := fw.Write([]byte("png-bytes")); err != nil {
		t.Fatalf("writing upload body: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("upload status = %d, want redirect", rec.Code)
	}

	assets, _ := store.MediaLibrary().List(context.Background())
	var found bool
	for _, a := range assets {
		if a.URL == "/media/wafer-map.png" {
			found = true
			if a.SizeBytes != int64(len("png-bytes")) {
				t.Errorf("uploaded size = %d", a.SizeBytes)
			}
		}
	}
	if !found {
		t.Fatal("uploaded asset not recorded in the library")
	}

	// The stored file is served back.
	if rec := get(t, srv, "/media/wafer-map.png", cookie); rec.Code != http.StatusOK {
		t.Errorf("GET uploaded file status = %d, want 200", rec.Code)
	}
}

func TestAdminSettingsSave(t *testing.T) {
	srv, store := newTestServer(t)
	cookie := login(t, srv)

	rec := postForm(t, srv, "/admin/settings", url.Values{
		"site_title":    {"Silicon Systems Lab"},
		"tagline":       {"Chips and robots"},
		"about_heading": {"Who we are"},
		"about_body":    {"We build hardware."},
		"contact_email": {"lab@university.edu"},
	}, cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("settings save status = %d, want redirect", rec.Code)
	}

	setting, err := store.Settings().Get(context.Background(), "site_info")
	if err != nil {
		t.Fatalf("Get(site_info) error = %v", err)
	}
	if setting.Text("title") != "Silicon Systems Lab" {
		t.Errorf("saved title = %q", setting.Text("title"))
	}

	// The new title shows up on the public site immediately.
	if body := get(t, srv, "/").Body.String(); !strings.Contains(body, "Silicon Systems Lab") {
		t.Error("public site does not reflect the saved title")
	}
}

func uploadFile(t *testing.T, srv *Server, cookie *http.Cookie, filename, contents string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := fw.Write([]byte(contents)); err != nil {
		t.Fatalf("writing upload body: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/media/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("upload status = %d, want redirect", rec.Code)
	}
}

func TestAdminMediaBulkDeleteRemovesStoredFile(t *testing.T) {
	srv, store := newTestServer(t)
	cookie := login(t, srv)

	uploadFile(t, srv, cookie, "reticle.png", "png-bytes")

	assets, _ := store.MediaLibrary().List(context.Background())
	var uploadedID string
	for _, a := range assets {
		if a.URL == "/media/reticle.png" {
			uploadedID = a.ID
		}
	}
	if uploadedID == "" {
		t.Fatal("uploaded asset not recorded in the library")
	}

	rec := postForm(t, srv, "/admin/media/"+uploadedID+"/toggle", url.Values{}, cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("toggle status = %d, want redirect", rec.Code)
	}
	rec = postForm(t, srv, "/admin/media/delete-selected", url.Values{}, cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete-selected status = %d, want redirect", rec.Code)
	}

	if rec := get(t, srv, "/media/reticle.png", cookie); rec.Code != http.StatusNotFound {
		t.Errorf("deleted file still served, status = %d", rec.Code)
	}
	if _, err := store.MediaLibrary().GetByID(context.Background(), uploadedID); err == nil {
		t.Error("deleted asset still in the library")
	}
}

func TestAdminHandlersUseGuardSession(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := login(t, srv)

	// The session can vanish from the store between the route guard and the
	// handler body. The guard's resolved session rides the request, so the
	// handler must keep working instead of panicking on a missed lookup.
	handler := srv.requireAdmin(func(w http.ResponseWriter, r *http.Request) {
		srv.sessions.Delete(cookie.Value)
		srv.renderAdminMedia(w, r, "")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/media", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("media page status = %d, want 200", rec.Code)
	}
}

func TestAdminTablesCarryMachineReadableDates(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := login(t, srv)

	body := get(t, srv, "/admin/projects", cookie).Body.String()
	if !strings.Contains(body, `<time datetime="2024-01-15">`) {
		t.Error("projects table missing ISO datetime attribute")
	}

	uploadFile(t, srv, cookie, "die-shot.png", "png-bytes")
	body = get(t, srv, "/admin/media", cookie).Body.String()
	if !strings.Contains(body, `<time datetime="`) {
		t.Error("media table missing ISO datetime attribute")
	}
}
