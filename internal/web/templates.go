package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/ANOOPSONKRIYA/vlsi-web/internal/util"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

var pageNames = []string{
	"home",
	"about",
	"portfolio",
	"project_detail",
	"team",
	"team_member",
	"notfound",
	"error",
	"admin_login",
	"admin_dashboard",
	"admin_projects",
	"admin_project_form",
	"admin_team",
	"admin_team_form",
	"admin_media",
	"admin_settings",
}

var templateFuncs = template.FuncMap{
	"formatDate":    util.FormatDate,
	"formatDateISO": util.FormatDateISO,
	"formatSize":    util.FormatSize,
	"truncate":      util.Truncate,
	"paragraphs":    paragraphs,
}

// paragraphs splits markdown-ish body text into paragraphs for rendering.
func paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Renderer holds one parsed template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").
			Funcs(templateFuncs).
			ParseFS(templateFiles, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page with the given status code.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return t.ExecuteTemplate(w, "layout.html", data)
}
