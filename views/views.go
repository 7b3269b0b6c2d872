// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

// Page names, one template file each
const (
	PageIndex                    = "index"
	PageApply                    = "apply"
	PageProcessApplication       = "processApplication"
	PageFind                     = "find"
	PageReviewApplication        = "reviewApplication"
	PageProcessReviewApplication = "processReviewApplication"
	PageAdminGFA                 = "adminGFA"
	PageProcessAdminGFA          = "processAdminGFA"
	PageAdminRemove              = "adminRemove"
	PageProcessAdminRemove       = "processAdminRemove"
	PageError                    = "error"
)

var pages = []string{
	PageIndex,
	PageApply,
	PageProcessApplication,
	PageFind,
	PageReviewApplication,
	PageProcessReviewApplication,
	PageAdminGFA,
	PageProcessAdminGFA,
	PageAdminRemove,
	PageProcessAdminRemove,
	PageError,
}

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// AdminForm is the data for the admin form pages.
type AdminForm struct {
	AdminKeyRequired bool
}

var funcs = template.FuncMap{
	"since": humanize.Time,
	"comma": humanize.Comma,
	"gpa":   humanize.Ftoa,
	"datetime": func(t time.Time) string {
		return t.Format("Mon Jan 02 2006 15:04:05 MST")
	},
}

// Renderer holds every page parsed once at startup.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render executes a page into a buffer first, so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, statusCode int, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheet under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
