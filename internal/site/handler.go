package site

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/reppreps/homesite/pkg/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageFiles = []string{"home.html", "about.html", "services.html", "service.html", "contact.html"}

// Handler renders the brand-configured marketing pages.
type Handler struct {
	brand  *Brand
	pages  map[string]*template.Template
	logger *logging.Logger
}

// NewHandler parses the embedded page templates against the brand.
func NewHandler(brand *Brand, logger *logging.Logger) (*Handler, error) {
	if brand == nil {
		return nil, fmt.Errorf("site: brand required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	funcs := template.FuncMap{
		"join":  strings.Join,
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, page := range pageFiles {
		t, err := template.New(page).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("site: parse %s: %w", page, err)
		}
		pages[page] = t
	}

	return &Handler{brand: brand, pages: pages, logger: logger}, nil
}

type pageData struct {
	Brand   *Brand
	Title   string
	Service *Service
	Year    int
}

func (h *Handler) render(w http.ResponseWriter, page, title string, svc *Service) {
	data := pageData{
		Brand:   h.brand,
		Title:   title,
		Service: svc,
		Year:    time.Now().Year(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages[page].ExecuteTemplate(w, "layout", data); err != nil {
		h.logger.Error("failed to render page", "page", page, "error", err)
	}
}

// Home handles GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", h.brand.SEO.Title, nil)
}

// About handles GET /about
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, "about.html", "About - "+h.brand.CompanyName, nil)
}

// Services handles GET /services
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	h.render(w, "services.html", "Services - "+h.brand.CompanyName, nil)
}

// ServiceDetail handles GET /services/{slug}
func (h *Handler) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	svc, ok := h.brand.ServiceBySlug(slug)
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.render(w, "service.html", svc.Name+" - "+h.brand.CompanyName, svc)
}

// Contact handles GET /contact
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, "contact.html", "Contact - "+h.brand.CompanyName, nil)
}
