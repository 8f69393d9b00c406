package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// TemplateRenderer renders HTML templates for UI responses.
//
// Each page under pages/ is parsed into its own template set together with
// the shared layout and partials, so every page can define "content" without
// clashing with the others. HTMX requests render just the "content" block.
type TemplateRenderer struct {
	pages    map[string]*template.Template
	errPage  *template.Template
	logger   *slog.Logger
	funcs    template.FuncMap
	rootFS   fs.FS
	partials []string
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	r := &TemplateRenderer{
		pages:  make(map[string]*template.Template),
		logger: cfg.Logger,
		funcs:  templateFuncs(),
		rootFS: cfg.TemplateFS,
	}

	partials, err := fs.Glob(cfg.TemplateFS, "partials/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}
	r.partials = partials

	pageFiles, err := fs.Glob(cfg.TemplateFS, "pages/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}
	if len(pageFiles) == 0 {
		return nil, errors.New("no page templates found under pages/")
	}

	for _, pf := range pageFiles {
		name := strings.TrimSuffix(path.Base(pf), ".tmpl")
		set, parseErr := r.parsePageSet(pf)
		if parseErr != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, parseErr)
		}
		r.pages[name] = set
	}

	errSet, err := template.New("error.tmpl").Funcs(r.funcs).ParseFS(cfg.TemplateFS, "error.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse error template: %w", err)
	}
	r.errPage = errSet

	return r, nil
}

func (r *TemplateRenderer) parsePageSet(pageFile string) (*template.Template, error) {
	files := make([]string, 0, len(r.partials)+2)
	files = append(files, "layout.tmpl")
	files = append(files, r.partials...)
	files = append(files, pageFile)
	return template.New("layout.tmpl").Funcs(r.funcs).ParseFS(r.rootFS, files...)
}

// RenderPage renders the full layout for the given page name.
func (r *TemplateRenderer) RenderPage(w http.ResponseWriter, page string, data any) error {
	set, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	return r.execute(w, set, "layout", data)
}

// RenderContent renders only the page's content block (HTMX partial swaps).
func (r *TemplateRenderer) RenderContent(w http.ResponseWriter, page string, data any) error {
	set, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	return r.execute(w, set, "content", data)
}

// RenderFragment renders a named partial from a page's template set, e.g. the
// events table body refreshed by a search input.
func (r *TemplateRenderer) RenderFragment(w http.ResponseWriter, page, fragment string, data any) error {
	set, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	return r.execute(w, set, fragment, data)
}

// RenderError renders the standalone error page.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, data any) error {
	return r.execute(w, r.errPage, "error-layout", data)
}

// execute buffers template output so a mid-render failure never produces a
// half-written response body.
func (r *TemplateRenderer) execute(w http.ResponseWriter, set *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, name, data); err != nil {
		r.logTemplateError(name, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		r.logTemplateError(name, err)
		return err
	}
	return nil
}

func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}

// templateFuncs returns the shared FuncMap for all page template sets.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"lower": strings.ToLower,
		"typeLabel": func(t string) string {
			// CAREER_FAIR -> Career Fair
			words := strings.Split(strings.ToLower(t), "_")
			for i, w := range words {
				if w == "" {
					continue
				}
				words[i] = strings.ToUpper(w[:1]) + w[1:]
			}
			return strings.Join(words, " ")
		},
	}
}
