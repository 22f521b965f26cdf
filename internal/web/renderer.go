package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
)

const layoutTemplate = "base.html"

// Pages rendered on top of the base layout.
const (
	PageIndex         = "index.html"
	PageDashboard     = "dashboard.html"
	PageAnalyses      = "analises.html"
	PageSettings      = "configuracoes.html"
	PageHelp          = "ajuda.html"
	PageAbout         = "sobre.html"
	PageContact       = "contato.html"
	PageDocumentation = "documentacao.html"
	PageLogin         = "login.html"
	PageRegister      = "registro.html"
	PageNotFound      = "404.html"
	PageServerError   = "500.html"
)

var allPages = []string{
	PageIndex,
	PageDashboard,
	PageAnalyses,
	PageSettings,
	PageHelp,
	PageAbout,
	PageContact,
	PageDocumentation,
	PageLogin,
	PageRegister,
	PageNotFound,
	PageServerError,
}

// Renderer executes page templates. With reload set, templates are parsed
// again on every render so edits on disk show up without a restart.
type Renderer struct {
	assets fs.FS
	reload bool
	pages  map[string]*template.Template
}

func NewRenderer(assets fs.FS, reload bool) (*Renderer, error) {
	r := &Renderer{
		assets: assets,
		reload: reload,
	}

	pages, err := r.parseAll()
	if err != nil {
		return nil, err
	}
	r.pages = pages

	return r, nil
}

// Render executes page inside the base layout. w may receive partial output
// on error; HTTP callers render into a buffer first.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, err := r.lookup(page)
	if err != nil {
		return err
	}

	if err := tmpl.ExecuteTemplate(w, layoutTemplate, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", page, err)
	}
	return nil
}

func (r *Renderer) lookup(page string) (*template.Template, error) {
	if r.reload {
		return r.parse(page)
	}

	tmpl, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}
	return tmpl, nil
}

func (r *Renderer) parseAll() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(allPages))
	for _, page := range allPages {
		tmpl, err := r.parse(page)
		if err != nil {
			return nil, err
		}
		pages[page] = tmpl
	}
	return pages, nil
}

func (r *Renderer) parse(page string) (*template.Template, error) {
	tmpl, err := template.New(layoutTemplate).ParseFS(r.assets,
		path.Join("templates", layoutTemplate),
		path.Join("templates", page),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
	}
	return tmpl, nil
}
