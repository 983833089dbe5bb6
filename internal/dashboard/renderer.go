package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/vilaca/x-affiliates/internal/domain"
)

// Renderer handles rendering responses to HTTP clients.
type Renderer interface {
	RenderHome(w io.Writer, loggedIn bool) error
	RenderDashboard(w io.Writer, view DashboardView) error
	RenderError(w io.Writer, message string) error
	RenderHealth(w io.Writer) error
}

// DashboardView is everything the dashboard page shows.
type DashboardView struct {
	User           domain.UserProfile
	OrganizationID string
	Affiliates     []domain.UserProfile
}

// HTMLRenderer implements Renderer for HTML responses.
type HTMLRenderer struct {
	home      *template.Template
	dashboard *template.Template
	errorPage *template.Template
}

// NewHTMLRenderer parses the page templates. It panics on a malformed
// template since they are compiled into the binary.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		home:      mustParsePage("home", homeTemplate),
		dashboard: mustParsePage("dashboard", dashboardTemplate),
		errorPage: mustParsePage("error", errorTemplate),
	}
}

func mustParsePage(name, page string) *template.Template {
	t := template.New(name).Funcs(templateFuncs())
	template.Must(t.Parse(htmlHead))
	template.Must(t.Parse(centeredCSS))
	return template.Must(t.Parse(page))
}

func (r *HTMLRenderer) RenderHome(w io.Writer, loggedIn bool) error {
	return execute(w, r.home, struct{ LoggedIn bool }{loggedIn})
}

func (r *HTMLRenderer) RenderDashboard(w io.Writer, view DashboardView) error {
	return execute(w, r.dashboard, view)
}

func (r *HTMLRenderer) RenderError(w io.Writer, message string) error {
	return execute(w, r.errorPage, struct{ Message string }{message})
}

func (r *HTMLRenderer) RenderHealth(w io.Writer) error {
	_, err := w.Write([]byte(`{"status":"ok"}`))
	return err
}

// execute writes nothing to w when the template fails.
func execute(w io.Writer, t *template.Template, data interface{}) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", t.Name(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}
