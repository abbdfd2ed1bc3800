// Package pagerender writes routed pages as full documents or HTMX fragments.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/appshell/internal/services/shell/navigation"
	"github.com/louisbranch/appshell/internal/services/shell/platform/httpx"
	"github.com/louisbranch/appshell/internal/services/shell/routing"
	"github.com/louisbranch/appshell/internal/services/shell/templates"
)

// Shell carries the chrome shared by every page.
type Shell struct {
	Registry navigation.Registry
	AppName  string
	Assets   templates.Assets
}

// StatusFor maps a route match to its response status.
func StatusFor(match routing.Match) int {
	if match.Found {
		return http.StatusOK
	}
	return http.StatusNotFound
}

// Fragment renders the response to an HTMX navigation: a title tag, the
// sidebar as an out-of-band swap marking the new location, then the matched
// subtree for the main region.
func (s Shell) Fragment(match routing.Match) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, templates.TitleTag(templates.PageTitle(match.Title, s.AppName))); err != nil {
			return err
		}
		if err := navigation.SidebarSwap(s.Registry, match.Path).Render(ctx, w); err != nil {
			return err
		}
		return match.Component().Render(ctx, w)
	})
}

// Document renders the full page for match with the sidebar marking the
// matched path.
func (s Shell) Document(match routing.Match) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := templates.Document(templates.DocumentOptions{
			Title:   match.Title,
			AppName: s.AppName,
			Assets:  s.Assets,
			Sidebar: navigation.Sidebar(s.Registry, match.Path),
		})
		return doc.Render(templ.WithChildren(ctx, match.Component()), w)
	})
}

// WritePage writes match as a fragment for HTMX requests and as a full
// document otherwise.
func (s Shell) WritePage(w http.ResponseWriter, r *http.Request, match routing.Match) error {
	if w == nil {
		return nil
	}
	ctx := httpx.RequestContext(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", httpx.HTMXHeader)
	if httpx.IsHTMXRequest(r) {
		w.WriteHeader(StatusFor(match))
		return s.Fragment(match).Render(ctx, w)
	}
	w.WriteHeader(StatusFor(match))
	return s.Document(match).Render(ctx, w)
}
