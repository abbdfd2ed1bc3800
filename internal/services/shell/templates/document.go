// Package templates holds the shell's root frame and built-in pages.
package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/appshell/internal/platform/icons"
	"github.com/louisbranch/appshell/internal/services/shell/routepath"
)

// MainID is the id of the region HTMX navigation swaps.
const MainID = "main"

// DefaultAppName is shown in the document title suffix.
const DefaultAppName = "App Shell"

// DefaultHTMXScriptURL is used when no script URL is configured.
const DefaultHTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// Assets locates the stylesheet and scripts referenced by the document.
type Assets struct {
	// BaseURL prefixes embedded asset paths, e.g. a CDN origin. Empty serves
	// them from this host.
	BaseURL string
	// HTMXScriptURL is the htmx script source.
	HTMXScriptURL string
}

func (a Assets) static(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(a.BaseURL), "/") + routepath.Static(name)
}

func (a Assets) htmx() string {
	if src := strings.TrimSpace(a.HTMXScriptURL); src != "" {
		return src
	}
	return DefaultHTMXScriptURL
}

// DocumentOptions configures the full-page frame.
type DocumentOptions struct {
	Title   string
	AppName string
	Lang    string
	Assets  Assets
	Sidebar templ.Component
}

// PageTitle joins a page title with the app name.
func PageTitle(title, appName string) string {
	title = strings.TrimSpace(title)
	appName = strings.TrimSpace(appName)
	if appName == "" {
		appName = DefaultAppName
	}
	if title == "" {
		return appName
	}
	return title + " · " + appName
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// Document renders the full HTML page: sidebar next to the main region, with
// the children from ctx rendered inside main.
func Document(opts DocumentOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en"
		}
		var head strings.Builder
		head.WriteString(`<!doctype html><html lang="` + templ.EscapeString(lang) + `"><head>`)
		head.WriteString(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		head.WriteString(TitleTag(PageTitle(opts.Title, opts.AppName)))
		head.WriteString(`<link rel="stylesheet" href="` + templ.EscapeString(opts.Assets.static("app.css")) + `">`)
		head.WriteString(`<script src="` + templ.EscapeString(opts.Assets.htmx()) + `" defer></script>`)
		head.WriteString(`<script src="` + templ.EscapeString(opts.Assets.static("app.js")) + `" defer></script>`)
		head.WriteString(`</head><body>`)
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}
		if err := icons.Sprite().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="shell"><aside class="shell-sidebar">`); err != nil {
			return err
		}
		if opts.Sidebar != nil {
			if err := opts.Sidebar.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</aside><main id="`+MainID+`" class="shell-main">`); err != nil {
			return err
		}
		children := templ.GetChildren(ctx)
		if err := children.Render(templ.ClearChildren(ctx), w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></div></body></html>`)
		return err
	})
}
