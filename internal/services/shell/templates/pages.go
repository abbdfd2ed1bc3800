package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func staticHTML(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

// HomePage is the landing page.
func HomePage() templ.Component {
	return staticHTML(`<article class="page" id="home-page"><h1>Home</h1><p>Pick a destination from the sidebar.</p></article>`)
}

// DashboardOverview is a dashboard child linking to the activity feed.
func DashboardOverview() templ.Component {
	return staticHTML(`<article class="page" id="dashboard-overview"><h1>Overview</h1><p>Nothing to report yet.</p><p><a href="/dashboard/activity" hx-get="/dashboard/activity" hx-target="#main" hx-push-url="true">Recent activity</a></p></article>`)
}

// DashboardActivity is a nested dashboard child.
func DashboardActivity() templ.Component {
	return staticHTML(`<article class="page" id="dashboard-activity"><h1>Activity</h1><ul class="activity-list"></ul></article>`)
}

// SettingsPage is the settings page.
func SettingsPage() templ.Component {
	return staticHTML(`<article class="page" id="settings-page"><h1>Settings</h1><p>No settings are configurable yet.</p></article>`)
}

// NotFoundPage is rendered when no route matches path.
func NotFoundPage(path string) templ.Component {
	return staticHTML(`<article class="page page-not-found" id="not-found"><h1>Page not found</h1><p>No page exists at <code>` + templ.EscapeString(path) + `</code>.</p></article>`)
}
