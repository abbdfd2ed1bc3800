package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Dashboard != "/dashboard" {
		t.Fatalf("Dashboard = %q", Dashboard)
	}
	if DashboardOverview != "/dashboard/overview" {
		t.Fatalf("DashboardOverview = %q", DashboardOverview)
	}
	if DashboardActivity != "/dashboard/activity" {
		t.Fatalf("DashboardActivity = %q", DashboardActivity)
	}
	if Settings != "/settings" {
		t.Fatalf("Settings = %q", Settings)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
}

func TestStatic(t *testing.T) {
	t.Parallel()

	if got := Static("app.css"); got != "/static/app.css" {
		t.Fatalf("Static() = %q", got)
	}
	if got := Static("/app.js"); got != "/static/app.js" {
		t.Fatalf("Static() = %q", got)
	}
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":            "",
		"dashboard":   "/dashboard/",
		"/dashboard":  "/dashboard/",
		"/dashboard/": "/dashboard/",
		"/":           "/",
	}
	for in, want := range tests {
		if got := Prefix(in); got != want {
			t.Fatalf("Prefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                     "/",
		"/":                    "/",
		"dashboard":            "/dashboard",
		"/dashboard/":          "/dashboard",
		"/dashboard/activity/": "/dashboard/activity",
		"//":                   "/",
	}
	for in, want := range tests {
		if got := Clean(in); got != want {
			t.Fatalf("Clean(%q) = %q, want %q", in, got, want)
		}
	}
}
