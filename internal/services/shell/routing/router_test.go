package routing

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/appshell/internal/services/shell/layout"
)

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func notFound(path string) templ.Component {
	return textComponent(`<p id="not-found">` + path + `</p>`)
}

func renderMatch(t *testing.T, m Match) string {
	t.Helper()
	var buf bytes.Buffer
	if err := m.Component().Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	r := New(notFound)
	if err := r.Page("/", "Home", textComponent(`<p id="home">home</p>`)); err != nil {
		t.Fatalf("Page(/) error = %v", err)
	}
	if err := r.Page("/settings", "Settings", textComponent(`<p id="settings">settings</p>`)); err != nil {
		t.Fatalf("Page(/settings) error = %v", err)
	}
	if err := r.Layout("/dashboard", layout.Dashboard); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if err := r.Child("/dashboard", "/dashboard/activity", "Activity", textComponent(`<p id="activity">activity</p>`)); err != nil {
		t.Fatalf("Child() error = %v", err)
	}
	return r
}

func TestResolveStandalonePage(t *testing.T) {
	t.Parallel()

	m := newTestRouter(t).Resolve("/settings/")
	if !m.Found || m.Frame != nil || m.Title != "Settings" || m.Path != "/settings" {
		t.Fatalf("Resolve() = %+v", m)
	}
	if body := renderMatch(t, m); body != `<p id="settings">settings</p>` {
		t.Fatalf("body = %q", body)
	}
}

func TestResolveLayoutChild(t *testing.T) {
	t.Parallel()

	m := newTestRouter(t).Resolve("/dashboard/activity")
	if !m.Found || m.Frame == nil || m.Frame.ID != "dashboard" || m.Title != "Activity" {
		t.Fatalf("Resolve() = %+v", m)
	}
	body := renderMatch(t, m)
	if !strings.Contains(body, "Dashboard Layout") || !strings.Contains(body, `<p id="activity">`) {
		t.Fatalf("body = %q", body)
	}
}

func TestResolveLayoutWithoutChildRendersEmptySlot(t *testing.T) {
	t.Parallel()

	m := newTestRouter(t).Resolve("/dashboard")
	if !m.Found || m.Frame == nil || m.Child != nil {
		t.Fatalf("Resolve() = %+v", m)
	}
	if m.Title != "Dashboard Layout" {
		t.Fatalf("Title = %q", m.Title)
	}
	body := renderMatch(t, m)
	if !strings.Contains(body, "Dashboard Layout") || !strings.Contains(body, "data-slot></div>") {
		t.Fatalf("body = %q", body)
	}
}

func TestResolveUnmatchedUnderLayoutKeepsFrame(t *testing.T) {
	t.Parallel()

	m := newTestRouter(t).Resolve("/dashboard/missing")
	if m.Found || m.Frame == nil {
		t.Fatalf("Resolve() = %+v", m)
	}
	body := renderMatch(t, m)
	if !strings.Contains(body, "Dashboard Layout") || !strings.Contains(body, `<p id="not-found">/dashboard/missing</p>`) {
		t.Fatalf("body = %q", body)
	}
}

func TestResolveLayoutOwnsWholeSegmentsOnly(t *testing.T) {
	t.Parallel()

	m := newTestRouter(t).Resolve("/dashboards")
	if m.Found || m.Frame != nil {
		t.Fatalf("Resolve(/dashboards) = %+v, want not-found outside the dashboard frame", m)
	}
}

func TestResolveUnmatchedOutsideLayouts(t *testing.T) {
	t.Parallel()

	m := newTestRouter(t).Resolve("/nowhere")
	if m.Found || m.Frame != nil {
		t.Fatalf("Resolve() = %+v", m)
	}
	if body := renderMatch(t, m); body != `<p id="not-found">/nowhere</p>` {
		t.Fatalf("body = %q", body)
	}

	bare := New(nil).Resolve("/nowhere")
	if body := renderMatch(t, bare); body != "" {
		t.Fatalf("expected empty fallback, got %q", body)
	}
}

func TestResolvePrefersDeepestLayout(t *testing.T) {
	t.Parallel()

	r := New(nil)
	if err := r.Layout("/dashboard", layout.Dashboard); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	reports := layout.Frame{ID: "reports", Label: "Reports"}
	if err := r.Layout("/dashboard/reports", reports); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if err := r.Child("/dashboard/reports", "/dashboard/reports/weekly", "Weekly", textComponent("weekly")); err != nil {
		t.Fatalf("Child() error = %v", err)
	}
	m := r.Resolve("/dashboard/reports/weekly")
	if m.Frame == nil || m.Frame.ID != "reports" {
		t.Fatalf("Resolve() frame = %+v", m.Frame)
	}
}

func TestRegistrationErrors(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "relative page", err: r.Page("settings", "x", textComponent("")), want: ErrInvalidPath},
		{name: "empty page", err: r.Page(" ", "x", textComponent("")), want: ErrInvalidPath},
		{name: "duplicate page", err: r.Page("/settings/", "x", textComponent("")), want: ErrDuplicateRoute},
		{name: "nil page", err: r.Page("/help", "x", nil), want: ErrMissingContent},
		{name: "page over layout", err: r.Page("/dashboard", "x", textComponent("")), want: ErrDuplicateRoute},
		{name: "duplicate layout", err: r.Layout("/dashboard/", layout.Dashboard), want: ErrDuplicateRoute},
		{name: "layout over page", err: r.Layout("/settings", layout.Frame{ID: "settings"}), want: ErrDuplicateRoute},
		{name: "child unknown layout", err: r.Child("/reports", "/reports/a", "x", textComponent("")), want: ErrUnknownLayout},
		{name: "child outside layout", err: r.Child("/dashboard", "/settings/a", "x", textComponent("")), want: ErrInvalidPath},
		{name: "duplicate child", err: r.Child("/dashboard", "/dashboard/activity", "x", textComponent("")), want: ErrDuplicateRoute},
		{name: "nil child", err: r.Child("/dashboard", "/dashboard/other", "x", nil), want: ErrMissingContent},
	}
	for _, tc := range tests {
		if !errors.Is(tc.err, tc.want) {
			t.Fatalf("%s: error = %v, want %v", tc.name, tc.err, tc.want)
		}
	}
	if err := r.Layout("/bad", layout.Frame{}); err == nil {
		t.Fatal("expected invalid frame error")
	}
}

func TestRequireReportsUnroutablePaths(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	if err := r.Require("/", "/dashboard", "/dashboard/activity", "/settings"); err != nil {
		t.Fatalf("Require() error = %v", err)
	}
	err := r.Require("/", "/missing", "/dashboard/missing")
	if !errors.Is(err, ErrUnroutable) {
		t.Fatalf("Require() error = %v, want ErrUnroutable", err)
	}
	for _, path := range []string{"/missing", "/dashboard/missing"} {
		if !strings.Contains(err.Error(), path) {
			t.Fatalf("Require() error %q does not name %s", err, path)
		}
	}
}
