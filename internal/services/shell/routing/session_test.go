package routing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/appshell/internal/platform/icons"
	"github.com/louisbranch/appshell/internal/services/shell/navigation"
)

func TestSessionNavigateRendersOncePerRequest(t *testing.T) {
	t.Parallel()

	var rendered []string
	session, err := NewSession(newTestRouter(t), func(_ context.Context, m Match) error {
		rendered = append(rendered, m.Path)
		return nil
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if session.Location() != "/" {
		t.Fatalf("Location() = %q, want /", session.Location())
	}
	for _, path := range []string{"/dashboard", "/dashboard/activity", "/settings"} {
		if err := session.Navigate(context.Background(), path); err != nil {
			t.Fatalf("Navigate(%s) error = %v", path, err)
		}
	}
	want := []string{"/dashboard", "/dashboard/activity", "/settings"}
	if diff := cmp.Diff(want, rendered); diff != "" {
		t.Fatalf("renders mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, session.History()); diff != "" {
		t.Fatalf("History() mismatch (-want +got):\n%s", diff)
	}
	if session.Location() != "/settings" {
		t.Fatalf("Location() = %q", session.Location())
	}
}

func TestSessionNavigateUnmatchedRendersFallback(t *testing.T) {
	t.Parallel()

	var last Match
	session, err := NewSession(newTestRouter(t), func(_ context.Context, m Match) error {
		last = m
		return nil
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if err := session.Navigate(context.Background(), "/nowhere"); !errors.Is(err, ErrUnroutable) {
		t.Fatalf("Navigate() error = %v, want ErrUnroutable", err)
	}
	if last.Found || last.Path != "/nowhere" || session.Location() != "/nowhere" {
		t.Fatalf("last match = %+v, location = %q", last, session.Location())
	}
	if err := session.Navigate(context.Background(), ""); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("Navigate(empty) error = %v", err)
	}
}

func TestSessionPropagatesRenderError(t *testing.T) {
	t.Parallel()

	want := errors.New("write failed")
	session, err := NewSession(newTestRouter(t), func(context.Context, Match) error { return want })
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if err := session.Navigate(context.Background(), "/"); !errors.Is(err, want) {
		t.Fatalf("Navigate() error = %v, want %v", err, want)
	}
}

func TestNewSessionRequiresInputs(t *testing.T) {
	t.Parallel()

	if _, err := NewSession(nil, func(context.Context, Match) error { return nil }); err == nil {
		t.Fatal("expected router required error")
	}
	if _, err := NewSession(New(nil), nil); err == nil {
		t.Fatal("expected render required error")
	}
}

func TestSidebarActivationDrivesSession(t *testing.T) {
	t.Parallel()

	reg, err := navigation.NewRegistry(
		navigation.Entry{Title: "Home", Path: "/", Icon: icons.KindHome},
		navigation.Entry{Title: "Dashboard", Path: "/dashboard", Icon: icons.KindDashboard},
		navigation.Entry{Title: "Settings", Path: "/settings", Icon: icons.KindSettings},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	renders := 0
	session, err := NewSession(newTestRouter(t), func(context.Context, Match) error {
		renders++
		return nil
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	items := navigation.Items(reg, session.Location())
	if _, err := items[1].Activate(context.Background(), session, navigation.TriggerSpace); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if session.Location() != "/dashboard" || renders != 1 {
		t.Fatalf("location = %q renders = %d", session.Location(), renders)
	}
}
