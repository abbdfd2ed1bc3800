package navigation

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/appshell/internal/platform/icons"
)

func TestLoadReadsEntriesInOrder(t *testing.T) {
	t.Parallel()

	reg, err := Load(strings.NewReader(`
entries:
  - title: Home
    path: /
    icon: home
  - title: Dashboard
    path: /dashboard
    icon: Dashboard
  - title: Help
    path: /help
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []Entry{
		{Title: "Home", Path: "/", Icon: icons.KindHome},
		{Title: "Dashboard", Path: "/dashboard", Icon: icons.KindDashboard},
		{Title: "Help", Path: "/help"},
	}
	if diff := cmp.Diff(want, reg.Entries()); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	t.Parallel()

	reg, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", reg.Len())
	}
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "unknown icon", doc: "entries:\n  - title: Home\n    path: /\n    icon: rocket\n", want: ErrUnknownIcon},
		{name: "missing title", doc: "entries:\n  - path: /\n", want: ErrMissingTitle},
		{name: "relative path", doc: "entries:\n  - title: Home\n    path: home\n", want: ErrRelativePath},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Load(strings.NewReader(tc.doc)); !errors.Is(err, tc.want) {
				t.Fatalf("Load() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	if _, err := Load(strings.NewReader("entries:\n  - title: Home\n    path: /\n    colour: red\n")); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestLoadRejectsNilReader(t *testing.T) {
	t.Parallel()

	if _, err := Load(nil); err == nil {
		t.Fatal("expected nil reader error")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nav.yaml")
	if err := os.WriteFile(path, []byte("entries:\n  - title: Home\n    path: /\n    icon: home\n"), 0o600); err != nil {
		t.Fatalf("write nav file: %v", err)
	}
	reg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected missing file error")
	}
}
