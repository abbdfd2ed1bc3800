package navigation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/appshell/internal/platform/icons"
	"github.com/louisbranch/appshell/internal/services/shell/routepath"
)

var (
	// ErrMissingTitle reports an entry without a display title.
	ErrMissingTitle = errors.New("navigation entry title is required")
	// ErrMissingPath reports an entry without a target path.
	ErrMissingPath = errors.New("navigation entry path is required")
	// ErrRelativePath reports a target path that is not absolute.
	ErrRelativePath = errors.New("navigation entry path must be absolute")
	// ErrDuplicatePath reports two entries targeting the same path.
	ErrDuplicatePath = errors.New("navigation entry path is already registered")
	// ErrUnknownIcon reports an icon kind outside the catalog.
	ErrUnknownIcon = errors.New("navigation entry icon is not cataloged")
)

// EntryError ties a validation failure to the offending entry position.
type EntryError struct {
	Index int
	Title string
	Err   error
}

func (e *EntryError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("navigation entry %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("navigation entry %d (%q): %v", e.Index, e.Title, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Registry is the ordered, read-only list of entries driving the sidebar.
// The zero value is an empty registry.
type Registry struct {
	entries []Entry
}

// NewRegistry validates entries and freezes them in the given order.
//
// Titles are trimmed and paths normalized the way the router matches them,
// so "/settings/" and "/settings" are the same target. A missing title or path, a relative path,
// a repeated path or an uncataloged icon fails construction. Repeated titles
// are accepted; Entry.Key keeps their rendered identities apart.
func NewRegistry(entries ...Entry) (Registry, error) {
	frozen := make([]Entry, 0, len(entries))
	seenPaths := make(map[string]int, len(entries))
	for idx, entry := range entries {
		entry.Title = strings.TrimSpace(entry.Title)
		entry.Path = strings.TrimSpace(entry.Path)
		if err := validateEntry(entry); err != nil {
			return Registry{}, &EntryError{Index: idx, Title: entry.Title, Err: err}
		}
		entry.Path = routepath.Clean(entry.Path)
		if previous, ok := seenPaths[entry.Path]; ok {
			return Registry{}, &EntryError{
				Index: idx,
				Title: entry.Title,
				Err:   fmt.Errorf("%w: %s (entry %d)", ErrDuplicatePath, entry.Path, previous),
			}
		}
		seenPaths[entry.Path] = idx
		frozen = append(frozen, entry)
	}
	return Registry{entries: frozen}, nil
}

func validateEntry(entry Entry) error {
	if entry.Title == "" {
		return ErrMissingTitle
	}
	if entry.Path == "" {
		return ErrMissingPath
	}
	if !strings.HasPrefix(entry.Path, "/") || strings.ContainsAny(entry.Path, " \t\n?#") {
		return fmt.Errorf("%w: %q", ErrRelativePath, entry.Path)
	}
	if entry.Icon != icons.KindUnspecified && !entry.Icon.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownIcon, entry.Icon)
	}
	return nil
}

// Entries returns a copy of the registry entries in render order.
func (r Registry) Entries() []Entry {
	result := make([]Entry, len(r.entries))
	copy(result, r.entries)
	return result
}

// Len returns the number of entries.
func (r Registry) Len() int {
	return len(r.entries)
}

// Paths returns every target path in render order.
func (r Registry) Paths() []string {
	paths := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		paths = append(paths, entry.Path)
	}
	return paths
}

// DefaultEntries returns the built-in shell menu.
func DefaultEntries() []Entry {
	return []Entry{
		{Title: "Home", Path: routepath.Root, Icon: icons.KindHome},
		{Title: "Dashboard", Path: routepath.Dashboard, Icon: icons.KindDashboard},
		{Title: "Settings", Path: routepath.Settings, Icon: icons.KindSettings},
	}
}

// DefaultRegistry builds the registry from DefaultEntries.
func DefaultRegistry() (Registry, error) {
	return NewRegistry(DefaultEntries()...)
}
