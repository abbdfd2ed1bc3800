// Package routing matches request paths to pages and layout/child pairs.
//
// It is the collaborator the navigation and layout packages call into: it
// owns the route tree and the current location, decides which layout and
// child render for a path, and decides what an unmatched path renders.
package routing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/appshell/internal/services/shell/layout"
	"github.com/louisbranch/appshell/internal/services/shell/routepath"
)

var (
	// ErrInvalidPath reports a route path that is empty or not absolute.
	ErrInvalidPath = errors.New("route path must be absolute")
	// ErrDuplicateRoute reports a path registered twice.
	ErrDuplicateRoute = errors.New("route is already registered")
	// ErrUnknownLayout reports a child registered under an unmounted layout.
	ErrUnknownLayout = errors.New("layout is not mounted")
	// ErrMissingContent reports a route registered without a component.
	ErrMissingContent = errors.New("route content is required")
	// ErrUnroutable reports a path that no route serves.
	ErrUnroutable = errors.New("no route matches path")
)

// NotFoundFunc renders the fallback content for an unmatched path.
type NotFoundFunc func(path string) templ.Component

type route struct {
	title   string
	content templ.Component
}

type layoutRoute struct {
	base     string
	frame    layout.Frame
	children map[string]route
}

// Router holds the route tree. Register routes during startup; after that
// the router is read-only and safe for concurrent Resolve calls.
type Router struct {
	pages    map[string]route
	layouts  []*layoutRoute
	owners   map[string]string
	notFound NotFoundFunc
}

// New returns an empty router. notFound may be nil, in which case unmatched
// paths render nothing.
func New(notFound NotFoundFunc) *Router {
	return &Router{
		pages:    make(map[string]route),
		owners:   make(map[string]string),
		notFound: notFound,
	}
}

func normalizeRoutePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || !strings.HasPrefix(trimmed, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return routepath.Clean(trimmed), nil
}

func (r *Router) claim(path, owner string) error {
	if previous, ok := r.owners[path]; ok {
		return fmt.Errorf("%w: %s registered by %s, duplicated by %s", ErrDuplicateRoute, path, previous, owner)
	}
	r.owners[path] = owner
	return nil
}

// Page registers a standalone page at path.
func (r *Router) Page(path, title string, content templ.Component) error {
	clean, err := normalizeRoutePath(path)
	if err != nil {
		return err
	}
	if content == nil {
		return fmt.Errorf("page %s: %w", clean, ErrMissingContent)
	}
	for _, existing := range r.layouts {
		if existing.base == clean {
			return fmt.Errorf("%w: page %s collides with layout %s", ErrDuplicateRoute, clean, existing.frame.ID)
		}
	}
	if err := r.claim(clean, "page"); err != nil {
		return err
	}
	r.pages[clean] = route{title: strings.TrimSpace(title), content: content}
	return nil
}

// Layout mounts frame over base and every path beneath it.
func (r *Router) Layout(base string, frame layout.Frame) error {
	clean, err := normalizeRoutePath(base)
	if err != nil {
		return err
	}
	if err := frame.Validate(); err != nil {
		return fmt.Errorf("layout %s: %w", clean, err)
	}
	for _, existing := range r.layouts {
		if existing.base == clean {
			return fmt.Errorf("%w: layout %s registered by %s", ErrDuplicateRoute, clean, existing.frame.ID)
		}
	}
	if _, ok := r.pages[clean]; ok {
		return fmt.Errorf("%w: layout %s collides with a page", ErrDuplicateRoute, clean)
	}
	r.layouts = append(r.layouts, &layoutRoute{base: clean, frame: frame, children: make(map[string]route)})
	// Longest base first so nested layouts win over their parents.
	sort.SliceStable(r.layouts, func(i, j int) bool {
		return len(r.layouts[i].base) > len(r.layouts[j].base)
	})
	return nil
}

// Child registers content under the layout mounted at base. path may equal
// base to provide the layout's index child.
func (r *Router) Child(base, path, title string, content templ.Component) error {
	cleanBase, err := normalizeRoutePath(base)
	if err != nil {
		return err
	}
	clean, err := normalizeRoutePath(path)
	if err != nil {
		return err
	}
	var owner *layoutRoute
	for _, candidate := range r.layouts {
		if candidate.base == cleanBase {
			owner = candidate
			break
		}
	}
	if owner == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLayout, cleanBase)
	}
	if !within(owner.base, clean) {
		return fmt.Errorf("%w: %s is outside layout %s", ErrInvalidPath, clean, owner.base)
	}
	if content == nil {
		return fmt.Errorf("child %s: %w", clean, ErrMissingContent)
	}
	if err := r.claim(clean, "layout "+owner.frame.ID); err != nil {
		return err
	}
	owner.children[clean] = route{title: strings.TrimSpace(title), content: content}
	return nil
}

func within(base, path string) bool {
	return path == base || strings.HasPrefix(path, routepath.Prefix(base))
}

// Match is the outcome of resolving a path.
type Match struct {
	// Path is the cleaned request path.
	Path string
	// Title is the page title; empty when nothing matched.
	Title string
	// Frame is set when a layout owns the path.
	Frame *layout.Frame
	// Child is the content for the layout slot or the standalone page. It is
	// nil when a layout matched its own base without an index child.
	Child templ.Component
	// Found is false when the router fell back to its not-found content.
	Found bool
}

// Component renders the matched subtree: the layout frame around its child,
// or the standalone page.
func (m Match) Component() templ.Component {
	child := m.Child
	if child == nil {
		child = templ.NopComponent
	}
	if m.Frame == nil {
		return child
	}
	frame := m.Frame.Component()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return frame.Render(templ.WithChildren(ctx, child), w)
	})
}

// Resolve matches path against the route tree. Standalone pages win over
// layouts; among layouts the deepest base wins. A layout's own base with no
// index child renders the frame with an empty slot. Unmatched paths under a
// layout keep the frame and put the not-found content in the slot.
func (r *Router) Resolve(path string) Match {
	clean := routepath.Clean(path)
	if page, ok := r.pages[clean]; ok {
		return Match{Path: clean, Title: page.title, Child: page.content, Found: true}
	}
	for _, candidate := range r.layouts {
		if !within(candidate.base, clean) {
			continue
		}
		frame := candidate.frame
		if child, ok := candidate.children[clean]; ok {
			return Match{Path: clean, Title: child.title, Frame: &frame, Child: child.content, Found: true}
		}
		if clean == candidate.base {
			return Match{Path: clean, Title: frame.Label, Frame: &frame, Found: true}
		}
		return Match{Path: clean, Frame: &frame, Child: r.fallback(clean)}
	}
	return Match{Path: clean, Child: r.fallback(clean)}
}

func (r *Router) fallback(path string) templ.Component {
	if r.notFound == nil {
		return nil
	}
	return r.notFound(path)
}

// Require checks that every path resolves to a registered route.
func (r *Router) Require(paths ...string) error {
	var errs []error
	for _, path := range paths {
		if !r.Resolve(path).Found {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnroutable, path))
		}
	}
	return errors.Join(errs...)
}
