package navigation

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/appshell/internal/platform/icons"
	"github.com/louisbranch/appshell/internal/services/shell/routepath"
)

// SwapTarget is the element HTMX replaces when an item is activated.
const SwapTarget = "#main"

// SidebarID identifies the sidebar element for out-of-band swaps.
const SidebarID = "sidebar"

// Item is a rendered menu item.
type Item struct {
	Key      string
	Title    string
	Path     string
	Icon     icons.Kind
	Active   bool
	Position int
}

// Items maps the registry to menu items in registry order. currentPath marks
// the entry that owns the current location as active.
func Items(reg Registry, currentPath string) []Item {
	items := make([]Item, 0, reg.Len())
	for idx, entry := range reg.entries {
		items = append(items, Item{
			Key:      entry.Key(),
			Title:    entry.Title,
			Path:     entry.Path,
			Icon:     entry.Icon,
			Active:   isActive(entry.Path, currentPath),
			Position: idx,
		})
	}
	return items
}

// isActive matches the entry path exactly, or as a prefix for nested pages.
// The root path only matches itself.
func isActive(entryPath, currentPath string) bool {
	if strings.TrimSpace(currentPath) == "" {
		return false
	}
	currentPath = routepath.Clean(currentPath)
	if currentPath == entryPath {
		return true
	}
	if entryPath == routepath.Root {
		return false
	}
	return strings.HasPrefix(currentPath, routepath.Prefix(entryPath))
}

// Sidebar renders the registry as a menu. An empty registry renders an empty
// list.
func Sidebar(reg Registry, currentPath string) templ.Component {
	return sidebar(reg, currentPath, false)
}

// SidebarSwap renders the same menu marked for an HTMX out-of-band swap, so a
// fragment response replaces the sidebar and moves aria-current with it.
func SidebarSwap(reg Registry, currentPath string) templ.Component {
	return sidebar(reg, currentPath, true)
}

func sidebar(reg Registry, currentPath string, oob bool) templ.Component {
	items := Items(reg, currentPath)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := `<nav id="` + SidebarID + `" class="sidebar" aria-label="Primary"`
		if oob {
			open += ` hx-swap-oob="true"`
		}
		open += `><ul class="sidebar-menu" role="menu">`
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		for _, item := range items {
			if err := renderItem(ctx, w, item); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></nav>`)
		return err
	})
}

func renderItem(ctx context.Context, w io.Writer, item Item) error {
	var b strings.Builder
	path := templ.EscapeString(item.Path)
	b.WriteString(`<li role="none"><a class="sidebar-link" role="menuitem" tabindex="0"`)
	b.WriteString(` href="` + path + `"`)
	b.WriteString(` hx-get="` + path + `"`)
	b.WriteString(` hx-target="` + SwapTarget + `" hx-push-url="true"`)
	b.WriteString(` hx-trigger="` + templ.EscapeString(hxTrigger()) + `"`)
	b.WriteString(` data-nav-key="` + templ.EscapeString(item.Key) + `"`)
	b.WriteString(` data-nav-position="` + strconv.Itoa(item.Position) + `"`)
	if item.Active {
		b.WriteString(` aria-current="page"`)
	}
	b.WriteString(`>`)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if err := icons.Glyph(item.Icon).Render(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, `<span class="sidebar-label">`+templ.EscapeString(item.Title)+`</span></a></li>`)
	return err
}
