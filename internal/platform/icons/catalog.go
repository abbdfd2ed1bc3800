package icons

import (
	"strings"
)

// Kind identifies an icon independent of how it is drawn.
type Kind uint8

// Icon kinds. The zero value is unspecified and renders as Generic.
const (
	KindUnspecified Kind = iota
	KindGeneric
	KindHome
	KindDashboard
	KindSettings
	KindProfile
	KindNotification
	KindInvites
	KindCampaign
	KindActivity
	KindLogOut
)

// Definition describes a catalog entry.
type Definition struct {
	Kind        Kind
	Name        string
	Description string
}

var catalog = []Definition{
	{Kind: KindGeneric, Name: "generic", Description: "Default icon for uncategorized entries."},
	{Kind: KindHome, Name: "home", Description: "Landing page."},
	{Kind: KindDashboard, Name: "dashboard", Description: "Dashboard overview and its nested pages."},
	{Kind: KindSettings, Name: "settings", Description: "Application settings and configuration."},
	{Kind: KindProfile, Name: "profile", Description: "User profile."},
	{Kind: KindNotification, Name: "notification", Description: "Notification inbox."},
	{Kind: KindInvites, Name: "invites", Description: "Pending invitations."},
	{Kind: KindCampaign, Name: "campaign", Description: "Campaign lists and details."},
	{Kind: KindActivity, Name: "activity", Description: "Activity feeds and timelines."},
	{Kind: KindLogOut, Name: "log-out", Description: "Sign-out actions."},
}

var kindsByName = func() map[string]Kind {
	byName := make(map[string]Kind, len(catalog))
	for _, def := range catalog {
		byName[def.Name] = def.Kind
	}
	return byName
}()

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// String returns the catalog name, or "unspecified" for unknown kinds.
func (k Kind) String() string {
	for _, def := range catalog {
		if def.Kind == k {
			return def.Name
		}
	}
	return "unspecified"
}

// Valid reports whether k is a cataloged kind.
func (k Kind) Valid() bool {
	_, ok := LucideName(k)
	return ok
}

// ParseKind resolves a catalog name (case-insensitive) to its kind.
func ParseKind(name string) (Kind, bool) {
	kind, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]
	return kind, ok
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Name | Lucide | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(LucideNameOrDefault(def.Kind))
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
