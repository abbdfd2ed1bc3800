// Package routepath centralizes shell route paths.
package routepath

import "strings"

const (
	Root              = "/"
	Dashboard         = "/dashboard"
	DashboardOverview = "/dashboard/overview"
	DashboardActivity = "/dashboard/activity"
	Settings          = "/settings"
	Health            = "/up"
	Metrics           = "/metrics"
	StaticPrefix      = "/static/"
)

// Static returns the path of an embedded static asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}

// Prefix normalizes a mount path to its "/segment/" subtree form.
func Prefix(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}

// Clean normalizes a request path for route lookup: leading slash, no
// trailing slash except for the root.
func Clean(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
